package eb

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/go-overlay/menu"
)

// keyMap lists the ebiten keys the menu toolkit reacts to.
var keyMap = map[ebiten.Key]menu.Key{
	ebiten.KeyTab:        menu.KeyTab,
	ebiten.KeyArrowLeft:  menu.KeyLeft,
	ebiten.KeyArrowRight: menu.KeyRight,
	ebiten.KeyArrowUp:    menu.KeyUp,
	ebiten.KeyArrowDown:  menu.KeyDown,
	ebiten.KeyPageUp:     menu.KeyPageUp,
	ebiten.KeyPageDown:   menu.KeyPageDown,
	ebiten.KeyHome:       menu.KeyHome,
	ebiten.KeyEnd:        menu.KeyEnd,
	ebiten.KeyDelete:     menu.KeyDelete,
	ebiten.KeyBackspace:  menu.KeyBackspace,
	ebiten.KeySpace:      menu.KeySpace,
	ebiten.KeyEnter:      menu.KeyEnter,
	ebiten.KeyEscape:     menu.KeyEscape,
}

var buttonMap = map[ebiten.MouseButton]menu.MouseButton{
	ebiten.MouseButtonLeft:   menu.MouseButtonLeft,
	ebiten.MouseButtonRight:  menu.MouseButtonRight,
	ebiten.MouseButtonMiddle: menu.MouseButtonMiddle,
}

// InputAdapter translates ebiten's polled input state into per-frame
// menu event batches. Call Poll once from the game's Update.
type InputAdapter struct {
	lastX, lastY int
	chars        []rune
	touchIDs     []ebiten.TouchID
	touchLast    map[ebiten.TouchID]menu.Vec2
}

// NewInputAdapter creates an adapter.
func NewInputAdapter() *InputAdapter {
	return &InputAdapter{touchLast: map[ebiten.TouchID]menu.Vec2{}}
}

// Poll gathers this tick's input changes as menu events.
func (a *InputAdapter) Poll() []menu.Event {
	var events []menu.Event

	for ek, mk := range keyMap {
		if inpututil.IsKeyJustPressed(ek) {
			events = append(events, menu.KeyDownEvent(mk))
		}
		if inpututil.IsKeyJustReleased(ek) {
			events = append(events, menu.KeyUpEvent(mk))
		}
	}

	a.chars = ebiten.AppendInputChars(a.chars[:0])
	for _, ch := range a.chars {
		events = append(events, menu.CharEvent(ch))
	}

	x, y := ebiten.CursorPosition()
	pos := menu.Vec2{X: float32(x), Y: float32(y)}
	if x != a.lastX || y != a.lastY {
		delta := menu.Vec2{X: float32(x - a.lastX), Y: float32(y - a.lastY)}
		a.lastX, a.lastY = x, y
		events = append(events, menu.PointerMoveEvent(pos, delta))
	}

	for eb, mb := range buttonMap {
		if inpututil.IsMouseButtonJustPressed(eb) {
			events = append(events, menu.PointerDownEvent(mb, pos))
		}
		if inpututil.IsMouseButtonJustReleased(eb) {
			events = append(events, menu.PointerUpEvent(mb, pos))
		}
	}

	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		events = append(events, menu.WheelEvent(pos, menu.Vec2{X: float32(wx), Y: float32(wy)}))
	}

	a.touchIDs = inpututil.AppendJustPressedTouchIDs(a.touchIDs[:0])
	for _, id := range a.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		tpos := menu.Vec2{X: float32(tx), Y: float32(ty)}
		a.touchLast[id] = tpos
		events = append(events, menu.TouchDownEvent(tpos))
	}
	// Held touches that moved since the previous tick become touch-move
	// events, so a touch drag tracks the finger.
	a.touchIDs = ebiten.AppendTouchIDs(a.touchIDs[:0])
	for _, id := range a.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		tpos := menu.Vec2{X: float32(tx), Y: float32(ty)}
		if prev, ok := a.touchLast[id]; ok && tpos != prev {
			events = append(events, menu.TouchMoveEvent(tpos, menu.Vec2{X: tpos.X - prev.X, Y: tpos.Y - prev.Y}))
		}
		a.touchLast[id] = tpos
	}
	a.touchIDs = inpututil.AppendJustReleasedTouchIDs(a.touchIDs[:0])
	for _, id := range a.touchIDs {
		tx, ty := inpututil.TouchPositionInPreviousTick(id)
		delete(a.touchLast, id)
		events = append(events, menu.TouchUpEvent(menu.Vec2{X: float32(tx), Y: float32(ty)}))
	}

	return events
}
