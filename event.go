package menu

// MouseButton represents a pointer button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key represents a keyboard key the toolkit reacts to.
// Keys outside this set never reach the dispatcher.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyEscape
	KeyCount
)

// KeyName returns a human-readable name for a key.
func KeyName(k Key) string {
	names := map[Key]string{
		KeyNone:      "--",
		KeyTab:       "Tab",
		KeyLeft:      "Left",
		KeyRight:     "Right",
		KeyUp:        "Up",
		KeyDown:      "Down",
		KeyPageUp:    "PgUp",
		KeyPageDown:  "PgDn",
		KeyHome:      "Home",
		KeyEnd:       "End",
		KeyDelete:    "Del",
		KeyBackspace: "Backspace",
		KeySpace:     "Space",
		KeyEnter:     "Enter",
		KeyEscape:    "Esc",
	}
	if name, ok := names[k]; ok {
		return name
	}
	return "?"
}

// Direction is a directional-pad or joystick hat direction.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// EventKind tags the payload of an Event.
type EventKind int

const (
	EventNone EventKind = iota
	EventKeyDown
	EventKeyUp
	EventChar
	EventPointerDown
	EventPointerUp
	EventPointerMove
	EventWheel
	EventDPad
	EventTouchDown
	EventTouchMove
	EventTouchUp
)

// Event is one discrete input event. The host collects a batch of these
// per tick and hands them to Update. Fields beyond Kind are only
// meaningful for the kinds that use them; events with an unrecognized
// kind are ignored silently.
type Event struct {
	Kind   EventKind
	Key    Key         // EventKeyDown / EventKeyUp
	Ch     rune        // EventChar
	Button MouseButton // EventPointerDown / EventPointerUp
	Pos    Vec2        // pointer, touch and wheel events
	Delta  Vec2        // EventWheel scroll amount, EventPointerMove / EventTouchMove motion
	Dir    Direction   // EventDPad
}

// KeyDownEvent builds a key-press event.
func KeyDownEvent(k Key) Event {
	return Event{Kind: EventKeyDown, Key: k}
}

// KeyUpEvent builds a key-release event.
func KeyUpEvent(k Key) Event {
	return Event{Kind: EventKeyUp, Key: k}
}

// CharEvent builds a typed-character event.
func CharEvent(ch rune) Event {
	return Event{Kind: EventChar, Ch: ch}
}

// PointerDownEvent builds a pointer-button-press event at the given position.
func PointerDownEvent(b MouseButton, pos Vec2) Event {
	return Event{Kind: EventPointerDown, Button: b, Pos: pos}
}

// PointerUpEvent builds a pointer-button-release event at the given position.
func PointerUpEvent(b MouseButton, pos Vec2) Event {
	return Event{Kind: EventPointerUp, Button: b, Pos: pos}
}

// PointerMoveEvent builds a pointer-motion event.
func PointerMoveEvent(pos, delta Vec2) Event {
	return Event{Kind: EventPointerMove, Pos: pos, Delta: delta}
}

// WheelEvent builds a scroll-wheel event at the given pointer position.
func WheelEvent(pos, delta Vec2) Event {
	return Event{Kind: EventWheel, Pos: pos, Delta: delta}
}

// DPadEvent builds a directional-pad event.
func DPadEvent(d Direction) Event {
	return Event{Kind: EventDPad, Dir: d}
}

// TouchDownEvent builds a touch-press event at the given position.
func TouchDownEvent(pos Vec2) Event {
	return Event{Kind: EventTouchDown, Pos: pos}
}

// TouchMoveEvent builds a touch-motion event.
func TouchMoveEvent(pos, delta Vec2) Event {
	return Event{Kind: EventTouchMove, Pos: pos, Delta: delta}
}

// TouchUpEvent builds a touch-release event at the given position.
func TouchUpEvent(pos Vec2) Event {
	return Event{Kind: EventTouchUp, Pos: pos}
}
