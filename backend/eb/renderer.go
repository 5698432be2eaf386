// Package eb provides an Ebitengine backend for the menu package.
package eb

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/go-overlay/menu"
)

// Renderer implements menu rendering on top of ebiten.Image draw
// targets. The host's ebiten.Game calls SetScreen from its Draw method
// before asking the GUI to draw.
type Renderer struct {
	screen   *ebiten.Image
	white    *ebiten.Image
	whiteSub *ebiten.Image

	textures map[uint32]*ebiten.Image
	nextID   uint32
	fontTex  uint32

	width  int
	height int
}

// NewRenderer creates an ebiten renderer and registers the font atlas.
func NewRenderer(width, height int, atlas *menu.Atlas) *Renderer {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)

	r := &Renderer{
		white:    white,
		whiteSub: white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		textures: make(map[uint32]*ebiten.Image),
		nextID:   1,
		width:    width,
		height:   height,
	}
	if atlas == nil {
		atlas = menu.DefaultAtlas()
	}
	r.fontTex = r.Register(ebiten.NewImageFromImage(atlas.Image))
	return r
}

// Register adds an image the DrawList can reference by texture ID.
func (r *Renderer) Register(img *ebiten.Image) uint32 {
	id := r.nextID
	r.nextID++
	r.textures[id] = img
	return id
}

// FontTextureID returns the texture ID of the font atlas.
func (r *Renderer) FontTextureID() uint32 {
	return r.fontTex
}

// Resize updates the logical screen size.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// SetScreen points the renderer at this frame's draw target.
func (r *Renderer) SetScreen(screen *ebiten.Image) {
	r.screen = screen
}

// Render draws the menu DrawList onto the current screen. Clipping uses
// SubImage draw targets, which share the parent's coordinate system.
func (r *Renderer) Render(dl *menu.DrawList) error {
	if r.screen == nil || dl == nil || len(dl.VtxBuffer) == 0 {
		return nil
	}
	dl.Finalize()

	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount == 0 {
			continue
		}

		clip := image.Rect(
			int(cmd.ClipRect[0]), int(cmd.ClipRect[1]),
			int(cmd.ClipRect[2]), int(cmd.ClipRect[3]),
		).Intersect(r.screen.Bounds())
		if clip.Empty() {
			continue
		}
		target := r.screen.SubImage(clip).(*ebiten.Image)

		src := r.whiteSub
		if cmd.TextureID != 0 {
			if tex, ok := r.textures[cmd.TextureID]; ok {
				src = tex
			}
		}
		sb := src.Bounds()

		n := int(cmd.ElemCount)
		verts := make([]ebiten.Vertex, n)
		idx := make([]uint16, n)
		for i := 0; i < n; i++ {
			v := dl.VtxBuffer[int(cmd.VertexOffset)+int(dl.IdxBuffer[int(cmd.IndexOffset)+i])]
			cr, cg, cb, ca := menu.UnpackRGBA(v.Color)

			var sx, sy float32
			if cmd.TextureID != 0 {
				sx = float32(sb.Min.X) + v.TexCoord[0]*float32(sb.Dx())
				sy = float32(sb.Min.Y) + v.TexCoord[1]*float32(sb.Dy())
			} else {
				sx = float32(sb.Min.X)
				sy = float32(sb.Min.Y)
			}

			verts[i] = ebiten.Vertex{
				DstX:   v.Pos[0],
				DstY:   v.Pos[1],
				SrcX:   sx,
				SrcY:   sy,
				ColorR: float32(cr) / 255,
				ColorG: float32(cg) / 255,
				ColorB: float32(cb) / 255,
				ColorA: float32(ca) / 255,
			}
			idx[i] = uint16(i)
		}

		op := &ebiten.DrawTrianglesOptions{}
		target.DrawTriangles(verts, idx, src, op)
	}
	return nil
}
