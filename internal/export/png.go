package export

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/javiermolinar/quadrant/internal/board"
)

// Image layout, in pixels.
const (
	Margin     = 60 // room for the axis captions
	TitleBand  = 40
	labelInset = 20
	labelPad   = 6
	fontSize   = 13
	titleSize  = 20
)

// Canvas colors.
var quadrantFill = [4]string{"#ff8888", "#88ccff", "#88ff88", "#dd88ff"}

const (
	itemFill     = "#fafafa"
	itemStroke   = "#999999"
	selectedLine = "#e53935"
)

// Size returns the pixel dimensions of the rendered image.
func (s Scene) Size() (int, int) {
	return int(s.Geometry.Width) + 2*Margin, int(s.Geometry.Height) + 2*Margin + TitleBand
}

// Origin is the canvas top-left corner inside the image.
func (s Scene) Origin() board.Point {
	return board.Point{X: Margin, Y: Margin + TitleBand}
}

func newFace(size float64) (font.Face, error) {
	f, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// Draw renders the scene into a new context.
func Draw(s Scene) (*gg.Context, error) {
	if err := s.Geometry.Validate(); err != nil {
		return nil, err
	}
	labelFace, err := newFace(fontSize)
	if err != nil {
		return nil, err
	}
	titleFace, err := newFace(titleSize)
	if err != nil {
		return nil, err
	}

	w, h := s.Size()
	dc := gg.NewContext(w, h)
	dc.SetHexColor("#ffffff")
	dc.Clear()

	o := s.Origin()
	cw, ch := s.Geometry.Width, s.Geometry.Height

	dc.SetFontFace(titleFace)
	dc.SetHexColor("#000000")
	dc.DrawStringAnchored(s.Labels.Title, float64(w)/2, TitleBand/2+Margin/4, 0.5, 0.5)

	drawQuadrants(dc, o, cw, ch)
	drawGrid(dc, o, cw, ch, s.GridSize)
	drawCross(dc, o, cw, ch)

	dc.SetFontFace(labelFace)
	drawCornerLabels(dc, s, o)
	drawAxisLabels(dc, s, o)

	for _, it := range s.Items {
		drawItem(dc, it, o, s.Geometry.ItemSize)
	}
	return dc, nil
}

func drawQuadrants(dc *gg.Context, o board.Point, cw, ch float64) {
	hw, hh := cw/2, ch/2
	rects := [4][2]float64{{0, 0}, {hw, 0}, {0, hh}, {hw, hh}}
	for q, r := range rects {
		dc.SetHexColor(quadrantFill[q])
		dc.DrawRectangle(o.X+r[0], o.Y+r[1], hw, hh)
		dc.Fill()
	}
}

func drawGrid(dc *gg.Context, o board.Point, cw, ch, step float64) {
	if step <= 0 {
		return
	}
	dc.SetRGBA(0, 0, 0, 0.1)
	dc.SetLineWidth(1)
	for x := step; x < cw; x += step {
		dc.DrawLine(o.X+x, o.Y, o.X+x, o.Y+ch)
		dc.Stroke()
	}
	for y := step; y < ch; y += step {
		dc.DrawLine(o.X, o.Y+y, o.X+cw, o.Y+y)
		dc.Stroke()
	}
}

func drawCross(dc *gg.Context, o board.Point, cw, ch float64) {
	dc.SetHexColor("#000000")
	dc.SetLineWidth(2)
	dc.DrawLine(o.X+cw/2, o.Y, o.X+cw/2, o.Y+ch)
	dc.Stroke()
	dc.DrawLine(o.X, o.Y+ch/2, o.X+cw, o.Y+ch/2)
	dc.Stroke()
	dc.DrawRectangle(o.X, o.Y, cw, ch)
	dc.Stroke()
}

// drawCornerLabels puts each quadrant caption in a white box inset from
// its outer corner.
func drawCornerLabels(dc *gg.Context, s Scene, o board.Point) {
	cw, ch := s.Geometry.Width, s.Geometry.Height
	corners := [4]struct {
		x, y, ax, ay float64
	}{
		{o.X + labelInset, o.Y + labelInset, 0, 1},
		{o.X + cw - labelInset, o.Y + labelInset, 1, 1},
		{o.X + labelInset, o.Y + ch - labelInset, 0, 0},
		{o.X + cw - labelInset, o.Y + ch - labelInset, 1, 0},
	}
	for q, c := range corners {
		text := s.Labels.Quadrant(board.Quadrant(q))
		if text == "" {
			continue
		}
		tw, th := dc.MeasureString(text)
		bx := c.x - c.ax*tw - labelPad
		by := c.y - (1-c.ay)*th - labelPad
		dc.SetRGBA(1, 1, 1, 0.85)
		dc.DrawRoundedRectangle(bx, by, tw+2*labelPad, th+2*labelPad, 4)
		dc.Fill()
		dc.SetHexColor("#000000")
		dc.DrawStringAnchored(text, c.x, c.y, c.ax, c.ay)
	}
}

func drawAxisLabels(dc *gg.Context, s Scene, o board.Point) {
	cw, ch := s.Geometry.Width, s.Geometry.Height
	dc.SetHexColor("#000000")
	dc.DrawStringAnchored(strings.ToUpper(s.Labels.Top), o.X+cw/2, o.Y-labelInset, 0.5, 0.5)
	dc.DrawStringAnchored(strings.ToUpper(s.Labels.Bottom), o.X+cw/2, o.Y+ch+labelInset, 0.5, 0.5)

	lx, rx, my := o.X-labelInset, o.X+cw+labelInset, o.Y+ch/2
	dc.Push()
	dc.RotateAbout(gg.Radians(-90), lx, my)
	dc.DrawStringAnchored(strings.ToUpper(s.Labels.Left), lx, my, 0.5, 0.5)
	dc.Pop()

	dc.Push()
	dc.RotateAbout(gg.Radians(90), rx, my)
	dc.DrawStringAnchored(strings.ToUpper(s.Labels.Right), rx, my, 0.5, 0.5)
	dc.Pop()
}

func drawItem(dc *gg.Context, it board.PlacedItem, o board.Point, size float64) {
	x, y := o.X+it.X, o.Y+it.Y

	dc.SetHexColor(itemFill)
	dc.DrawRectangle(x, y, size, size)
	dc.Fill()
	dc.SetHexColor(itemStroke)
	dc.SetLineWidth(1)
	dc.DrawRectangle(x, y, size, size)
	dc.Stroke()

	dc.SetHexColor("#000000")
	dc.DrawStringAnchored(it.Name, x+size/2, y+size/2, 0.5, 0.5)

	if it.Selected {
		dc.SetHexColor(selectedLine)
		dc.SetLineWidth(2)
		dc.SetDash(4, 3)
		dc.DrawRectangle(x-4, y-4, size+8, size+8)
		dc.Stroke()
		dc.SetDash()
	}
}

// Encode writes the scene as a PNG to w.
func Encode(w io.Writer, s Scene) error {
	dc, err := Draw(s)
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

// WritePNG writes the scene as a PNG file at path.
// A failed write leaves no file behind.
func WritePNG(path string, s Scene) error {
	dc, err := Draw(s)
	if err != nil {
		return fmt.Errorf("drawing snapshot: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating snapshot: %w", err)
	}
	if err := dc.EncodePNG(f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("closing snapshot: %w", err)
	}
	return nil
}
