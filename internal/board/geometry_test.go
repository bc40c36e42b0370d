package board

import (
	"errors"
	"math"
	"testing"
)

func refGeometry() Geometry {
	return Geometry{Width: 700, Height: 700, ItemSize: 50}
}

func TestGeometry_Clamp(t *testing.T) {
	g := refGeometry()

	tests := []struct {
		name   string
		raw    Point
		origin Point
		want   Point
	}{
		{name: "centered under pointer", raw: Point{375, 375}, want: Point{350, 350}},
		{name: "left of canvas", raw: Point{-20, 5}, want: Point{0, 0}},
		{name: "past bottom right", raw: Point{5000, 900}, want: Point{650, 650}},
		{name: "exact max", raw: Point{675, 675}, want: Point{650, 650}},
		{name: "offset container", raw: Point{175, 125}, origin: Point{100, 50}, want: Point{50, 50}},
		{name: "offset container pointer above", raw: Point{120, 10}, origin: Point{100, 50}, want: Point{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.Clamp(tt.raw, tt.origin)
			if got != tt.want {
				t.Errorf("Clamp(%v, %v) = %v, want %v", tt.raw, tt.origin, got, tt.want)
			}
			if !g.InBounds(got) {
				t.Errorf("Clamp result %v out of bounds", got)
			}
		})
	}
}

func TestGeometry_Validate(t *testing.T) {
	tests := []struct {
		name    string
		g       Geometry
		wantErr bool
	}{
		{name: "reference", g: refGeometry()},
		{name: "item fills canvas", g: Geometry{Width: 50, Height: 50, ItemSize: 50}},
		{name: "zero width", g: Geometry{Width: 0, Height: 700, ItemSize: 50}, wantErr: true},
		{name: "zero item", g: Geometry{Width: 700, Height: 700}, wantErr: true},
		{name: "item too tall", g: Geometry{Width: 700, Height: 40, ItemSize: 50}, wantErr: true},
		{name: "NaN item", g: Geometry{Width: 700, Height: 700, ItemSize: math.NaN()}, wantErr: true},
		{name: "NaN width", g: Geometry{Width: math.NaN(), Height: 700, ItemSize: 50}, wantErr: true},
		{name: "NaN height", g: Geometry{Width: 700, Height: math.NaN(), ItemSize: 50}, wantErr: true},
		{name: "infinite width", g: Geometry{Width: math.Inf(1), Height: 700, ItemSize: 50}, wantErr: true},
		{name: "infinite item", g: Geometry{Width: 700, Height: 700, ItemSize: math.Inf(1)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.g.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidGeometry) {
				t.Errorf("expected ErrInvalidGeometry, got %v", err)
			}
		})
	}
}

func TestGeometry_Classify(t *testing.T) {
	g := refGeometry()

	tests := []struct {
		name string
		x, y float64
		want Quadrant
	}{
		{"top left corner", 0, 0, TopLeft},
		{"top right corner", 650, 0, TopRight},
		{"bottom left corner", 0, 650, BottomLeft},
		{"bottom right corner", 650, 650, BottomRight},
		{"center goes bottom right", 325, 325, BottomRight},
		{"just left of divider", 324, 10, TopLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.Classify(PlacedItem{X: tt.x, Y: tt.y})
			if got != tt.want {
				t.Errorf("Classify(%v,%v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}
