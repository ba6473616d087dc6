package targets

import (
	"aimlab/internal/geom"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type Target struct {
	ID        int
	Center    geom.Point
	Radius    float64
	SpawnedAt float64 // round clock, seconds
}

// Hit reports whether p lands inside the target.
func (t *Target) Hit(p geom.Point) bool {
	return geom.Contains(t.Center, t.Radius, p)
}

// Draw fills the target's circle on dst.
func (t *Target) Draw(dst *ebiten.Image, c color.Color) {
	vector.DrawFilledCircle(dst, float32(t.Center.X), float32(t.Center.Y), float32(t.Radius), c, true)
}
