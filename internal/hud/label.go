// Package hud draws text labels anchored to the playfield.
package hud

import (
	"aimlab/internal/geom"
	"bytes"
	"fmt"
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type Anchor int

const (
	AnchorCenter Anchor = iota
	AnchorTop
	AnchorBottom
)

// TopMargin is the gap between the parent edge and a top or bottom anchored label.
const TopMargin = 10

var (
	sourceOnce sync.Once
	source     *text.GoTextFaceSource
)

func faceSource() *text.GoTextFaceSource {
	sourceOnce.Do(func() {
		s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			log.Fatalf("[HUD] parsing Go Regular: %v", err)
		}
		source = s
	})
	return source
}

// NewFace returns a Go Regular face of the given pixel size.
func NewFace(size float64) text.Face {
	return &text.GoTextFace{Source: faceSource(), Size: size}
}

// Label is a single-line string positioned inside its parent bounds. The
// position is recomputed whenever the value changes.
type Label struct {
	face   text.Face
	color  color.Color
	anchor Anchor
	parent geom.Bounds

	value string
	pos   geom.Point
}

func NewLabel(value any, face text.Face, c color.Color, parent geom.Bounds, anchor Anchor) *Label {
	l := &Label{face: face, color: c, anchor: anchor, parent: parent}
	l.Set(value)
	return l
}

// Set stringifies value and repositions the label.
func (l *Label) Set(value any) {
	l.value = fmt.Sprint(value)
	w, h := text.Measure(l.value, l.face, 0)
	l.pos = Layout(l.anchor, l.parent, w, h)
}

func (l *Label) Value() string {
	return l.value
}

// Position is the top-left corner the label is drawn at.
func (l *Label) Position() geom.Point {
	return l.pos
}

func (l *Label) Render(dst *ebiten.Image) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(l.pos.X, l.pos.Y)
	op.ColorScale.ScaleWithColor(l.color)
	text.Draw(dst, l.value, l.face, op)
}

// Layout returns the top-left corner of a w x h box anchored in parent.
func Layout(anchor Anchor, parent geom.Bounds, w, h float64) geom.Point {
	c := parent.Center()
	switch anchor {
	case AnchorTop:
		return geom.Pt(c.X-w/2, TopMargin)
	case AnchorBottom:
		return geom.Pt(c.X-w/2, parent.H-h-TopMargin)
	default:
		return geom.Pt(c.X-w/2, c.Y-h/2)
	}
}
