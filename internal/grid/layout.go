package grid

import (
	"fmt"

	m "github.com/solderless/breadboard/internal/model"
)

// Layout holds the immutable geometry of one board size. All distances are
// millimeters at standard 0.1" pitch.
type Layout struct {
	Columns int     `json:"columns"`
	Pitch   float64 `json:"pitch"`

	// OriginX/OriginY locate hole a1.
	OriginX float64 `json:"origin_x"`
	OriginY float64 `json:"origin_y"`

	// CenterGap is the extra vertical offset added to rows f-j for the
	// physical break between the two terminal sections.
	CenterGap float64 `json:"center_gap"`

	// Rail y-offsets, top pair and bottom pair.
	TopPositiveY    float64 `json:"top_positive_y"`
	TopGroundY      float64 `json:"top_ground_y"`
	BottomPositiveY float64 `json:"bottom_positive_y"`
	BottomGroundY   float64 `json:"bottom_ground_y"`

	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

const pitch = 2.54

// layout830 is the full-size 830-point board: 63 terminal columns.
var layout830 = Layout{
	Columns:         63,
	Pitch:           pitch,
	OriginX:         5.08,
	OriginY:         5 * pitch,
	CenterGap:       pitch,
	TopPositiveY:    pitch,
	TopGroundY:      2 * pitch,
	BottomPositiveY: 17 * pitch,
	BottomGroundY:   18 * pitch,
	Width:           62*pitch + 2*5.08,
	Height:          19 * pitch,
}

// layout400 is the half-size 400-point board: 30 terminal columns.
var layout400 = Layout{
	Columns:         30,
	Pitch:           pitch,
	OriginX:         5.08,
	OriginY:         5 * pitch,
	CenterGap:       pitch,
	TopPositiveY:    pitch,
	TopGroundY:      2 * pitch,
	BottomPositiveY: 17 * pitch,
	BottomGroundY:   18 * pitch,
	Width:           29*pitch + 2*5.08,
	Height:          19 * pitch,
}

// LayoutFor returns the canonical layout for a board size. Layouts are
// returned by value and never mutated.
func LayoutFor(size m.BoardSize) (Layout, error) {
	switch size {
	case m.Board830:
		return layout830, nil
	case m.Board400:
		return layout400, nil
	default:
		return Layout{}, fmt.Errorf("%w: %q (want %q or %q)", ErrUnknownBoard, size, m.Board830, m.Board400)
	}
}

// Coordinates maps a parsed hole onto the board plane. Terminal rows f-j
// include the center-gap offset; rail holes use the top rail pair (the
// bottom pair is exposed on the Layout for renderers drawing both strips).
// The caller is responsible for having validated the hole against this
// layout's column bound.
func (l Layout) Coordinates(ref HoleRef) (float64, float64) {
	x := l.OriginX + float64(ref.Column-1)*l.Pitch

	if ref.Kind == KindRail {
		if ref.Rail == RailPositive {
			return x, l.TopPositiveY
		}

		return x, l.TopGroundY
	}

	idx := rowIndex(ref.Row)

	y := l.OriginY + float64(idx)*l.Pitch
	if idx >= sectionRows {
		y += l.CenterGap
	}

	return x, y
}
