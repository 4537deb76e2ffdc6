// Package grid models the breadboard hole grid: hole-ID parsing, board
// layouts, coordinates and electrical connectivity. It is pure geometry;
// nothing here touches component semantics.
package grid

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	m "github.com/solderless/breadboard/internal/model"
)

// Rows is the fixed terminal-row alphabet, top to bottom. Rows a-e sit
// above the center gap, f-j below it.
const Rows = "abcdefghij"

// ErrMalformedHole reports a string matching neither hole-ID grammar.
var ErrMalformedHole = errors.New("malformed hole id")

// ErrUnknownBoard reports a board size with no canonical layout.
var ErrUnknownBoard = errors.New("unknown board size")

// HoleKind distinguishes the two physical regions of the board.
type HoleKind string

const (
	// KindTerminal is a hole in rows a-j.
	KindTerminal HoleKind = "terminal"
	// KindRail is a hole on a power rail.
	KindRail HoleKind = "rail"
)

// Rail identifies a power rail by its printed sign.
type Rail string

const (
	// RailPositive is the red "+" supply rail.
	RailPositive Rail = "+"
	// RailGround is the blue "-" ground rail.
	RailGround Rail = "-"
)

// HoleRef is a parsed hole ID. For terminal holes Row and Column are set;
// for rail holes Rail and Column are set.
type HoleRef struct {
	Kind   HoleKind
	Row    byte // 'a'..'j', terminal holes only
	Rail   Rail // rail holes only
	Column int  // 1-based
}

var (
	terminalHolePattern = regexp.MustCompile(`^([a-j])([1-9][0-9]*)$`)
	railHolePattern     = regexp.MustCompile(`^([+-])([1-9][0-9]*)$`)
)

// ParseHole parses a hole ID against the two grammars. Anything else,
// including wrong case, leading zeros and surrounding garbage, is rejected.
// Column bounds are board-specific and checked separately by IsValidHole.
func ParseHole(id m.HoleID) (HoleRef, error) {
	s := string(id)

	if match := terminalHolePattern.FindStringSubmatch(s); match != nil {
		col, err := strconv.Atoi(match[2])
		if err != nil {
			return HoleRef{}, fmt.Errorf("%w: %q", ErrMalformedHole, s)
		}

		return HoleRef{Kind: KindTerminal, Row: match[1][0], Column: col}, nil
	}

	if match := railHolePattern.FindStringSubmatch(s); match != nil {
		col, err := strconv.Atoi(match[2])
		if err != nil {
			return HoleRef{}, fmt.Errorf("%w: %q", ErrMalformedHole, s)
		}

		return HoleRef{Kind: KindRail, Rail: Rail(match[1]), Column: col}, nil
	}

	return HoleRef{}, fmt.Errorf("%w: %q matches neither terminal (a1..j63) nor rail (+1..-63) form", ErrMalformedHole, s)
}

// IsValidHole reports whether id parses and its column fits the board.
func IsValidHole(id m.HoleID, size m.BoardSize) bool {
	ref, err := ParseHole(id)
	if err != nil {
		return false
	}

	layout, err := LayoutFor(size)
	if err != nil {
		return false
	}

	return ref.Column <= layout.Columns
}

// ID renders the canonical textual form of the hole.
func (h HoleRef) ID() m.HoleID {
	if h.Kind == KindRail {
		return m.HoleID(string(h.Rail) + strconv.Itoa(h.Column))
	}

	return m.HoleID(string(h.Row) + strconv.Itoa(h.Column))
}

// rowIndex is the 0-based position of a row letter in Rows, or -1.
func rowIndex(row byte) int {
	return strings.IndexByte(Rows, row)
}

// sectionStart returns the first row letter of the 5-row section holding
// row: 'a' for a-e, 'f' for f-j.
func sectionStart(row byte) byte {
	if rowIndex(row) < sectionRows {
		return 'a'
	}

	return 'f'
}

const sectionRows = 5

// ConnectedHoles returns the electrically common holes of id on the given
// board, in canonical order. Terminal holes return their full 5-hole column
// section in row-letter order; rail holes return every column of that rail,
// 1..N. The two sections of a column never connect, and rails never connect
// to anything but themselves.
func ConnectedHoles(id m.HoleID, size m.BoardSize) ([]m.HoleID, error) {
	ref, err := ParseHole(id)
	if err != nil {
		return nil, err
	}

	layout, err := LayoutFor(size)
	if err != nil {
		return nil, err
	}

	if ref.Column > layout.Columns {
		return nil, fmt.Errorf("%w: column %d exceeds board %s bound %d", ErrMalformedHole, ref.Column, size, layout.Columns)
	}

	if ref.Kind == KindRail {
		group := make([]m.HoleID, 0, layout.Columns)
		for col := 1; col <= layout.Columns; col++ {
			group = append(group, HoleRef{Kind: KindRail, Rail: ref.Rail, Column: col}.ID())
		}

		return group, nil
	}

	start := sectionStart(ref.Row)

	group := make([]m.HoleID, 0, sectionRows)
	for i := range sectionRows {
		group = append(group, HoleRef{Kind: KindTerminal, Row: start + byte(i), Column: ref.Column}.ID())
	}

	return group, nil
}
