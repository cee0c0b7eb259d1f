// internal/defs/layout.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidLayout is returned for malformed fortress layouts.
var ErrInvalidLayout = errors.New("invalid fortress layout")

// FortressLayout is an immutable width×height grid of block types. Cell (0,0)
// is the bottom-left cell; y grows upwards.
type FortressLayout struct {
	width  int
	height int
	cells  []BlockType
}

// NewFortressLayout builds a layout from a row-major cell slice where index
// y*width+x addresses cell (x,y). The slice is copied.
func NewFortressLayout(width, height int, cells []BlockType) (FortressLayout, error) {
	if width < 0 || height < 0 {
		return FortressLayout{}, fmt.Errorf("%w: negative size %dx%d", ErrInvalidLayout, width, height)
	}
	if len(cells) != width*height {
		return FortressLayout{}, fmt.Errorf("%w: %d cells for %dx%d grid", ErrInvalidLayout, len(cells), width, height)
	}
	return FortressLayout{
		width:  width,
		height: height,
		cells:  append([]BlockType(nil), cells...),
	}, nil
}

// ParseLayoutRows builds a layout from glyph rows as they appear in a file:
// the first row is the top of the fortress.
func ParseLayoutRows(rows []string) (FortressLayout, error) {
	height := len(rows)
	if height == 0 {
		return FortressLayout{}, nil
	}
	width := len(rows[0])
	cells := make([]BlockType, width*height)
	for r, row := range rows {
		if len(row) != width {
			return FortressLayout{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidLayout, r, len(row), width)
		}
		y := height - 1 - r
		for x := 0; x < width; x++ {
			t, ok := BlockTypeFromGlyph(row[x])
			if !ok {
				return FortressLayout{}, fmt.Errorf("%w: unknown glyph %q at row %d col %d", ErrInvalidLayout, row[x], r, x)
			}
			cells[y*width+x] = t
		}
	}
	return NewFortressLayout(width, height, cells)
}

// MustParseLayout is ParseLayoutRows for built-in layouts.
func MustParseLayout(rows ...string) FortressLayout {
	l, err := ParseLayoutRows(rows)
	if err != nil {
		panic(err)
	}
	return l
}

func (l FortressLayout) Width() int  { return l.width }
func (l FortressLayout) Height() int { return l.height }

// Cell returns the block type at (x,y). Out of range reads as Empty.
func (l FortressLayout) Cell(x, y int) BlockType {
	if x < 0 || y < 0 || x >= l.width || y >= l.height {
		return BlockEmpty
	}
	return l.cells[y*l.width+x]
}

// Count returns the number of cells holding t.
func (l FortressLayout) Count(t BlockType) int {
	n := 0
	for _, c := range l.cells {
		if c == t {
			n++
		}
	}
	return n
}

// Rows renders the layout back to glyph rows, top row first.
func (l FortressLayout) Rows() []string {
	rows := make([]string, l.height)
	for r := range rows {
		y := l.height - 1 - r
		b := make([]byte, l.width)
		for x := range b {
			b[x] = l.Cell(x, y).Glyph()
		}
		rows[r] = string(b)
	}
	return rows
}

type layoutJSON struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Rows   []string `json:"rows"`
}

func (l FortressLayout) MarshalJSON() ([]byte, error) {
	return json.Marshal(layoutJSON{Width: l.width, Height: l.height, Rows: l.Rows()})
}

func (l *FortressLayout) UnmarshalJSON(b []byte) error {
	var raw layoutJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	parsed, err := ParseLayoutRows(raw.Rows)
	if err != nil {
		return err
	}
	if parsed.width != raw.Width || parsed.height != raw.Height {
		return fmt.Errorf("%w: declared %dx%d, rows describe %dx%d",
			ErrInvalidLayout, raw.Width, raw.Height, parsed.width, parsed.height)
	}
	*l = parsed
	return nil
}
