package invoice

import (
	"fmt"
	"strings"
)

// Document builds a fixed-width plain-text layout, the print-oriented
// invoice variant. No interactive controls, single monospace column.
type Document struct {
	b     strings.Builder
	width int
}

// NewDocument creates a text document with the given character width.
func NewDocument(width int) *Document {
	if width <= 0 {
		width = 48
	}
	return &Document{width: width}
}

// Text writes a line of text.
func (d *Document) Text(s string) *Document {
	d.b.WriteString(s)
	d.b.WriteByte('\n')
	return d
}

// TextF writes a formatted line of text.
func (d *Document) TextF(format string, args ...interface{}) *Document {
	return d.Text(fmt.Sprintf(format, args...))
}

// Center writes a line centered within the document width.
func (d *Document) Center(s string) *Document {
	pad := (d.width - len(s)) / 2
	if pad < 0 {
		pad = 0
	}
	return d.Text(strings.Repeat(" ", pad) + s)
}

// Separator prints a full-width separator line.
func (d *Document) Separator(char byte) *Document {
	return d.Text(strings.Repeat(string(char), d.width))
}

// BlankLine writes an empty line.
func (d *Document) BlankLine() *Document {
	d.b.WriteByte('\n')
	return d
}

// KeyValue prints a left-aligned key and right-aligned value on one line.
func (d *Document) KeyValue(key, value string) *Document {
	spaces := d.width - len(key) - len(value)
	if spaces < 1 {
		spaces = 1
	}
	return d.Text(key + strings.Repeat(" ", spaces) + value)
}

// Columns prints cells padded to the given widths; the last cell is
// right-aligned to fill the remaining width.
func (d *Document) Columns(widths []int, cells ...string) *Document {
	var line strings.Builder
	for i, cell := range cells {
		if i == len(cells)-1 {
			used := line.Len()
			spaces := d.width - used - len(cell)
			if spaces < 1 {
				spaces = 1
			}
			line.WriteString(strings.Repeat(" ", spaces))
			line.WriteString(cell)
			break
		}
		w := widths[i]
		if len(cell) > w {
			cell = cell[:w]
		}
		line.WriteString(cell)
		line.WriteString(strings.Repeat(" ", w-len(cell)+1))
	}
	return d.Text(line.String())
}

// String returns the accumulated document.
func (d *Document) String() string {
	return d.b.String()
}
