package printer

import (
	"bytes"
	"fmt"
	"strings"
)

// ESC/POS command bytes
const (
	ESC = 0x1B
	GS  = 0x1D
	LF  = 0x0A
)

// Text alignment
const (
	AlignLeft   = 0
	AlignCenter = 1
	AlignRight  = 2
)

// Document builds an ESC/POS byte stream for thermal printers.
type Document struct {
	buf   bytes.Buffer
	width int // characters per line: 32 for 58mm paper, 48 for 80mm
}

// NewDocument creates an ESC/POS document with the given character width.
func NewDocument(charWidth int) *Document {
	if charWidth <= 0 {
		charWidth = 32
	}
	d := &Document{width: charWidth}
	d.buf.Write([]byte{ESC, '@'}) // initialize
	return d
}

// LineFeed sends a line feed.
func (d *Document) LineFeed() *Document {
	d.buf.WriteByte(LF)
	return d
}

// FeedLines sends n line feeds.
func (d *Document) FeedLines(n int) *Document {
	for i := 0; i < n; i++ {
		d.buf.WriteByte(LF)
	}
	return d
}

// SetAlign sets text alignment.
func (d *Document) SetAlign(align int) *Document {
	d.buf.Write([]byte{ESC, 'a', byte(align)})
	return d
}

// SetBold enables or disables bold text.
func (d *Document) SetBold(on bool) *Document {
	b := byte(0)
	if on {
		b = 1
	}
	d.buf.Write([]byte{ESC, 'E', b})
	return d
}

// Text writes a line of text followed by a line feed.
func (d *Document) Text(s string) *Document {
	d.buf.WriteString(s)
	d.buf.WriteByte(LF)
	return d
}

// TwoColumns writes left- and right-aligned text on one line, padded to width.
func (d *Document) TwoColumns(left, right string) *Document {
	pad := d.width - len(left) - len(right)
	if pad < 1 {
		pad = 1
	}
	return d.Text(left + strings.Repeat(" ", pad) + right)
}

// Divider writes a full-width dashed line.
func (d *Document) Divider() *Document {
	return d.Text(strings.Repeat("-", d.width))
}

// ItemLine writes a quantity/name line with the line total on the right.
func (d *Document) ItemLine(qty int, name, total string) *Document {
	left := fmt.Sprintf("%dx %s", qty, name)
	if len(left) > d.width-len(total)-1 {
		left = left[:d.width-len(total)-1]
	}
	return d.TwoColumns(left, total)
}

// Cut sends a partial paper cut.
func (d *Document) Cut() *Document {
	d.buf.Write([]byte{GS, 'V', 1})
	return d
}

// Bytes returns the assembled ESC/POS stream.
func (d *Document) Bytes() []byte {
	return d.buf.Bytes()
}
