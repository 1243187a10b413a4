package printer

import (
	"bytes"
)

// ESC/POS command constants
const (
	ESC = 0x1B
	GS  = 0x1D
	LF  = 0x0A
)

// Document builds an ESC/POS byte stream for thermal printers. It sits
// beneath the channel: rendered text lines go in, device bytes come out, and
// the renderer's text contract is untouched.
type Document struct {
	buf bytes.Buffer
}

// NewDocument creates a new ESC/POS document, initialized with ESC @.
func NewDocument() *Document {
	d := &Document{}
	d.Init()
	return d
}

// Init sends the ESC @ (initialize printer) command.
func (d *Document) Init() *Document {
	d.buf.Write([]byte{ESC, '@'})
	return d
}

// Text writes a line of text followed by a line feed.
func (d *Document) Text(s string) *Document {
	d.buf.WriteString(s)
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

// PartialCut sends the partial cut command.
func (d *Document) PartialCut() *Document {
	d.buf.Write([]byte{GS, 'V', 0x01})
	return d
}

// Bytes returns the accumulated ESC/POS byte stream.
func (d *Document) Bytes() []byte {
	return d.buf.Bytes()
}

// EncodeLines converts rendered receipt lines into one printable ESC/POS
// payload: init, the lines verbatim, a short feed, and a partial cut.
// Encoding the same lines twice yields identical bytes, so a payload is
// safely re-printable.
func EncodeLines(lines []string) []byte {
	doc := NewDocument()
	for _, line := range lines {
		doc.Text(line)
	}
	doc.FeedLines(3).PartialCut()
	return doc.Bytes()
}
