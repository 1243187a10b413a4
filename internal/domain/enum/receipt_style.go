package enum

// Alignment represents text alignment on a fixed-width receipt line
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// Valid reports whether the alignment is one of the accepted values
func (a Alignment) Valid() bool {
	switch a {
	case AlignLeft, AlignCenter, AlignRight:
		return true
	}
	return false
}

// ReceiptTemplate selects the receipt layout variant
type ReceiptTemplate string

const (
	TemplateClassic ReceiptTemplate = "classic"
	TemplateModern  ReceiptTemplate = "modern"
	TemplateCompact ReceiptTemplate = "compact"
)

// Valid reports whether the template is one of the accepted values
func (t ReceiptTemplate) Valid() bool {
	switch t {
	case TemplateClassic, TemplateModern, TemplateCompact:
		return true
	}
	return false
}
