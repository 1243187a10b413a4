package receipt

import (
	"fmt"
	"strings"
)

// Paper width limits in characters. Out-of-range widths are rejected, never
// clamped.
const (
	MinWidth = 24
	MaxWidth = 48
)

// Align modes for fixed-width lines
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// Template selects the receipt layout variant
type Template string

const (
	TemplateClassic Template = "classic"
	TemplateModern  Template = "modern"
	TemplateCompact Template = "compact"
)

// Item is a single line of the receipt's item table
type Item struct {
	Name      string
	Quantity  int
	UnitPrice float64
	Total     float64
}

// Data is everything a receipt prints: shop identity, bill metadata, the item
// table, and the totals. Amounts are decimals, already divided out of cents.
type Data struct {
	ShopName    string
	ShopAddress string
	ShopPhone   string
	Date        string
	BillNo      string
	Cashier     string
	Items       []Item
	SubTotal    float64
	Tax         float64
	Total       float64
}

// Style holds the shop's receipt appearance settings
type Style struct {
	PaperWidth  int
	HeaderAlign Align
	FooterAlign Align
	BoldHeader  bool
	BoldTotal   bool
	Template    Template
	ThankYou    string
	VisitAgain  string
	LogoRef     string
}

// Money formats a currency amount with exactly two decimal digits and no
// thousands separators. This path is deliberately locale-independent.
func Money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// AlignText pads text to the given width. Left returns the text unchanged,
// center pads left with floor((width-len)/2) spaces, right pads left with
// max(0, width-len) spaces. Text wider than the width is never truncated.
func AlignText(text string, mode Align, width int) string {
	pad := 0
	switch mode {
	case AlignCenter:
		pad = (width - len(text)) / 2
	case AlignRight:
		pad = width - len(text)
	}
	if pad <= 0 {
		return text
	}
	return strings.Repeat(" ", pad) + text
}

// emphasize wraps text in asterisk markers when bold is set. Bold never
// switches to a double-width font, so column math stays untouched.
func emphasize(text string, bold bool) string {
	if !bold || text == "" {
		return text
	}
	return "*" + text + "*"
}

// keyValue renders a left-aligned key and right-aligned value on one line
func keyValue(key, value string, width int) string {
	spaces := width - len(key) - len(value)
	if spaces < 1 {
		spaces = 1
	}
	return key + strings.Repeat(" ", spaces) + value
}

// itemColumns returns the column widths of the item table for a paper width:
// name column, quantity (right), unit price (right), line total (right),
// separated by single spaces. Narrow papers get slimmer numeric columns so
// the name column never collapses below the "Item" heading.
func itemColumns(width int) (name, qty, unit, total int) {
	qty, unit, total = 3, 8, 9
	if width < 40 {
		unit, total = 6, 8
	}
	name = width - qty - unit - total - 3
	return
}

// itemLine renders one row of the item table. Names longer than the name
// column overflow the paper width cosmetically; the numeric columns are
// always rendered in full.
func itemLine(it Item, width int) string {
	nameW, qtyW, unitW, totalW := itemColumns(width)
	name := it.Name
	if len(name) < nameW {
		name = name + strings.Repeat(" ", nameW-len(name))
	}
	return fmt.Sprintf("%s %*d %*s %*s",
		name,
		qtyW, it.Quantity,
		unitW, Money(it.UnitPrice),
		totalW, Money(it.Total),
	)
}

// Validate checks that the style is renderable: paper width within limits and
// known alignment/template values.
func (s Style) Validate() error {
	if s.PaperWidth < MinWidth || s.PaperWidth > MaxWidth {
		return fmt.Errorf("receipt: paper width %d out of range [%d,%d]", s.PaperWidth, MinWidth, MaxWidth)
	}
	switch s.HeaderAlign {
	case AlignLeft, AlignCenter, AlignRight:
	default:
		return fmt.Errorf("receipt: unknown header alignment %q", s.HeaderAlign)
	}
	switch s.FooterAlign {
	case AlignLeft, AlignCenter, AlignRight:
	default:
		return fmt.Errorf("receipt: unknown footer alignment %q", s.FooterAlign)
	}
	switch s.Template {
	case TemplateClassic, TemplateModern, TemplateCompact:
	default:
		return fmt.Errorf("receipt: unknown template %q", s.Template)
	}
	return nil
}

// Render maps a committed sale and the shop's style settings to the ordered
// list of printable text lines. It is pure and deterministic: the same inputs
// always produce byte-identical output.
func Render(d Data, s Style) ([]string, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	w := s.PaperWidth
	divider := strings.Repeat("-", w)
	var lines []string

	// Logo marker, modern template only
	if s.Template == TemplateModern && s.LogoRef != "" {
		lines = append(lines, AlignText("[LOGO]", AlignCenter, w))
	}

	// Header block
	if d.ShopName != "" {
		lines = append(lines, AlignText(emphasize(d.ShopName, s.BoldHeader), s.HeaderAlign, w))
	}
	if d.ShopAddress != "" {
		lines = append(lines, AlignText(d.ShopAddress, s.HeaderAlign, w))
	}
	if d.ShopPhone != "" {
		lines = append(lines, AlignText(d.ShopPhone, s.HeaderAlign, w))
	}
	lines = append(lines, "")

	// Metadata block, always left-aligned
	lines = append(lines, "Date: "+d.Date)
	lines = append(lines, "Bill No: "+d.BillNo)
	if d.Cashier != "" {
		lines = append(lines, "Cashier: "+d.Cashier)
	}

	lines = append(lines, divider)

	// Item table
	nameW, qtyW, unitW, totalW := itemColumns(w)
	lines = append(lines, fmt.Sprintf("%-*s %*s %*s %*s", nameW, "Item", qtyW, "Qty", unitW, "Price", totalW, "Total"))
	for _, it := range d.Items {
		lines = append(lines, itemLine(it, w))
	}

	lines = append(lines, divider)

	// Totals
	lines = append(lines, keyValue("Subtotal", Money(d.SubTotal), w))
	lines = append(lines, keyValue("Tax", Money(d.Tax), w))
	lines = append(lines, keyValue(emphasize("TOTAL", s.BoldTotal), Money(d.Total), w))

	lines = append(lines, divider)

	// Footer block
	lines = append(lines, "")
	if s.ThankYou != "" {
		lines = append(lines, AlignText(s.ThankYou, s.FooterAlign, w))
	}
	if s.VisitAgain != "" {
		lines = append(lines, AlignText(s.VisitAgain, s.FooterAlign, w))
	}

	if s.Template == TemplateCompact {
		lines = collapseBlank(lines)
	}
	return lines, nil
}

// collapseBlank reduces runs of blank lines to a single blank line
func collapseBlank(lines []string) []string {
	out := lines[:0]
	prevBlank := false
	for _, l := range lines {
		blank := strings.TrimSpace(l) == ""
		if blank && prevBlank {
			continue
		}
		out = append(out, l)
		prevBlank = blank
	}
	return out
}
