package request

// UpdateShopRequest represents a shop settings update
type UpdateShopRequest struct {
	Name     *string  `json:"name" binding:"omitempty,min=1,max=255"`
	Address  *string  `json:"address" binding:"omitempty,max=255"`
	Phone    *string  `json:"phone" binding:"omitempty,max=50"`
	TaxRate  *float64 `json:"tax_rate" binding:"omitempty,min=0,max=1"`
	Currency *string  `json:"currency" binding:"omitempty,max=10"`
}

// UpdateReceiptStyleRequest represents a receipt style update. All fields are
// optional; widths, alignments and templates are validated in the service.
type UpdateReceiptStyleRequest struct {
	PaperWidth     *int    `json:"paper_width"`
	HeaderAlign    *string `json:"header_align"`
	FooterAlign    *string `json:"footer_align"`
	ShopName       *string `json:"shop_name" binding:"omitempty,max=255"`
	ShopAddress    *string `json:"shop_address" binding:"omitempty,max=255"`
	ShopPhone      *string `json:"shop_phone" binding:"omitempty,max=50"`
	ThankYouText   *string `json:"thank_you_text" binding:"omitempty,max=255"`
	VisitAgainText *string `json:"visit_again_text" binding:"omitempty,max=255"`
	BoldHeader     *bool   `json:"bold_header"`
	BoldTotal      *bool   `json:"bold_total"`
	Template       *string `json:"template"`
	LogoRef        *string `json:"logo_ref" binding:"omitempty,max=255"`
}
