package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/salespoint-api/internal/domain/entity"
	"github.com/sangkips/salespoint-api/internal/domain/repository"
	"github.com/sangkips/salespoint-api/pkg/apperror"
	"github.com/sangkips/salespoint-api/pkg/email"
	"github.com/sangkips/salespoint-api/pkg/printer"
	"github.com/sangkips/salespoint-api/pkg/receipt"
)

// ReceiptService renders committed transactions into receipt lines and
// delivers them to the printer channel or by email. Rendering itself is pure;
// all lookups happen here so the renderer stays deterministic.
type ReceiptService struct {
	txnRepo      repository.TransactionRepository
	shopRepo     repository.ShopRepository
	styleRepo    repository.ReceiptStyleRepository
	cashierRepo  repository.CashierRepository
	channel      *printer.Channel
	emailService *email.EmailService
}

// NewReceiptService creates a new receipt service
func NewReceiptService(
	txnRepo repository.TransactionRepository,
	shopRepo repository.ShopRepository,
	styleRepo repository.ReceiptStyleRepository,
	cashierRepo repository.CashierRepository,
	channel *printer.Channel,
	emailService *email.EmailService,
) *ReceiptService {
	return &ReceiptService{
		txnRepo:      txnRepo,
		shopRepo:     shopRepo,
		styleRepo:    styleRepo,
		cashierRepo:  cashierRepo,
		channel:      channel,
		emailService: emailService,
	}
}

// cents converts an integer cent amount to a decimal for display
func cents(v int64) float64 {
	return float64(v) / 100
}

// styleFor loads the shop's receipt style, falling back to the defaults when
// the shop never saved one.
func (s *ReceiptService) styleFor(ctx context.Context, shopID uuid.UUID) (*entity.ReceiptStyle, error) {
	style, err := s.styleRepo.GetByShopID(ctx, shopID)
	if err != nil {
		return nil, err
	}
	if style == nil {
		return entity.DefaultReceiptStyle(shopID), nil
	}
	return style, nil
}

// toRenderStyle maps the persisted style entity onto the renderer's settings
func toRenderStyle(style *entity.ReceiptStyle) receipt.Style {
	rs := receipt.Style{
		PaperWidth:  style.PaperWidth,
		HeaderAlign: receipt.Align(style.HeaderAlign),
		FooterAlign: receipt.Align(style.FooterAlign),
		BoldHeader:  style.BoldHeader,
		BoldTotal:   style.BoldTotal,
		Template:    receipt.Template(style.Template),
		ThankYou:    style.ThankYouText,
		VisitAgain:  style.VisitAgainText,
	}
	if style.LogoRef != nil {
		rs.LogoRef = *style.LogoRef
	}
	return rs
}

// buildData assembles the render input for one transaction. Shop identity on
// the receipt prefers the style's overrides over the shop record, so a shop
// can print a trading name different from its registered one.
func (s *ReceiptService) buildData(ctx context.Context, txn *entity.Transaction, style *entity.ReceiptStyle) (receipt.Data, error) {
	shop, err := s.shopRepo.GetByID(ctx, txn.ShopID)
	if err != nil {
		return receipt.Data{}, err
	}

	data := receipt.Data{
		Date:     txn.CreatedAt.Format("2006-01-02 15:04"),
		BillNo:   txn.BillNo,
		SubTotal: cents(txn.SubTotal),
		Tax:      cents(txn.TaxAmount),
		Total:    cents(txn.TotalAmount),
	}

	if shop != nil {
		data.ShopName = shop.Name
		data.ShopAddress = shop.Address
		data.ShopPhone = shop.Phone
	}
	if style.ShopName != "" {
		data.ShopName = style.ShopName
	}
	if style.ShopAddress != "" {
		data.ShopAddress = style.ShopAddress
	}
	if style.ShopPhone != "" {
		data.ShopPhone = style.ShopPhone
	}

	if cashier, err := s.cashierRepo.GetByID(ctx, txn.CashierID); err == nil && cashier != nil {
		data.Cashier = cashier.Name
	}

	for i := range txn.Items {
		data.Items = append(data.Items, receipt.Item{
			Name:      txn.Items[i].ProductName,
			Quantity:  txn.Items[i].Quantity,
			UnitPrice: cents(txn.Items[i].UnitPrice),
			Total:     cents(txn.Items[i].TotalPrice),
		})
	}
	return data, nil
}

// Render produces the receipt lines for a committed transaction. The same
// transaction and style always produce byte-identical lines.
func (s *ReceiptService) Render(ctx context.Context, transactionID uuid.UUID) ([]string, error) {
	txn, err := s.txnRepo.GetWithItems(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, apperror.NewNotFoundError("Transaction")
	}

	style, err := s.styleFor(ctx, txn.ShopID)
	if err != nil {
		return nil, err
	}

	data, err := s.buildData(ctx, txn, style)
	if err != nil {
		return nil, err
	}

	lines, err := receipt.Render(data, toRenderStyle(style))
	if err != nil {
		return nil, apperror.NewBadRequestError("Receipt style is invalid: " + err.Error())
	}
	return lines, nil
}

// Print renders a transaction's receipt and sends it down the printer
// channel. The rendered lines are returned even when printing fails, so the
// caller can fall back to showing the receipt on screen.
func (s *ReceiptService) Print(ctx context.Context, transactionID uuid.UUID) ([]string, error) {
	lines, err := s.Render(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if err := s.channel.Print(ctx, lines); err != nil {
		return lines, err
	}
	return lines, nil
}

// Email renders a transaction's receipt and mails it as plain text
func (s *ReceiptService) Email(ctx context.Context, transactionID uuid.UUID, toEmail string) error {
	txn, err := s.txnRepo.GetByID(ctx, transactionID)
	if err != nil {
		return err
	}
	if txn == nil {
		return apperror.NewNotFoundError("Transaction")
	}

	lines, err := s.Render(ctx, transactionID)
	if err != nil {
		return err
	}

	shopName := ""
	if shop, err := s.shopRepo.GetByID(ctx, txn.ShopID); err == nil && shop != nil {
		shopName = shop.Name
	}
	return s.emailService.SendReceipt(toEmail, shopName, txn.BillNo, lines)
}
