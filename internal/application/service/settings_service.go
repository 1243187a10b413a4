package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sangkips/salespoint-api/internal/domain/entity"
	"github.com/sangkips/salespoint-api/internal/domain/enum"
	"github.com/sangkips/salespoint-api/internal/domain/repository"
	"github.com/sangkips/salespoint-api/pkg/apperror"
)

// SettingsService manages shop settings and the receipt style
type SettingsService struct {
	shopRepo  repository.ShopRepository
	styleRepo repository.ReceiptStyleRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(shopRepo repository.ShopRepository, styleRepo repository.ReceiptStyleRepository) *SettingsService {
	return &SettingsService{
		shopRepo:  shopRepo,
		styleRepo: styleRepo,
	}
}

// GetShop retrieves the shop record
func (s *SettingsService) GetShop(ctx context.Context, shopID uuid.UUID) (*entity.Shop, error) {
	shop, err := s.shopRepo.GetByID(ctx, shopID)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, apperror.NewNotFoundError("Shop")
	}
	return shop, nil
}

// UpdateShopInput carries the mutable shop fields, all optional
type UpdateShopInput struct {
	Name     *string
	Address  *string
	Phone    *string
	TaxRate  *float64
	Currency *string
}

// UpdateShop modifies the shop record
func (s *SettingsService) UpdateShop(ctx context.Context, shopID uuid.UUID, input *UpdateShopInput) (*entity.Shop, error) {
	shop, err := s.GetShop(ctx, shopID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		shop.Name = *input.Name
	}
	if input.Address != nil {
		shop.Address = *input.Address
	}
	if input.Phone != nil {
		shop.Phone = *input.Phone
	}
	if input.TaxRate != nil {
		if *input.TaxRate < 0 || *input.TaxRate > 1 {
			return nil, apperror.NewBadRequestError("Tax rate must be a fraction between 0 and 1")
		}
		shop.TaxRate = *input.TaxRate
	}
	if input.Currency != nil {
		shop.Currency = *input.Currency
	}

	if err := s.shopRepo.Update(ctx, shop); err != nil {
		return nil, err
	}
	return shop, nil
}

// GetReceiptStyle returns the shop's receipt style, or the defaults when the
// shop never saved one. The defaults are not persisted by reading them.
func (s *SettingsService) GetReceiptStyle(ctx context.Context, shopID uuid.UUID) (*entity.ReceiptStyle, error) {
	style, err := s.styleRepo.GetByShopID(ctx, shopID)
	if err != nil {
		return nil, err
	}
	if style == nil {
		return entity.DefaultReceiptStyle(shopID), nil
	}
	return style, nil
}

// UpdateReceiptStyleInput carries the mutable style fields, all optional
type UpdateReceiptStyleInput struct {
	PaperWidth     *int
	HeaderAlign    *enum.Alignment
	FooterAlign    *enum.Alignment
	ShopName       *string
	ShopAddress    *string
	ShopPhone      *string
	ThankYouText   *string
	VisitAgainText *string
	BoldHeader     *bool
	BoldTotal      *bool
	Template       *enum.ReceiptTemplate
	LogoRef        *string
}

// UpdateReceiptStyle validates and saves the shop's receipt style. Out of
// range widths and unknown alignments or templates are rejected, never
// silently corrected.
func (s *SettingsService) UpdateReceiptStyle(ctx context.Context, shopID uuid.UUID, input *UpdateReceiptStyleInput) (*entity.ReceiptStyle, error) {
	style, err := s.styleRepo.GetByShopID(ctx, shopID)
	if err != nil {
		return nil, err
	}
	created := false
	if style == nil {
		style = entity.DefaultReceiptStyle(shopID)
		created = true
	}

	if input.PaperWidth != nil {
		if *input.PaperWidth < entity.MinPaperWidth || *input.PaperWidth > entity.MaxPaperWidth {
			return nil, apperror.NewBadRequestError(fmt.Sprintf(
				"Paper width must be between %d and %d characters", entity.MinPaperWidth, entity.MaxPaperWidth))
		}
		style.PaperWidth = *input.PaperWidth
	}
	if input.HeaderAlign != nil {
		if !input.HeaderAlign.Valid() {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Unknown header alignment %q", *input.HeaderAlign))
		}
		style.HeaderAlign = *input.HeaderAlign
	}
	if input.FooterAlign != nil {
		if !input.FooterAlign.Valid() {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Unknown footer alignment %q", *input.FooterAlign))
		}
		style.FooterAlign = *input.FooterAlign
	}
	if input.Template != nil {
		if !input.Template.Valid() {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Unknown receipt template %q", *input.Template))
		}
		style.Template = *input.Template
	}
	if input.ShopName != nil {
		style.ShopName = *input.ShopName
	}
	if input.ShopAddress != nil {
		style.ShopAddress = *input.ShopAddress
	}
	if input.ShopPhone != nil {
		style.ShopPhone = *input.ShopPhone
	}
	if input.ThankYouText != nil {
		style.ThankYouText = *input.ThankYouText
	}
	if input.VisitAgainText != nil {
		style.VisitAgainText = *input.VisitAgainText
	}
	if input.BoldHeader != nil {
		style.BoldHeader = *input.BoldHeader
	}
	if input.BoldTotal != nil {
		style.BoldTotal = *input.BoldTotal
	}
	if input.LogoRef != nil {
		if *input.LogoRef == "" {
			style.LogoRef = nil
		} else {
			style.LogoRef = input.LogoRef
		}
	}

	if created {
		err = s.styleRepo.Create(ctx, style)
	} else {
		err = s.styleRepo.Update(ctx, style)
	}
	if err != nil {
		return nil, err
	}
	return style, nil
}
