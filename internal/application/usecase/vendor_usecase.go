package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jackel7/stock-mate/internal/application/dto"
	"github.com/jackel7/stock-mate/internal/domain"
	"github.com/jackel7/stock-mate/internal/domain/entity"
	"github.com/jackel7/stock-mate/internal/domain/repository"
)

// VendorUseCase covers vendor CRUD.
type VendorUseCase struct {
	repo        repository.VendorRepository
	productRepo repository.ProductRepository
}

// NewVendorUseCase builds the use case.
func NewVendorUseCase(repo repository.VendorRepository, productRepo repository.ProductRepository) *VendorUseCase {
	return &VendorUseCase{repo: repo, productRepo: productRepo}
}

// Create registers a new vendor.
func (uc *VendorUseCase) Create(ctx context.Context, in dto.VendorRequest) (*dto.VendorResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	vendor := &entity.Vendor{
		ID:          uuid.New().String(),
		Name:        in.Name,
		ContactName: in.ContactName,
		Email:       in.Email,
		Phone:       in.Phone,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(ctx, vendor); err != nil {
		return nil, err
	}
	return toVendorResponse(vendor), nil
}

// List returns all vendors, newest first.
func (uc *VendorUseCase) List(ctx context.Context) ([]dto.VendorResponse, error) {
	vendors, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VendorResponse, 0, len(vendors))
	for _, v := range vendors {
		out = append(out, *toVendorResponse(v))
	}
	return out, nil
}

// Update edits a vendor's contact details.
func (uc *VendorUseCase) Update(ctx context.Context, id string, in dto.VendorRequest) (*dto.VendorResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	vendor, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, domain.ErrNotFound
	}
	vendor.Name = in.Name
	vendor.ContactName = in.ContactName
	vendor.Email = in.Email
	vendor.Phone = in.Phone
	if err := uc.repo.Update(ctx, vendor); err != nil {
		return nil, err
	}
	return toVendorResponse(vendor), nil
}

// Delete removes a vendor unless products still reference it.
func (uc *VendorUseCase) Delete(ctx context.Context, id string) error {
	vendor, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if vendor == nil {
		return domain.ErrNotFound
	}
	count, err := uc.productRepo.CountByVendor(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrConflict
	}
	return uc.repo.Delete(ctx, id)
}

func toVendorResponse(v *entity.Vendor) *dto.VendorResponse {
	return &dto.VendorResponse{
		ID:          v.ID,
		Name:        v.Name,
		ContactName: v.ContactName,
		Email:       v.Email,
		Phone:       v.Phone,
		CreatedAt:   v.CreatedAt,
	}
}
