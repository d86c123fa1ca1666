package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/jprint-vendor-api/internal/application/auth"
	"github.com/jhoicas/jprint-vendor-api/internal/application/dto"
	"github.com/jhoicas/jprint-vendor-api/internal/domain"
	"github.com/jhoicas/jprint-vendor-api/internal/domain/entity"
	"github.com/jhoicas/jprint-vendor-api/internal/domain/repository"
)

// VendorUseCase alta de vendedores (seed y administración por CLI).
type VendorUseCase struct {
	repo repository.VendorRepository
}

// NewVendorUseCase construye el caso de uso con el puerto de persistencia.
func NewVendorUseCase(repo repository.VendorRepository) *VendorUseCase {
	return &VendorUseCase{repo: repo}
}

// Create registra un vendedor activo. Devuelve ErrDuplicate si el email ya existe.
func (uc *VendorUseCase) Create(ctx context.Context, in dto.CreateVendorRequest) (*dto.VendorProfile, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Name == "" || in.Sector == "" {
		return nil, fmt.Errorf("%w: nombre, email y sector son obligatorios", domain.ErrInvalidInput)
	}
	existing, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	vendor := &entity.Vendor{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        email,
		PasswordHash: hash,
		Sector:       in.Sector,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, vendor); err != nil {
		return nil, err
	}
	return &dto.VendorProfile{
		ID:        vendor.ID,
		Name:      vendor.Name,
		Email:     vendor.Email,
		Sector:    vendor.Sector,
		IsActive:  vendor.IsActive,
		CreatedAt: vendor.CreatedAt,
	}, nil
}
