package repository

import (
	"context"

	"github.com/jhoicas/jprint-vendor-api/internal/domain/entity"
)

// VendorRepository define el puerto de persistencia para Vendor (DIP).
// Los Get devuelven (nil, nil) cuando no existe.
type VendorRepository interface {
	Create(ctx context.Context, vendor *entity.Vendor) error
	GetByID(ctx context.Context, id string) (*entity.Vendor, error)
	GetByEmail(ctx context.Context, email string) (*entity.Vendor, error)
}
