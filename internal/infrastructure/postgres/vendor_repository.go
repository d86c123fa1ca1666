package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/jprint-vendor-api/internal/domain"
	"github.com/jhoicas/jprint-vendor-api/internal/domain/entity"
	"github.com/jhoicas/jprint-vendor-api/internal/domain/repository"
)

var _ repository.VendorRepository = (*VendorRepo)(nil)

// VendorRepo implementación del puerto VendorRepository sobre PostgreSQL.
type VendorRepo struct {
	q Querier
}

// NewVendorRepository construye el adaptador de persistencia para vendedores.
func NewVendorRepository(q Querier) *VendorRepo {
	return &VendorRepo{q: q}
}

const vendorColumns = `id, name, email, password_hash, sector, is_active, created_at, updated_at`

// Create persiste un nuevo vendedor.
func (r *VendorRepo) Create(ctx context.Context, v *entity.Vendor) error {
	query := `
		INSERT INTO vendors (` + vendorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		v.ID, v.Name, v.Email, v.PasswordHash, v.Sector, v.IsActive, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert vendor: %w", err)
	}
	return nil
}

// GetByID obtiene un vendedor por ID.
func (r *VendorRepo) GetByID(ctx context.Context, id string) (*entity.Vendor, error) {
	return r.findOne(ctx, `SELECT `+vendorColumns+` FROM vendors WHERE id = $1`, id)
}

// GetByEmail obtiene un vendedor por email (sin distinguir mayúsculas).
func (r *VendorRepo) GetByEmail(ctx context.Context, email string) (*entity.Vendor, error) {
	return r.findOne(ctx, `SELECT `+vendorColumns+` FROM vendors WHERE lower(email) = lower($1) LIMIT 1`, email)
}

func (r *VendorRepo) findOne(ctx context.Context, query string, arg string) (*entity.Vendor, error) {
	var v entity.Vendor
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&v.ID, &v.Name, &v.Email, &v.PasswordHash, &v.Sector, &v.IsActive, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isInvalidUUID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendor: %w", err)
	}
	return &v, nil
}
