package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/jprint-vendor-api/internal/domain/entity"
	"github.com/jhoicas/jprint-vendor-api/internal/domain/repository"
)

var _ repository.StudentRepository = (*StudentRepo)(nil)

// StudentRepo implementación de StudentRepository (usable con pool o tx).
type StudentRepo struct {
	q Querier
}

// NewStudentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStudentRepository(q Querier) *StudentRepo {
	return &StudentRepo{q: q}
}

// UpsertByEmail inserta el estudiante si el email es nuevo y devuelve siempre la fila vigente.
// ON CONFLICT DO NOTHING no devuelve la fila existente, por eso la segunda lectura.
func (r *StudentRepo) UpsertByEmail(ctx context.Context, s *entity.Student) (*entity.Student, error) {
	query := `
		INSERT INTO students (id, name, email, phone, roll_number, department, created_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), $7)
		ON CONFLICT (email) DO NOTHING`
	if _, err := r.q.Exec(ctx, query,
		s.ID, s.Name, s.Email, s.Phone, s.RollNumber, s.Department, s.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("upsert student: %w", err)
	}
	out, err := r.find(ctx, `WHERE email = $1`, s.Email)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, fmt.Errorf("upsert student: fila no encontrada tras insertar %s", s.Email)
	}
	return out, nil
}

func (r *StudentRepo) find(ctx context.Context, where string, arg string) (*entity.Student, error) {
	query := `
		SELECT id, name, email, COALESCE(phone, ''), COALESCE(roll_number, ''), COALESCE(department, ''), created_at
		FROM students ` + where
	var s entity.Student
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&s.ID, &s.Name, &s.Email, &s.Phone, &s.RollNumber, &s.Department, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidUUID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get student: %w", err)
	}
	return &s, nil
}
