package repository

import (
	"context"

	"github.com/jhoicas/jprint-vendor-api/internal/domain/entity"
)

// StudentRepository define el puerto de persistencia para Student.
type StudentRepository interface {
	// UpsertByEmail crea el estudiante si el email no existe; si existe lo devuelve sin modificarlo.
	UpsertByEmail(ctx context.Context, student *entity.Student) (*entity.Student, error)
}
