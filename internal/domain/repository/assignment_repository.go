package repository

import "github.com/tu-usuario/fruit-track/internal/domain/entity"

// AssignmentRepository define el puerto de persistencia para asignaciones de vendedor.
type AssignmentRepository interface {
	Create(a *entity.Assignment) error
	GetByID(id string) (*entity.Assignment, error)
	// GetForUpdate bloquea la fila de la asignación (SELECT FOR UPDATE) para que
	// dos registros de venta concurrentes contra la misma asignación se serialicen.
	GetForUpdate(id string) (*entity.Assignment, error)
	List(limit, offset int) ([]*entity.Assignment, error)
	ListBySeller(sellerID string, limit, offset int) ([]*entity.Assignment, error)
	UpdateStatus(id, status string) error
	// Delete elimina la asignación; las ventas hijas caen por cascade (ownership exclusivo).
	Delete(id string) error
}
