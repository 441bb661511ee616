package repository

import (
	"time"

	"github.com/tu-usuario/fruit-track/internal/domain/entity"
)

// MessageRepository define el puerto de persistencia para mensajes internos.
type MessageRepository interface {
	Create(m *entity.Message) error
	GetByID(id string) (*entity.Message, error)
	List(limit, offset int) ([]*entity.Message, error)
	// ListForRecipient devuelve los mensajes dirigidos al usuario o a su rol.
	ListForRecipient(userID, role string, limit, offset int) ([]*entity.Message, error)
	MarkRead(id string, readAt time.Time) error
}
