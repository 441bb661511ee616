package repository

import "github.com/tu-usuario/fruit-track/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Los métodos Get* devuelven (nil, nil) cuando no hay fila.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error) // email ya normalizado a minúsculas
	Update(user *entity.User) error
	List(limit, offset int) ([]*entity.User, error)
	// Deactivate marca is_active=false; nunca hay borrado físico de usuarios.
	Deactivate(id string) error
}
