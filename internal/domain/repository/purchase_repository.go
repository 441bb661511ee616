package repository

import "github.com/tu-usuario/fruit-track/internal/domain/entity"

// PurchaseRepository define el puerto de persistencia para compras.
type PurchaseRepository interface {
	Create(p *entity.Purchase) error
	GetByID(id string) (*entity.Purchase, error)
	List(limit, offset int) ([]*entity.Purchase, error)
	ListByPurchaser(purchaserID string, limit, offset int) ([]*entity.Purchase, error)
	Update(p *entity.Purchase) error
	Delete(id string) error
}
