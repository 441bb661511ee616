package repository

import "github.com/tu-usuario/fruit-track/internal/domain/entity"

// CarExpenseRepository define el puerto de persistencia para gastos de vehículo.
type CarExpenseRepository interface {
	Create(e *entity.CarExpense) error
	GetByID(id string) (*entity.CarExpense, error)
	List(limit, offset int) ([]*entity.CarExpense, error)
	ListByDriver(driverID string, limit, offset int) ([]*entity.CarExpense, error)
	Approve(id, approverID string) error
}

// OtherExpenseRepository define el puerto de persistencia para gastos generales.
type OtherExpenseRepository interface {
	Create(e *entity.OtherExpense) error
	GetByID(id string) (*entity.OtherExpense, error)
	List(limit, offset int) ([]*entity.OtherExpense, error)
	Approve(id, approverID string) error
}
