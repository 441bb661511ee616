package repository

import "github.com/tu-usuario/fruit-track/internal/domain/entity"

// SalaryRepository define el puerto de persistencia para salarios y sus pagos.
type SalaryRepository interface {
	Create(s *entity.Salary) error
	GetByID(id string) (*entity.Salary, error)
	List(limit, offset int) ([]*entity.Salary, error)

	CreatePayment(p *entity.SalaryPayment) error
	GetPaymentByID(id string) (*entity.SalaryPayment, error)
	ListPayments(limit, offset int) ([]*entity.SalaryPayment, error)
	UpdatePaymentStatus(id, status string) error
}
