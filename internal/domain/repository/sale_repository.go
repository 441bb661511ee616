package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/fruit-track/internal/domain/entity"
)

// SellerSalesResult fila cruda del resumen de ventas por vendedor.
type SellerSalesResult struct {
	SellerID     string
	SellerName   string
	TotalRevenue decimal.Decimal
	SalesCount   int
}

// SaleRepository define el puerto de persistencia para ventas.
type SaleRepository interface {
	Create(s *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	List(limit, offset int) ([]*entity.Sale, error)
	ListBySeller(sellerID string, limit, offset int) ([]*entity.Sale, error)
	ListByAssignment(assignmentID string) ([]*entity.Sale, error)
	// SumQuantityByAssignment devuelve la suma de quantity_sold de la asignación
	// (cero si no hay ventas). Se usa dentro de la transacción del chequeo de oversell.
	SumQuantityByAssignment(assignmentID string) (decimal.Decimal, error)
	// DeleteAll borra todas las ventas y devuelve cuántas filas eliminó.
	DeleteAll() (int64, error)
	// SummaryBySeller agrupa revenue y número de ventas por vendedor.
	SummaryBySeller() ([]SellerSalesResult, error)
}
