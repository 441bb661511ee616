package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/fruit-track/internal/application/dto"
	"github.com/tu-usuario/fruit-track/internal/application/usecase"
	"github.com/tu-usuario/fruit-track/internal/domain"
	"github.com/tu-usuario/fruit-track/internal/domain/entity"
	"github.com/tu-usuario/fruit-track/internal/domain/repository"
)

type fakeAssignmentRepo struct {
	assignments map[string]*entity.Assignment
	sales       *fakeSaleRepo // emula el ON DELETE CASCADE de las ventas hijas
}

func newFakeAssignmentRepo() *fakeAssignmentRepo {
	return &fakeAssignmentRepo{assignments: map[string]*entity.Assignment{}}
}

func (r *fakeAssignmentRepo) Create(a *entity.Assignment) error {
	r.assignments[a.ID] = a
	return nil
}

func (r *fakeAssignmentRepo) GetByID(id string) (*entity.Assignment, error) {
	return r.assignments[id], nil
}

func (r *fakeAssignmentRepo) GetForUpdate(id string) (*entity.Assignment, error) {
	return r.assignments[id], nil
}

func (r *fakeAssignmentRepo) List(int, int) ([]*entity.Assignment, error) {
	var out []*entity.Assignment
	for _, a := range r.assignments {
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeAssignmentRepo) ListBySeller(sellerID string, _, _ int) ([]*entity.Assignment, error) {
	var out []*entity.Assignment
	for _, a := range r.assignments {
		if a.SellerID == sellerID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAssignmentRepo) UpdateStatus(id, status string) error {
	if a, ok := r.assignments[id]; ok {
		a.Status = status
	}
	return nil
}

func (r *fakeAssignmentRepo) Delete(id string) error {
	delete(r.assignments, id)
	if r.sales != nil {
		for sid, s := range r.sales.sales {
			if s.AssignmentID == id {
				delete(r.sales.sales, sid)
			}
		}
	}
	return nil
}

type fakeSaleRepo struct {
	sales map[string]*entity.Sale
}

func newFakeSaleRepo() *fakeSaleRepo { return &fakeSaleRepo{sales: map[string]*entity.Sale{}} }

func (r *fakeSaleRepo) Create(s *entity.Sale) error              { r.sales[s.ID] = s; return nil }
func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error)  { return r.sales[id], nil }
func (r *fakeSaleRepo) List(int, int) ([]*entity.Sale, error)    { return nil, nil }
func (r *fakeSaleRepo) ListBySeller(string, int, int) ([]*entity.Sale, error) {
	return nil, nil
}

func (r *fakeSaleRepo) ListByAssignment(assignmentID string) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.sales {
		if s.AssignmentID == assignmentID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) SumQuantityByAssignment(assignmentID string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, s := range r.sales {
		if s.AssignmentID == assignmentID {
			sum = sum.Add(s.QuantitySold)
		}
	}
	return sum, nil
}

func (r *fakeSaleRepo) DeleteAll() (int64, error) { return 0, nil }

func (r *fakeSaleRepo) SummaryBySeller() ([]repository.SellerSalesResult, error) { return nil, nil }

type fakeMovementRepo struct {
	movements []*entity.StockMovement
}

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	r.movements = append(r.movements, m)
	return nil
}

func (r *fakeMovementRepo) List(int, int) ([]*entity.StockMovement, error) {
	return r.movements, nil
}

func (r *fakeMovementRepo) ListByFruitType(fruitType string, _, _ int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.movements {
		if m.FruitType == fruitType {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) Balance(fruitType string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, m := range r.movements {
		if m.FruitType == fruitType {
			sum = sum.Add(m.SignedQuantity())
		}
	}
	return sum, nil
}

func (r *fakeMovementRepo) DeleteByReference(referenceType, referenceID string) error {
	kept := r.movements[:0]
	for _, m := range r.movements {
		if !(m.ReferenceType == referenceType && m.ReferenceID == referenceID) {
			kept = append(kept, m)
		}
	}
	r.movements = kept
	return nil
}

func (r *fakeMovementRepo) DeleteByReferenceType(string) (int64, error) { return 0, nil }

func (r *fakeMovementRepo) DeleteAll() (int64, error) {
	n := int64(len(r.movements))
	r.movements = nil
	return n, nil
}

type fakeInventoryRepo struct {
	snapshots map[string]decimal.Decimal
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{snapshots: map[string]decimal.Decimal{}}
}

func (r *fakeInventoryRepo) Create(i *entity.Inventory) error {
	r.snapshots[i.FruitType] = i.Quantity
	return nil
}

func (r *fakeInventoryRepo) List(int, int) ([]*entity.Inventory, error) { return nil, nil }

func (r *fakeInventoryRepo) GetByFruitType(string) (*entity.Inventory, error) { return nil, nil }

func (r *fakeInventoryRepo) GetByFruitTypeForUpdate(string) (*entity.Inventory, error) {
	return nil, nil
}

func (r *fakeInventoryRepo) UpdateQuantity(fruitType string, quantity decimal.Decimal) error {
	r.snapshots[fruitType] = quantity
	return nil
}

func (r *fakeInventoryRepo) RecomputeAll() error { return nil }

// fakeAssignmentTxRunner pasa los fakes como repos "atados a la transacción".
type fakeAssignmentTxRunner struct {
	assignments *fakeAssignmentRepo
	sales       *fakeSaleRepo
	movements   *fakeMovementRepo
	inventory   *fakeInventoryRepo
}

func newFakeAssignmentTxRunner(users *fakeUserRepo) (*usecase.AssignmentUseCase, *fakeAssignmentTxRunner) {
	runner := &fakeAssignmentTxRunner{
		assignments: newFakeAssignmentRepo(),
		sales:       newFakeSaleRepo(),
		movements:   &fakeMovementRepo{},
		inventory:   newFakeInventoryRepo(),
	}
	runner.assignments.sales = runner.sales
	uc := usecase.NewAssignmentUseCase(runner, runner.assignments, runner.sales, users)
	return uc, runner
}

func (r *fakeAssignmentTxRunner) Run(_ context.Context, fn func(
	repository.AssignmentRepository,
	repository.SaleRepository,
	repository.StockMovementRepository,
	repository.InventoryRepository,
) error) error {
	return fn(r.assignments, r.sales, r.movements, r.inventory)
}

const (
	asgSellerID = "00000000-0000-0000-0000-000000000021"
	asgDriverID = "00000000-0000-0000-0000-000000000022"
)

func buildAssignmentUseCase() (*usecase.AssignmentUseCase, *fakeAssignmentTxRunner) {
	users := newFakeUserRepo(
		&entity.User{ID: asgSellerID, Name: "Vendedor", Role: entity.RoleSeller, IsActive: true},
		&entity.User{ID: asgDriverID, Name: "Conductor", Role: entity.RoleDriver, IsActive: true},
	)
	return newFakeAssignmentTxRunner(users)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateAssignment_NaceEnTransito(t *testing.T) {
	uc, _ := buildAssignmentUseCase()

	resp, err := uc.Create(dto.CreateAssignmentRequest{
		SellerID:         asgSellerID,
		FruitType:        "mango",
		QuantityAssigned: money("100"),
		MoneyIssued:      money("50"),
		TravelDate:       "2026-09-02",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.AssignmentInTransit, resp.Status)
	assert.Equal(t, "Vendedor", resp.SellerName)
	assert.True(t, resp.QuantityRemaining.Equal(money("100")),
		"sin ventas el restante es lo asignado")
}

func TestCreateAssignment_DestinatarioDebeSerSellerActivo(t *testing.T) {
	uc, _ := buildAssignmentUseCase()

	base := dto.CreateAssignmentRequest{
		FruitType:        "mango",
		QuantityAssigned: money("100"),
		TravelDate:       "2026-09-02",
	}

	// Rol incorrecto
	in := base
	in.SellerID = asgDriverID
	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrUserNotFound,
		"solo usuarios con rol seller reciben asignaciones")

	// Inexistente
	in = base
	in.SellerID = "00000000-0000-0000-0000-00000000dead"
	_, err = uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestCreateAssignment_SellerDesactivado(t *testing.T) {
	users := newFakeUserRepo(&entity.User{
		ID: asgSellerID, Name: "Inactivo", Role: entity.RoleSeller, IsActive: false,
	})
	uc, _ := newFakeAssignmentTxRunner(users)

	_, err := uc.Create(dto.CreateAssignmentRequest{
		SellerID:         asgSellerID,
		FruitType:        "mango",
		QuantityAssigned: money("100"),
		TravelDate:       "2026-09-02",
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound,
		"un seller dado de baja no recibe asignaciones nuevas")
}

func TestCreateAssignment_Validaciones(t *testing.T) {
	uc, _ := buildAssignmentUseCase()

	_, err := uc.Create(dto.CreateAssignmentRequest{
		SellerID: asgSellerID, FruitType: "mango",
		QuantityAssigned: money("0"), TravelDate: "2026-09-02",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateAssignmentRequest{
		SellerID: asgSellerID, FruitType: "mango",
		QuantityAssigned: money("10"), TravelDate: "02-09-2026",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "la fecha debe ser YYYY-MM-DD")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests List / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestListAssignments_DerivaRestanteDeVentasHijas(t *testing.T) {
	uc, runner := buildAssignmentUseCase()
	a := &entity.Assignment{
		ID: "a1", SellerID: asgSellerID, FruitType: "mango",
		QuantityAssigned: money("100"), Status: entity.AssignmentInTransit,
	}
	require.NoError(t, runner.assignments.Create(a))
	require.NoError(t, runner.sales.Create(&entity.Sale{
		ID: "s1", AssignmentID: "a1", SellerID: asgSellerID,
		QuantitySold: money("30"), RevenueCollected: money("75"),
	}))
	require.NoError(t, runner.sales.Create(&entity.Sale{
		ID: "s2", AssignmentID: "a1", SellerID: asgSellerID,
		QuantitySold: money("20"), RevenueCollected: money("50"),
	}))

	out, err := uc.List(asgSellerID, entity.RoleSeller, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.True(t, out[0].QuantityRemaining.Equal(money("50")),
		"restante = 100 - 30 - 20, fue %s", out[0].QuantityRemaining)
	assert.True(t, out[0].TotalRevenue.Equal(money("125")))
	assert.Len(t, out[0].Sales, 2)
}

func TestListAssignments_SellerSoloVeLasSuyas(t *testing.T) {
	uc, runner := buildAssignmentUseCase()
	require.NoError(t, runner.assignments.Create(&entity.Assignment{
		ID: "mia", SellerID: asgSellerID, QuantityAssigned: money("10"),
	}))
	require.NoError(t, runner.assignments.Create(&entity.Assignment{
		ID: "ajena", SellerID: "otro-seller", QuantityAssigned: money("10"),
	}))

	mine, err := uc.List(asgSellerID, entity.RoleSeller, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "mia", mine[0].ID)

	all, err := uc.List("ceo-id", entity.RoleCEO, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 2, "el CEO ve todas")
}

func TestDeleteAssignment_Inexistente(t *testing.T) {
	uc, _ := buildAssignmentUseCase()

	err := uc.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Borrar una asignación no puede dejar el libro de movimientos descontado por
// ventas que ya no existen: los movimientos de esas ventas caen en la misma
// transacción y el snapshot vuelve al balance del libro restante.
func TestDeleteAssignment_BorraMovimientosDeVentasYRecalculaSnapshot(t *testing.T) {
	uc, runner := buildAssignmentUseCase()

	require.NoError(t, runner.movements.Create(&entity.StockMovement{
		ID: "mov-manual", FruitType: "mango", Direction: entity.MovementIn,
		Quantity: money("150"), ReferenceType: entity.MovementRefManual,
	}))
	require.NoError(t, runner.assignments.Create(&entity.Assignment{
		ID: "a1", SellerID: asgSellerID, FruitType: "mango",
		QuantityAssigned: money("100"), Status: entity.AssignmentInTransit,
	}))
	for _, v := range []struct{ id, qty string }{{"v1", "30"}, {"v2", "20"}} {
		require.NoError(t, runner.sales.Create(&entity.Sale{
			ID: v.id, AssignmentID: "a1", SellerID: asgSellerID,
			FruitType: "mango", QuantitySold: money(v.qty),
		}))
		require.NoError(t, runner.movements.Create(&entity.StockMovement{
			ID: "mov-" + v.id, FruitType: "mango", Direction: entity.MovementOut,
			Quantity: money(v.qty), ReferenceType: entity.MovementRefSale, ReferenceID: v.id,
		}))
	}

	require.NoError(t, uc.Delete(context.Background(), "a1"))

	assert.Empty(t, runner.sales.sales, "las ventas hijas caen con la asignación")
	for _, m := range runner.movements.movements {
		assert.NotEqual(t, entity.MovementRefSale, m.ReferenceType,
			"ningún movimiento puede quedar referenciando ventas borradas")
	}
	assert.True(t, runner.inventory.snapshots["mango"].Equal(money("150")),
		"el snapshot vuelve al balance del libro restante, fue %s",
		runner.inventory.snapshots["mango"])
}
