package ledger_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-control-api/internal/application/ledger"
	"github.com/jhoicas/stock-control-api/internal/domain"
	"github.com/jhoicas/stock-control-api/internal/domain/entity"
	"github.com/jhoicas/stock-control-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok || p.Deleted() {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku && !p.Deleted() {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}
func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) { return r.GetByID(id) }
func (r *fakeProductRepo) Update(p *entity.Product) error                  { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) UpdateStock(id string, stock decimal.Decimal) error {
	r.products[id].CurrentStock = stock
	return nil
}
func (r *fakeProductRepo) List(repository.ProductFilter) ([]*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) Count(repository.ProductFilter) (int, error) { return 0, nil }
func (r *fakeProductRepo) SoftDelete(id string, at time.Time) error {
	r.products[id].DeletedAt = &at
	return nil
}
func (r *fakeProductRepo) HardDelete(id string) error { delete(r.products, id); return nil }

type fakeMovementRepo struct {
	movements []*entity.StockMovement
}

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	r.movements = append(r.movements, m)
	return nil
}
func (r *fakeMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	for _, m := range r.movements {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo { return &fakeUserRepo{users: make(map[string]*entity.User)} }

func (r *fakeUserRepo) Create(u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}
func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) Update(u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) List(bool, int, int) ([]*entity.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) SoftDelete(id string, at time.Time) error {
	r.users[id].DeletedAt = &at
	return nil
}

// fakeTxRunner serializa las transacciones con un mutex, emulando el lock de
// fila: dos movimientos sobre el mismo producto nunca corren entrelazados.
type fakeTxRunner struct {
	mu       sync.Mutex
	movRepo  *fakeMovementRepo
	prodRepo *fakeProductRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(r.movRepo, r.prodRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	uc        *ledger.RecordMovementUseCase
	movRepo   *fakeMovementRepo
	prodRepo  *fakeProductRepo
	userRepo  *fakeUserRepo
	productID string
	userID    string
}

// newFixture arma el caso de uso con un producto con el stock inicial dado y
// un usuario operador activo.
func newFixture(t *testing.T, initialStock string) *fixture {
	t.Helper()
	movRepo := &fakeMovementRepo{}
	prodRepo := newFakeProductRepo()
	userRepo := newFakeUserRepo()

	product := &entity.Product{
		ID:           uuid.New().String(),
		SKU:          "SKU-TEST-1",
		Name:         "Producto de prueba",
		SellingPrice: decimal.NewFromInt(10),
		CurrentStock: decimal.RequireFromString(initialStock),
		Active:       true,
	}
	require.NoError(t, prodRepo.Create(product))

	user := &entity.User{
		ID:     uuid.New().String(),
		Name:   "Operador",
		Email:  "op@example.com",
		Role:   entity.RoleOperator,
		Active: true,
	}
	require.NoError(t, userRepo.Create(user))

	runner := &fakeTxRunner{movRepo: movRepo, prodRepo: prodRepo}
	return &fixture{
		uc:        ledger.NewRecordMovementUseCase(runner, userRepo),
		movRepo:   movRepo,
		prodRepo:  prodRepo,
		userRepo:  userRepo,
		productID: product.ID,
		userID:    user.ID,
	}
}

func (f *fixture) record(t *testing.T, movType entity.MovementType, qty string) (*entity.StockMovement, error) {
	t.Helper()
	return f.uc.RecordMovement(context.Background(), ledger.MovementInput{
		ProductID:    f.productID,
		UserID:       f.userID,
		Type:         movType,
		Quantity:     decimal.RequireFromString(qty),
		MovementDate: time.Now(),
	})
}

func (f *fixture) stock(t *testing.T) decimal.Decimal {
	t.Helper()
	p, err := f.prodRepo.GetByID(f.productID)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.CurrentStock
}

// ──────────────────────────────────────────────────────────────────────────────
// Efecto por tipo de movimiento
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordMovement_EntradaSumaStock(t *testing.T) {
	f := newFixture(t, "10")
	mov, err := f.record(t, entity.MovementEntry, "20")
	require.NoError(t, err)
	require.NotNil(t, mov)

	assert.True(t, f.stock(t).Equal(decimal.NewFromInt(30)),
		"entry debe sumar la cantidad al stock")
	assert.Len(t, f.movRepo.movements, 1)
}

func TestRecordMovement_SalidaRestaStock(t *testing.T) {
	f := newFixture(t, "30")
	_, err := f.record(t, entity.MovementExit, "25")
	require.NoError(t, err)

	assert.True(t, f.stock(t).Equal(decimal.NewFromInt(5)),
		"exit debe restar la cantidad del stock")
}

func TestRecordMovement_DevolucionSumaStock(t *testing.T) {
	f := newFixture(t, "5")
	_, err := f.record(t, entity.MovementReturn, "3")
	require.NoError(t, err)

	assert.True(t, f.stock(t).Equal(decimal.NewFromInt(8)))
}

// adjustment fija el stock en la cantidad, no es un delta.
func TestRecordMovement_AjusteFijaStockAbsoluto(t *testing.T) {
	f := newFixture(t, "37")
	_, err := f.record(t, entity.MovementAdjustment, "12")
	require.NoError(t, err)

	assert.True(t, f.stock(t).Equal(decimal.NewFromInt(12)),
		"adjustment debe fijar el stock en la cantidad, no sumarla")
}

func TestRecordMovement_AjusteACero(t *testing.T) {
	f := newFixture(t, "37")
	_, err := f.record(t, entity.MovementAdjustment, "0")
	require.NoError(t, err)

	assert.True(t, f.stock(t).IsZero(), "adjustment admite cantidad cero")
	assert.Len(t, f.movRepo.movements, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Rechazos: nada se persiste a medias
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordMovement_SalidaInsuficiente_RechazaSinEscribir(t *testing.T) {
	f := newFixture(t, "5")
	_, err := f.record(t, entity.MovementExit, "10")
	require.Error(t, err)

	ve, ok := domain.AsValidationError(err)
	require.True(t, ok, "salida insuficiente debe reportarse como error de validación")
	assert.Contains(t, ve.Fields, "quantity")

	assert.True(t, f.stock(t).Equal(decimal.NewFromInt(5)), "el stock no debe cambiar")
	assert.Empty(t, f.movRepo.movements, "no debe persistirse ningún movimiento")
}

func TestRecordMovement_CantidadNoPositiva_Rechaza(t *testing.T) {
	f := newFixture(t, "10")
	for _, qty := range []string{"0", "-3"} {
		_, err := f.record(t, entity.MovementEntry, qty)
		require.Error(t, err, "entry con cantidad %s debe rechazarse", qty)
		_, ok := domain.AsValidationError(err)
		assert.True(t, ok)
	}
	assert.Empty(t, f.movRepo.movements)
}

func TestRecordMovement_FechaFutura_Rechaza(t *testing.T) {
	f := newFixture(t, "10")
	_, err := f.uc.RecordMovement(context.Background(), ledger.MovementInput{
		ProductID:    f.productID,
		UserID:       f.userID,
		Type:         entity.MovementEntry,
		Quantity:     decimal.NewFromInt(1),
		MovementDate: time.Now().Add(48 * time.Hour),
	})
	require.Error(t, err)
	ve, ok := domain.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "movement_date")
	assert.Empty(t, f.movRepo.movements)
}

func TestRecordMovement_ProductoInexistente_RetornaNotFound(t *testing.T) {
	f := newFixture(t, "10")
	_, err := f.uc.RecordMovement(context.Background(), ledger.MovementInput{
		ProductID:    uuid.New().String(),
		UserID:       f.userID,
		Type:         entity.MovementEntry,
		Quantity:     decimal.NewFromInt(1),
		MovementDate: time.Now(),
	})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestRecordMovement_ProductoEliminado_RetornaNotFound(t *testing.T) {
	f := newFixture(t, "10")
	require.NoError(t, f.prodRepo.SoftDelete(f.productID, time.Now()))

	_, err := f.record(t, entity.MovementEntry, "1")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestRecordMovement_UsuarioInexistente_RetornaUserNotFound(t *testing.T) {
	f := newFixture(t, "10")
	_, err := f.uc.RecordMovement(context.Background(), ledger.MovementInput{
		ProductID:    f.productID,
		UserID:       uuid.New().String(),
		Type:         entity.MovementEntry,
		Quantity:     decimal.NewFromInt(1),
		MovementDate: time.Now(),
	})
	assert.True(t, errors.Is(err, domain.ErrUserNotFound))
	assert.Empty(t, f.movRepo.movements)
}

// ──────────────────────────────────────────────────────────────────────────────
// Propiedades del ledger
// ──────────────────────────────────────────────────────────────────────────────

// El stock final siempre es explicable por la secuencia de movimientos:
// 10 → entry 20 → 30 → exit 25 → 5 → exit 10 rechazado → 5.
func TestRecordMovement_SecuenciaExplicaElStock(t *testing.T) {
	f := newFixture(t, "10")

	_, err := f.record(t, entity.MovementEntry, "20")
	require.NoError(t, err)
	assert.True(t, f.stock(t).Equal(decimal.NewFromInt(30)))

	_, err = f.record(t, entity.MovementExit, "25")
	require.NoError(t, err)
	assert.True(t, f.stock(t).Equal(decimal.NewFromInt(5)))

	_, err = f.record(t, entity.MovementExit, "10")
	require.Error(t, err, "salida mayor al stock restante debe rechazarse")

	assert.True(t, f.stock(t).Equal(decimal.NewFromInt(5)))
	assert.Len(t, f.movRepo.movements, 2, "el movimiento rechazado no entra al ledger")
}

// Movimientos concurrentes sobre el mismo producto no pierden actualizaciones:
// 50 entradas de 1 sobre stock 0 deben terminar exactamente en 50.
func TestRecordMovement_ConcurrenciaSinPerdidas(t *testing.T) {
	f := newFixture(t, "0")

	const n = 50
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.uc.RecordMovement(context.Background(), ledger.MovementInput{
				ProductID:    f.productID,
				UserID:       f.userID,
				Type:         entity.MovementEntry,
				Quantity:     decimal.NewFromInt(1),
				MovementDate: time.Now(),
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	assert.True(t, f.stock(t).Equal(decimal.NewFromInt(n)),
		"cada entrada debe aplicarse exactamente una vez")
	assert.Len(t, f.movRepo.movements, n)
}

// El valor total del movimiento se deriva del costo unitario.
func TestRecordMovement_TotalValueDerivado(t *testing.T) {
	f := newFixture(t, "0")
	unitCost := decimal.RequireFromString("3.333")
	mov, err := f.uc.RecordMovement(context.Background(), ledger.MovementInput{
		ProductID:    f.productID,
		UserID:       f.userID,
		Type:         entity.MovementEntry,
		Quantity:     decimal.NewFromInt(3),
		UnitCost:     &unitCost,
		MovementDate: time.Now(),
	})
	require.NoError(t, err)
	assert.True(t, mov.TotalValue.Equal(decimal.RequireFromString("10.00")),
		"total_value = unit_cost × quantity redondeado a 2 decimales")
}
