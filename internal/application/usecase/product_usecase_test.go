package usecase_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/FotoStock-api/internal/application/dto"
	"github.com/jhoicas/FotoStock-api/internal/application/usecase"
	"github.com/jhoicas/FotoStock-api/internal/domain"
	"github.com/jhoicas/FotoStock-api/internal/domain/entity"
	"github.com/jhoicas/FotoStock-api/internal/domain/plan"
)

const (
	storeA = "00000000-0000-0000-0000-00000000000a"
	storeB = "00000000-0000-0000-0000-00000000000b"
)

func ownerOf(storeID string) *entity.Profile {
	return &entity.Profile{ID: "owner-" + storeID, Role: entity.RoleOwner, StoreID: storeID}
}

func seedStore(db *memDB, id, tier string) *entity.Store {
	s := &entity.Store{
		ID:        id,
		Name:      "Tienda " + id,
		Slug:      "tienda-" + id,
		Plan:      tier,
		PlanLimit: plan.CeilingFor(tier),
	}
	db.stores[id] = s
	return s
}

func seedProducts(db *memDB, storeID string, n int) {
	for i := 0; i < n; i++ {
		id := storeID + "-p" + string(rune('a'+i%26)) + string(rune('a'+(i/26)%26)) + string(rune('a'+i/676))
		db.products[id] = &entity.Product{ID: id, StoreID: storeID, Name: "P", Price: decimal.NewFromInt(10)}
	}
}

func productUC(db *memDB) *usecase.ProductUseCase {
	return usecase.NewProductUseCase(&fakeTxRunner{db: db}, &fakeProductRepo{db: db})
}

func createReq(name string) dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:          name,
		Price:         decimal.NewFromInt(100),
		StockQuantity: 3,
	}
}

func TestProductCreate_BajoElLimite(t *testing.T) {
	db := newMemDB()
	seedStore(db, storeA, plan.TierFree)
	seedProducts(db, storeA, 49)

	out, err := productUC(db).Create(context.Background(), ownerOf(storeA), storeA, createReq("Collar artesanal"))
	require.NoError(t, err, "con 49 de 50 el alta debe pasar")
	require.NotNil(t, out)
	assert.Equal(t, "Collar artesanal", out.Name)

	count, _ := (&fakeProductRepo{db: db}).CountByStore(storeA)
	assert.Equal(t, 50, count)
}

func TestProductCreate_EnElLimite_QuotaExceeded(t *testing.T) {
	db := newMemDB()
	seedStore(db, storeA, plan.TierFree)
	seedProducts(db, storeA, 50)

	_, err := productUC(db).Create(context.Background(), ownerOf(storeA), storeA, createReq("Uno de más"))
	assert.ErrorIs(t, err, domain.ErrQuotaExceeded)

	count, _ := (&fakeProductRepo{db: db}).CountByStore(storeA)
	assert.Equal(t, 50, count, "el alta denegada no debe persistir nada")
}

// El conteo es por tienda: los productos de otra tienda no consumen la cuota.
func TestProductCreate_CuotaPorTienda(t *testing.T) {
	db := newMemDB()
	seedStore(db, storeA, plan.TierFree)
	seedStore(db, storeB, plan.TierFree)
	seedProducts(db, storeB, 50)

	_, err := productUC(db).Create(context.Background(), ownerOf(storeA), storeA, createReq("Mío"))
	assert.NoError(t, err, "los 50 productos de la tienda B no cuentan contra la tienda A")
}

func TestProductCreate_PlanIlimitado(t *testing.T) {
	db := newMemDB()
	seedStore(db, storeA, plan.TierPro)
	seedProducts(db, storeA, 600)

	_, err := productUC(db).Create(context.Background(), ownerOf(storeA), storeA, createReq("601"))
	assert.NoError(t, err, "pro no tiene techo")
}

// Dos altas concurrentes con un solo cupo libre: exactamente una entra.
func TestProductCreate_CarreraEnElLimite(t *testing.T) {
	db := newMemDB()
	seedStore(db, storeA, plan.TierFree)
	seedProducts(db, storeA, 49)
	uc := productUC(db)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Create(context.Background(), ownerOf(storeA), storeA, createReq("Carrera"))
		}(i)
	}
	wg.Wait()

	okCount, deniedCount := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			okCount++
		case assert.ErrorIs(t, err, domain.ErrQuotaExceeded):
			deniedCount++
		}
	}
	assert.Equal(t, 1, okCount, "exactamente un alta debe entrar")
	assert.Equal(t, 1, deniedCount)

	count, _ := (&fakeProductRepo{db: db}).CountByStore(storeA)
	assert.Equal(t, 50, count, "nunca puede superarse el techo")
}

func TestProductCreate_SinPerfil(t *testing.T) {
	db := newMemDB()
	seedStore(db, storeA, plan.TierFree)

	_, err := productUC(db).Create(context.Background(), nil, storeA, createReq("Anónimo"))
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestProductCreate_TiendaAjena(t *testing.T) {
	db := newMemDB()
	seedStore(db, storeA, plan.TierFree)
	seedStore(db, storeB, plan.TierFree)

	_, err := productUC(db).Create(context.Background(), ownerOf(storeB), storeA, createReq("Intruso"))
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// El admin opera sobre cualquier tienda, pero la cuota del plan aplica igual.
func TestProductCreate_AdminCruzaTenantPeroRespetaCuota(t *testing.T) {
	db := newMemDB()
	seedStore(db, storeA, plan.TierFree)
	seedProducts(db, storeA, 50)
	admin := &entity.Profile{ID: "admin-1", Role: entity.RoleAdmin}

	_, err := productUC(db).Create(context.Background(), admin, storeA, createReq("Desde el panel"))
	assert.ErrorIs(t, err, domain.ErrQuotaExceeded)
}

func TestProductCreate_ValidacionDeEntrada(t *testing.T) {
	db := newMemDB()
	seedStore(db, storeA, plan.TierFree)
	uc := productUC(db)

	_, err := uc.Create(context.Background(), ownerOf(storeA), storeA, dto.CreateProductRequest{Name: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	bad := createReq("Precio negativo")
	bad.Price = decimal.NewFromInt(-1)
	_, err = uc.Create(context.Background(), ownerOf(storeA), storeA, bad)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductDelete_LiberaCupo(t *testing.T) {
	db := newMemDB()
	seedStore(db, storeA, plan.TierFree)
	seedProducts(db, storeA, 50)
	uc := productUC(db)

	// lleno: denegado
	_, err := uc.Create(context.Background(), ownerOf(storeA), storeA, createReq("No entra"))
	require.ErrorIs(t, err, domain.ErrQuotaExceeded)

	// borrar uno libera exactamente un cupo
	var victim string
	for id := range db.products {
		victim = id
		break
	}
	require.NoError(t, uc.Delete(ownerOf(storeA), victim))

	_, err = uc.Create(context.Background(), ownerOf(storeA), storeA, createReq("Ahora sí"))
	assert.NoError(t, err)
}
