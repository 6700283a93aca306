package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/backoffice-api/internal/domain/entity"
	"github.com/invorya/backoffice-api/internal/domain/repository"
	"github.com/invorya/backoffice-api/pkg/logger"
)

type fakeSource struct {
	offers []Offer
	err    error
}

func (f *fakeSource) FetchOffers(ctx context.Context) ([]Offer, error) {
	return f.offers, f.err
}

// fakePlanRepo guarda en memoria lo suficiente para verificar el reemplazo.
type fakePlanRepo struct {
	repository.PlanRepository
	deleted bool
	created []*entity.Plan
	failAt  int // índice de Create que falla; -1 = nunca
}

func (f *fakePlanRepo) DeleteAll(ctx context.Context) error {
	f.deleted = true
	f.created = nil
	return nil
}

func (f *fakePlanRepo) Create(ctx context.Context, plan *entity.Plan) error {
	if f.failAt >= 0 && len(f.created) == f.failAt {
		return errors.New("insert falló")
	}
	f.created = append(f.created, plan)
	return nil
}

// fakeTx simula la transacción: si fn devuelve error, descarta lo escrito.
type fakeTx struct {
	repo       *fakePlanRepo
	rolledBack bool
}

func (f *fakeTx) RunCatalogReplace(ctx context.Context, fn func(repository.PlanRepository) error) error {
	if err := fn(f.repo); err != nil {
		f.rolledBack = true
		f.repo.deleted = false
		f.repo.created = nil
		return err
	}
	return nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func price(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestNormalizeOffers_CorrigeErrataYDeduplica(t *testing.T) {
	offers := []Offer{
		{ID: "of-1", Name: "Essencial", Price: price("0")},
		{ID: "of-2", Name: "Essencial", Price: price("49.90")},
		{ID: "of-3", Name: "Premuim", Price: price("99.90")},
		{ID: "of-4", Name: "  Partners  ", Price: price("0")},
	}

	clean, dropped := NormalizeOffers(offers)

	require.Len(t, clean, 3)
	assert.Equal(t, "Essencial", clean[0].Name)
	assert.Equal(t, "of-2", clean[0].ID, "debe ganar la entrada con precio")
	assert.Equal(t, "Premium", clean[1].Name)
	assert.Equal(t, "Partners", clean[2].Name)
	assert.Equal(t, []string{"of-1"}, dropped)
}

func TestNormalizeOffers_DuplicadosAmbosConPrecioGanaElPrimero(t *testing.T) {
	offers := []Offer{
		{ID: "a", Name: "Pro", Price: price("10")},
		{ID: "b", Name: "Pro", Price: price("20")},
	}

	clean, dropped := NormalizeOffers(offers)

	require.Len(t, clean, 1)
	assert.Equal(t, "a", clean[0].ID)
	assert.Equal(t, []string{"b"}, dropped)
}

func TestSync_ReemplazaCatalogoCompleto(t *testing.T) {
	src := &fakeSource{offers: []Offer{
		{ID: "of-1", Name: "Essencial", Price: price("49.90")},
		{ID: "of-2", Name: "Premuim", Price: price("99.90")},
	}}
	repo := &fakePlanRepo{failAt: -1}
	tx := &fakeTx{repo: repo}
	uc := NewSyncUseCase(src, tx, testLogger())

	res, err := uc.Sync(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, res.Fetched)
	assert.Equal(t, 2, res.Inserted)
	assert.True(t, repo.deleted)
	require.Len(t, repo.created, 2)
	assert.Equal(t, "Premium", repo.created[1].Name)
	assert.Equal(t, "of-2", repo.created[1].ProviderOfferID)
	assert.NotEmpty(t, repo.created[0].ID)
}

func TestSync_FetchFallidoNoTocaElCatalogo(t *testing.T) {
	src := &fakeSource{err: errors.New("proveedor caído")}
	repo := &fakePlanRepo{failAt: -1}
	tx := &fakeTx{repo: repo}
	uc := NewSyncUseCase(src, tx, testLogger())

	_, err := uc.Sync(context.Background())

	require.Error(t, err)
	assert.False(t, repo.deleted, "no debe borrar nada si el fetch falla")
}

func TestSync_InsertFallidoRevierteLaTransaccion(t *testing.T) {
	src := &fakeSource{offers: []Offer{
		{ID: "of-1", Name: "Essencial", Price: price("49.90")},
		{ID: "of-2", Name: "Pro", Price: price("79.90")},
	}}
	repo := &fakePlanRepo{failAt: 1}
	tx := &fakeTx{repo: repo}
	uc := NewSyncUseCase(src, tx, testLogger())

	_, err := uc.Sync(context.Background())

	require.Error(t, err)
	assert.True(t, tx.rolledBack)
	assert.Empty(t, repo.created)
}
