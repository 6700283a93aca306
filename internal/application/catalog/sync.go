package catalog

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/invorya/backoffice-api/internal/application/dto"
	"github.com/invorya/backoffice-api/internal/domain/entity"
	"github.com/invorya/backoffice-api/internal/domain/repository"
	"github.com/invorya/backoffice-api/pkg/logger"
)

// Offer oferta publicada en el catálogo del proveedor de pagos.
type Offer struct {
	ID    string
	Name  string
	Price decimal.Decimal
}

// OfferSource origen remoto de ofertas (API del proveedor de pagos).
type OfferSource interface {
	FetchOffers(ctx context.Context) ([]Offer, error)
}

// TxRunner ejecuta el reemplazo de catálogo dentro de una transacción:
// el borrado y las inserciones son atómicos, nunca queda catálogo a medias.
type TxRunner interface {
	RunCatalogReplace(ctx context.Context, fn func(planRepo repository.PlanRepository) error) error
}

// fixTypos correcciones de nombres conocidos mal cargados en el proveedor.
var fixTypos = map[string]string{
	"Premuim": "Premium",
}

// SyncUseCase sincroniza el catálogo de planes desde el proveedor de pagos.
// Una sola sincronización en vuelo por proceso; las concurrentes esperan.
type SyncUseCase struct {
	source OfferSource
	tx     TxRunner
	log    *logger.Logger
	mu     sync.Mutex
}

// NewSyncUseCase crea el caso de uso de sincronización de catálogo.
func NewSyncUseCase(source OfferSource, tx TxRunner, log *logger.Logger) *SyncUseCase {
	return &SyncUseCase{source: source, tx: tx, log: log}
}

// Sync descarga las ofertas, las normaliza y reemplaza el catálogo local
// completo en una transacción. Si el fetch falla, el catálogo no se toca.
func (uc *SyncUseCase) Sync(ctx context.Context) (*dto.CatalogSyncResult, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	offers, err := uc.source.FetchOffers(ctx)
	if err != nil {
		return nil, err
	}

	clean, dropped := NormalizeOffers(offers)

	now := time.Now().UTC()
	err = uc.tx.RunCatalogReplace(ctx, func(planRepo repository.PlanRepository) error {
		if err := planRepo.DeleteAll(ctx); err != nil {
			return err
		}
		for _, o := range clean {
			plan := &entity.Plan{
				ID:              uuid.New().String(),
				Name:            o.Name,
				Price:           o.Price,
				ProviderOfferID: o.ID,
				CreatedAt:       now,
				UpdatedAt:       now,
			}
			if err := planRepo.Create(ctx, plan); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Int("fetched", len(offers)).
		Int("inserted", len(clean)).
		Strs("dropped", dropped).
		Msg("catálogo de planes sincronizado")

	return &dto.CatalogSyncResult{
		Fetched:  len(offers),
		Inserted: len(clean),
		Dropped:  dropped,
	}, nil
}

// NormalizeOffers limpia nombres (espacios, erratas conocidas) y deduplica
// por nombre normalizado. Ante duplicados se conserva la oferta con precio
// distinto de cero; si ambas lo tienen, gana la primera en orden de llegada.
// Devuelve las ofertas limpias y los ids de las descartadas.
func NormalizeOffers(offers []Offer) ([]Offer, []string) {
	var clean []Offer
	var dropped []string
	index := map[string]int{} // nombre normalizado → posición en clean

	for _, o := range offers {
		name := strings.TrimSpace(o.Name)
		if fixed, ok := fixTypos[name]; ok {
			name = fixed
		}
		if name == "" {
			dropped = append(dropped, o.ID)
			continue
		}
		o.Name = name

		pos, seen := index[name]
		if !seen {
			index[name] = len(clean)
			clean = append(clean, o)
			continue
		}
		// Duplicado: el proveedor tiene una entrada gemela de precio cero
		// para alguna oferta; nos quedamos con la que cobra.
		kept := clean[pos]
		if kept.Price.IsZero() && !o.Price.IsZero() {
			clean[pos] = o
			dropped = append(dropped, kept.ID)
		} else {
			dropped = append(dropped, o.ID)
		}
	}
	return clean, dropped
}
