// Package statuswatch vigila el estado de una empresa distinguida: un fetch
// inicial síncrono, un poll de respaldo a intervalo fijo y una suscripción al
// changefeed. Dejar el company id vacío deshabilita el mecanismo por completo
// (modo normal de operación).
package statuswatch

import (
	"context"
	"sync"
	"time"

	"github.com/invorya/backoffice-api/internal/domain/entitlement"
	"github.com/invorya/backoffice-api/internal/domain/entity"
	"github.com/invorya/backoffice-api/internal/domain/repository"
	"github.com/invorya/backoffice-api/internal/infrastructure/changefeed"
	"github.com/invorya/backoffice-api/pkg/logger"
)

// Snapshot último acceso conocido de la empresa vigilada.
type Snapshot struct {
	CompanyID string
	Access    entitlement.Access
	UpdatedAt time.Time
}

// Watcher mantiene fresco el acceso de la empresa vigilada aunque se pierda
// algún push del changefeed (el poll fijo es el respaldo documentado).
type Watcher struct {
	companyID string
	interval  time.Duration
	companies repository.CompanyRepository
	feed      *changefeed.Feed
	log       *logger.Logger

	mu   sync.RWMutex
	snap Snapshot

	cancel context.CancelFunc
	done   chan struct{}
}

// New crea el watcher. companyID vacío devuelve un watcher deshabilitado
// cuyo Start es un no-op.
func New(companyID string, interval time.Duration, companies repository.CompanyRepository, feed *changefeed.Feed, log *logger.Logger) *Watcher {
	if interval <= 0 {
		interval = 3 * time.Second
	}
	return &Watcher{
		companyID: companyID,
		interval:  interval,
		companies: companies,
		feed:      feed,
		log:       log,
	}
}

// Enabled informa si hay empresa vigilada configurada.
func (w *Watcher) Enabled() bool { return w.companyID != "" }

// Start hace el fetch inicial de forma síncrona (el llamador queda gateado
// hasta tenerlo) y arranca el poll y la suscripción en segundo plano.
func (w *Watcher) Start(ctx context.Context) error {
	if !w.Enabled() {
		return nil
	}

	if err := w.refresh(ctx); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.done = make(chan struct{})
	sub := w.feed.Subscribe(changefeed.Filter{Table: "companies", CompanyID: w.companyID})

	go w.run(ctx, sub)
	return nil
}

// Stop cancela el poll y da de baja la suscripción; espera el teardown.
// Seguro de llamar sin Start previo.
func (w *Watcher) Stop() {
	if w.cancel == nil {
		return
	}
	w.cancel()
	<-w.done
}

// Current devuelve el último snapshot conocido.
func (w *Watcher) Current() Snapshot {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.snap
}

func (w *Watcher) run(ctx context.Context, sub *changefeed.Subscription) {
	defer close(w.done)
	defer sub.Close()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug().Str("company_id", w.companyID).Msg("statuswatch detenido")
			return
		case <-ticker.C:
			// Poll de respaldo: reconciliación completa desde la fila fresca.
			if err := w.refresh(ctx); err != nil {
				w.log.Warn().Err(err).Msg("statuswatch: poll falló; se conserva el snapshot anterior")
			}
		case e, ok := <-sub.C():
			if !ok {
				return
			}
			w.applyPush(e)
		}
	}
}

// refresh lee la fila y aplica la reconciliación completa (incluido el
// bypass Partners).
func (w *Watcher) refresh(ctx context.Context) error {
	company, err := w.companies.GetByID(ctx, w.companyID)
	if err != nil {
		return err
	}
	if company == nil {
		// Sin fila: el default fail-open para display.
		w.set(entitlement.Access{Enabled: true, Label: string(entitlement.StatusActive)})
		return nil
	}
	reason := ""
	if company.StatusReason != nil {
		reason = *company.StatusReason
	}
	w.set(entitlement.Reconcile(company.Status, company.Plan, reason))
	return nil
}

// applyPush aplica un evento del changefeed. El handler confía en el status
// empujado tal cual, sin re-aplicar el bypass Partners: comportamiento
// heredado del producto, cubierto por el siguiente poll.
func (w *Watcher) applyPush(e changefeed.Event) {
	// Los publicadores emiten la fila como puntero, pero se acepta también
	// por valor: descartar un push por la forma del Row dejaría el snapshot
	// colgado del poll sin ninguna señal.
	var company *entity.Company
	switch row := e.Row.(type) {
	case *entity.Company:
		company = row
	case entity.Company:
		company = &row
	}
	if company == nil {
		return
	}
	st := entitlement.ParseStatus(company.Status)
	access := entitlement.Access{Enabled: st != entitlement.StatusSuspended, Label: string(st)}
	if !access.Enabled && company.StatusReason != nil {
		access.Reason = *company.StatusReason
	}
	w.set(access)
}

func (w *Watcher) set(access entitlement.Access) {
	w.mu.Lock()
	w.snap = Snapshot{CompanyID: w.companyID, Access: access, UpdatedAt: time.Now().UTC()}
	w.mu.Unlock()
}
