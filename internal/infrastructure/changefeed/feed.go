// Package changefeed implementa el feed de cambios de filas que el proveedor
// hosteado entregaba como primitiva realtime: los escritores publican la
// imagen nueva de la fila y los consumidores (hub websocket, statuswatch)
// se suscriben por tabla y, opcionalmente, por empresa.
package changefeed

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Event imagen nueva de una fila tras una escritura.
type Event struct {
	Table     string      // companies, subscriptions, plans...
	Action    string      // INSERT | UPDATE | DELETE
	CompanyID string      // vacío si la tabla no es por-empresa
	Row       interface{} // imagen nueva de la fila
}

// Filter criterio de suscripción. Campos vacíos = sin filtro.
type Filter struct {
	Table     string
	CompanyID string
}

func (f Filter) matches(e Event) bool {
	if f.Table != "" && f.Table != e.Table {
		return false
	}
	if f.CompanyID != "" && f.CompanyID != e.CompanyID {
		return false
	}
	return true
}

const subscriberBuffer = 16

// Subscription canal de eventos de un suscriptor.
type Subscription struct {
	feed   *Feed
	filter Filter
	ch     chan Event
	once   sync.Once
}

// C devuelve el canal de eventos. Se cierra al llamar Close.
func (s *Subscription) C() <-chan Event { return s.ch }

// Close da de baja la suscripción y cierra el canal.
// Seguro de llamar más de una vez.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.feed.unsubscribe(s)
	})
}

// Feed fan-out de eventos en proceso. Un suscriptor lento no bloquea al
// publicador: si su buffer está lleno, el evento se descarta para él
// (el polling de respaldo cubre la pérdida).
type Feed struct {
	mu   sync.RWMutex
	subs map[*Subscription]struct{}
}

// New crea el feed.
func New() *Feed {
	return &Feed{subs: make(map[*Subscription]struct{})}
}

// Subscribe registra un suscriptor con el filtro dado.
func (f *Feed) Subscribe(filter Filter) *Subscription {
	sub := &Subscription{
		feed:   f,
		filter: filter,
		ch:     make(chan Event, subscriberBuffer),
	}
	f.mu.Lock()
	f.subs[sub] = struct{}{}
	f.mu.Unlock()
	return sub
}

func (f *Feed) unsubscribe(sub *Subscription) {
	f.mu.Lock()
	delete(f.subs, sub)
	f.mu.Unlock()
	close(sub.ch)
}

// Publish entrega el evento a todos los suscriptores cuyo filtro coincida.
// Nunca bloquea.
func (f *Feed) Publish(e Event) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for sub := range f.subs {
		if !sub.filter.matches(e) {
			continue
		}
		select {
		case sub.ch <- e:
		default:
			log.Warn().
				Str("table", e.Table).
				Str("company_id", e.CompanyID).
				Msg("changefeed: suscriptor lento, evento descartado")
		}
	}
}
