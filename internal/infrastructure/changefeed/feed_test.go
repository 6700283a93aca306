package changefeed_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/backoffice-api/internal/infrastructure/changefeed"
)

func recv(t *testing.T, sub *changefeed.Subscription) (changefeed.Event, bool) {
	t.Helper()
	select {
	case e, ok := <-sub.C():
		return e, ok
	case <-time.After(time.Second):
		t.Fatal("timeout esperando evento")
		return changefeed.Event{}, false
	}
}

func TestFeed_FiltroPorTablaYEmpresa(t *testing.T) {
	feed := changefeed.New()

	all := feed.Subscribe(changefeed.Filter{})
	companies := feed.Subscribe(changefeed.Filter{Table: "companies"})
	one := feed.Subscribe(changefeed.Filter{Table: "companies", CompanyID: "c1"})
	defer all.Close()
	defer companies.Close()
	defer one.Close()

	feed.Publish(changefeed.Event{Table: "companies", Action: "UPDATE", CompanyID: "c1"})
	feed.Publish(changefeed.Event{Table: "plans", Action: "INSERT"})
	feed.Publish(changefeed.Event{Table: "companies", Action: "UPDATE", CompanyID: "c2"})

	// all recibe los tres
	for i := 0; i < 3; i++ {
		_, ok := recv(t, all)
		require.True(t, ok)
	}

	// companies recibe los dos de la tabla companies
	e, _ := recv(t, companies)
	assert.Equal(t, "c1", e.CompanyID)
	e, _ = recv(t, companies)
	assert.Equal(t, "c2", e.CompanyID)

	// one recibe solo el de c1
	e, _ = recv(t, one)
	assert.Equal(t, "c1", e.CompanyID)
	select {
	case extra := <-one.C():
		t.Fatalf("evento inesperado: %+v", extra)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestFeed_CloseCierraElCanal(t *testing.T) {
	feed := changefeed.New()
	sub := feed.Subscribe(changefeed.Filter{Table: "companies"})

	sub.Close()
	sub.Close() // idempotente

	_, ok := <-sub.C()
	assert.False(t, ok, "el canal debe quedar cerrado tras Close")

	// Publicar después del Close no debe entrar en pánico.
	feed.Publish(changefeed.Event{Table: "companies"})
}

// Un suscriptor que no consume no bloquea Publish: el evento excedente se descarta.
func TestFeed_SuscriptorLentoNoBloquea(t *testing.T) {
	feed := changefeed.New()
	sub := feed.Subscribe(changefeed.Filter{})
	defer sub.Close()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			feed.Publish(changefeed.Event{Table: "companies", Action: "UPDATE"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish se bloqueó con un suscriptor lento")
	}
}
