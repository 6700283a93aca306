// Package payment implementa el cliente HTTP hacia el proveedor de pagos:
// lectura del catálogo de ofertas (client-credentials) y las acciones
// administrativas sobre suscripciones que el panel dispara y que vuelven
// reflejadas por webhook.
package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/invorya/backoffice-api/internal/application/catalog"
	"github.com/invorya/backoffice-api/internal/application/usecase"
	"github.com/invorya/backoffice-api/pkg/config"
)

// Asegura los contratos de aplicación.
var (
	_ catalog.OfferSource   = (*Client)(nil)
	_ usecase.BillingAction = (*Client)(nil)
)

// Client cliente autenticado contra la API del proveedor de pagos.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient construye el cliente con OAuth2 client-credentials. El token se
// renueva solo vía el TokenSource del paquete oauth2.
func NewClient(ctx context.Context, cfg config.PaymentConfig) *Client {
	cc := clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenURL,
	}
	httpClient := cc.Client(ctx)
	httpClient.Timeout = 30 * time.Second
	return &Client{baseURL: cfg.BaseURL, http: httpClient}
}

type offerPayload struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// FetchOffers descarga el catálogo de ofertas/productos del proveedor.
func (c *Client) FetchOffers(ctx context.Context) ([]catalog.Offer, error) {
	var body struct {
		Data []offerPayload `json:"data"`
	}
	if err := c.getJSON(ctx, "/offers", &body); err != nil {
		return nil, fmt.Errorf("fetch offers: %w", err)
	}
	offers := make([]catalog.Offer, 0, len(body.Data))
	for _, o := range body.Data {
		offers = append(offers, catalog.Offer{ID: o.ID, Name: o.Name, Price: o.Price})
	}
	return offers, nil
}

// ForceCharge solicita un cobro inmediato de la suscripción.
func (c *Client) ForceCharge(ctx context.Context, providerSubscriptionID string) error {
	return c.post(ctx, "/subscriptions/"+providerSubscriptionID+"/charge")
}

// Block bloquea la suscripción en el proveedor.
func (c *Client) Block(ctx context.Context, providerSubscriptionID string) error {
	return c.post(ctx, "/subscriptions/"+providerSubscriptionID+"/block")
}

// Reactivate reactiva la suscripción en el proveedor.
func (c *Client) Reactivate(ctx context.Context, providerSubscriptionID string) error {
	return c.post(ctx, "/subscriptions/"+providerSubscriptionID+"/reactivate")
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("proveedor respondió %d: %s", resp.StatusCode, string(b))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) post(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("proveedor respondió %d: %s", resp.StatusCode, string(b))
	}
	return nil
}
