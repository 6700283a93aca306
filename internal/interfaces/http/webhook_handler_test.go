package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/backoffice-api/internal/application/webhook"
	"github.com/invorya/backoffice-api/internal/domain/entity"
	"github.com/invorya/backoffice-api/internal/domain/repository"
	apphttp "github.com/invorya/backoffice-api/internal/interfaces/http"
	"github.com/invorya/backoffice-api/pkg/logger"
)

const testWebhookToken = "token-webhook-pruebas"

type stubCompanies struct {
	repository.CompanyRepository
	statusWrites int
}

func (s *stubCompanies) GetByProviderCustomerID(ctx context.Context, customerID string) (*entity.Company, error) {
	return nil, nil
}

func (s *stubCompanies) GetByCNPJ(ctx context.Context, cnpj string) (*entity.Company, error) {
	return nil, nil
}

func (s *stubCompanies) UpdateStatus(ctx context.Context, id, status string, reason *string) error {
	s.statusWrites++
	return nil
}

type stubProfiles struct {
	repository.ProfileRepository
}

func (s *stubProfiles) GetByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	return nil, nil
}

type stubSubs struct {
	repository.SubscriptionRepository
	upserts int
}

func (s *stubSubs) Upsert(ctx context.Context, sub *entity.Subscription) error {
	s.upserts++
	return nil
}

func buildWebhookApp(companies *stubCompanies, subs *stubSubs) *fiber.App {
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	proc := webhook.NewProcessor(companies, &stubProfiles{}, subs, log)
	handler := apphttp.NewWebhookHandler(proc, testWebhookToken, "whsec_pruebas", log)

	app := fiber.New()
	app.Post("/webhooks/payment", handler.Payment)
	app.Post("/webhooks/stripe", handler.Stripe)
	return app
}

func postWebhook(t *testing.T, app *fiber.App, token, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/payment", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("access-token", token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestWebhookPayment_SinTokenDevuelve401(t *testing.T) {
	app := buildWebhookApp(&stubCompanies{}, &stubSubs{})

	resp := postWebhook(t, app, "", `{"event":"payment_confirmed"}`)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestWebhookPayment_TokenIncorrectoDevuelve401(t *testing.T) {
	app := buildWebhookApp(&stubCompanies{}, &stubSubs{})

	resp := postWebhook(t, app, "otro-token", `{"event":"payment_confirmed"}`)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestWebhookPayment_CuerpoInvalidoDevuelve400(t *testing.T) {
	app := buildWebhookApp(&stubCompanies{}, &stubSubs{})

	resp := postWebhook(t, app, testWebhookToken, `{no-es-json`)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

// La empresa no mapeada responde 200 con company_not_found: un 4xx/5xx haría
// que el proveedor reintente el evento para siempre.
func TestWebhookPayment_EmpresaNoResolubleResponde200SinEscrituras(t *testing.T) {
	companies := &stubCompanies{}
	subs := &stubSubs{}
	app := buildWebhookApp(companies, subs)

	resp := postWebhook(t, app, testWebhookToken,
		`{"event":"payment_overdue","customer_id":"cus_desconocido","email":"nadie@exemplo.com","cnpj":"00000000000000"}`)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "company_not_found", out["result"])

	assert.Zero(t, subs.upserts, "no debe escribirse el espejo de suscripciones")
	assert.Zero(t, companies.statusWrites, "no debe tocarse el status de ninguna empresa")
}

func TestWebhookStripe_FirmaInvalidaDevuelve400(t *testing.T) {
	app := buildWebhookApp(&stubCompanies{}, &stubSubs{})

	req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", strings.NewReader(`{"type":"invoice.payment_failed"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Stripe-Signature", "t=1,v1=firma-invalida")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
