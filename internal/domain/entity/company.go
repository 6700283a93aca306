package entity

import "time"

// Company representa una empresa cliente (tenant) del producto SaaS.
// Status/StatusReason los escriben tres rutas independientes (acción admin,
// webhook de pagos, y el propio producto); el vocabulario canónico vive en
// internal/domain/entitlement.
type Company struct {
	ID                 string
	Name               string
	CNPJ               string // identificador fiscal; también es la clave de upsert de subscriptions
	Email              string
	Phone              string
	Status             string  // texto libre en el esquema; normalizar con entitlement.ParseStatus
	StatusReason       *string // obligatorio mientras Status == Suspenso vía ruta admin; null en otro caso
	Plan               string  // nombre del plan, denormalizado
	PlanID             *string // referencia a plans; se escribe siempre junto con Plan
	ProviderCustomerID string  // id del cliente en el proveedor de pagos externo
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
