// Package entitlement concentra la derivación del estado efectivo de acceso
// de una empresa (tenant). Es el único lugar donde se normaliza el vocabulario
// de estados y donde vive la regla de bypass del plan Partners; todas las
// rutas de escritura y lectura deben pasar por aquí en vez de reinterpretar
// la columna status por su cuenta.
package entitlement

import "strings"

// Status estado canónico de una empresa. La columna subyacente es texto libre
// por compatibilidad con el esquema en vivo; este tipo cierra el vocabulario.
type Status string

const (
	StatusActive    Status = "Ativo"
	StatusSuspended Status = "Suspenso"
	StatusPending   Status = "Pendente"
)

// PartnerPlan plan exclusivo/partner: exento de la suspensión normal.
const PartnerPlan = "Partners"

// ParseStatus normaliza el valor crudo de la columna status.
//
// Reglas:
//   - vacío/null → Ativo (la ausencia de dato nunca se interpreta como suspendido)
//   - "active" (grafía legada) y "Ativo" → Ativo
//   - "Suspenso" (grafía canónica, exacta) → Suspenso; ninguna otra variante suspende
//   - "Pendente" → Pendente
//   - cualquier otra cosa → Ativo (fail-open, solo para display; ver Gate)
func ParseStatus(raw string) Status {
	s := strings.TrimSpace(raw)
	switch {
	case s == "":
		return StatusActive
	case s == string(StatusSuspended):
		return StatusSuspended
	case s == string(StatusPending):
		return StatusPending
	case strings.EqualFold(s, "active"), s == string(StatusActive):
		return StatusActive
	default:
		return StatusActive
	}
}

// Access resultado de la reconciliación: habilitado o no, con etiqueta y motivo.
type Access struct {
	Enabled bool
	Label   string
	Reason  string // solo cuando Enabled == false
}

// Reconcile deriva el acceso efectivo a partir de la fila de la empresa.
// Función pura, nunca falla; entrada no reconocida degrada a habilitado.
//
// Regla de override: plan "Partners" siempre habilitado, sin importar status.
// Debe aplicarse idéntica en todas las rutas de escritura que deriven una
// suspensión (webhook, polling) y en toda lectura que decida acceso.
func Reconcile(rawStatus, plan, reason string) Access {
	st := ParseStatus(rawStatus)

	if plan == PartnerPlan {
		return Access{Enabled: true, Label: string(StatusActive)}
	}

	if st == StatusSuspended {
		return Access{Enabled: false, Label: string(StatusSuspended), Reason: reason}
	}
	return Access{Enabled: true, Label: string(st)}
}

// Gate variante fail-closed de Reconcile, pensada para el día en que esta
// lógica se reutilice como control de acceso real y no solo como display:
// solo el estado canónico Ativo (o el bypass Partners) habilita.
// El dashboard NO la usa; usa Reconcile (fail-open), comportamiento original.
func Gate(rawStatus, plan string) bool {
	if plan == PartnerPlan {
		return true
	}
	return ParseStatus(rawStatus) == StatusActive
}

// SuspensionReasons conjunto cerrado de motivos de suspensión que acepta la
// ruta administrativa. El orden es el del selector del dashboard.
var SuspensionReasons = []string{
	"Falta de pagamento",
	"Violação de termos",
	"Manutenção programada",
	"Solicitação do cliente",
	"Suspeita de fraude",
}

// ValidSuspensionReason informa si el motivo pertenece al conjunto cerrado.
func ValidSuspensionReason(reason string) bool {
	for _, r := range SuspensionReasons {
		if r == reason {
			return true
		}
	}
	return false
}

// Catálogo cerrado y versionado de módulos premium. Los módulos estándar
// (dashboard, produtos, estoque, vendas) están siempre habilitados de forma
// implícita y nunca se persisten.
const (
	ModuleAdvancedReports = "relatorios-avancados"
	ModuleAPIAccess       = "api"
	ModuleMultiStore      = "multi-lojas"
	ModuleNFe             = "nfe"
	ModuleLabels          = "etiquetas"
	ModuleBackup          = "backup"
)

// PremiumModules ids conocidos de módulos premium.
var PremiumModules = []string{
	ModuleAdvancedReports,
	ModuleAPIAccess,
	ModuleMultiStore,
	ModuleNFe,
	ModuleLabels,
	ModuleBackup,
}

// KnownPremiumModule informa si el id pertenece al catálogo. Ids desconocidos
// son inertes pero tolerados: se conservan, nunca se rechazan.
func KnownPremiumModule(id string) bool {
	for _, m := range PremiumModules {
		if m == id {
			return true
		}
	}
	return false
}

// UnlimitedSentinel valor -1 en límites de plan = "sin límite".
// Debe preservarse tal cual, nunca convertirse a un finito grande.
const UnlimitedSentinel = -1
