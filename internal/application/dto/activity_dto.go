package dto

import "time"

// ActivityLogResponse entrada del visor de bitácora.
type ActivityLogResponse struct {
	ID        string    `json:"id"`
	ActorName string    `json:"actor_name"`
	ActorRole string    `json:"actor_role"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	Module    string    `json:"module"`
	Severity  string    `json:"severity"`
	CreatedAt time.Time `json:"created_at"`
}

// ActivityListResponse listado de bitácora.
type ActivityListResponse struct {
	Items []ActivityLogResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
