package dto

import (
	"time"

	"gorm.io/datatypes"
)

// Response DTOs

type AuditLogResponse struct {
	ID        int64             `json:"id"`
	UserID    *int64            `json:"user_id,omitempty"`
	Action    string            `json:"action"`
	Entity    string            `json:"entity"`
	EntityID  int64             `json:"entity_id"`
	Metadata  datatypes.JSONMap `json:"metadata"`
	CreatedAt time.Time         `json:"created_at"`
}
