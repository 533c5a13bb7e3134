package entity

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog represents a system audit trail entry
type AuditLog struct {
	ID        int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    *int64            `gorm:"index" json:"user_id,omitempty"`
	Action    string            `gorm:"type:varchar(100);not null;index" json:"action"`
	Entity    string            `gorm:"type:varchar(50);not null" json:"entity"`
	EntityID  int64             `gorm:"not null" json:"entity_id"`
	Metadata  datatypes.JSONMap `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time         `gorm:"autoCreateTime;index" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// Audit actions
const (
	AuditActionCreate = "create"
	AuditActionUpdate = "update"
	AuditActionDelete = "delete"
)

// Audited entity names
const (
	AuditEntityMunicipality = "municipality"
	AuditEntityNeighborhood = "neighborhood"
	AuditEntityCoordinate   = "coordinate"
	AuditEntityAddress      = "address"
	AuditEntityRole         = "role"
	AuditEntityUser         = "user"
	AuditEntityDonor        = "donor"
	AuditEntityAppointment  = "appointment"
)
