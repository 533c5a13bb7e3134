package entity

import (
	"slices"
	"time"

	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/apperror"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusAccepted  AppointmentStatus = "accepted"
	AppointmentStatusRejected  AppointmentStatus = "rejected"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

var appointmentStatuses = []AppointmentStatus{
	AppointmentStatusPending,
	AppointmentStatusAccepted,
	AppointmentStatusRejected,
	AppointmentStatusCompleted,
	AppointmentStatusCancelled,
}

// ParseAppointmentStatus accepts only the closed set of statuses.
func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	status := AppointmentStatus(s)
	if !slices.Contains(appointmentStatuses, status) {
		return "", apperror.Validation("status", "must be one of pending, accepted, rejected, completed, cancelled")
	}
	return status, nil
}

// Appointment is a donation appointment between a donor and a recipient,
// both of them donors.
type Appointment struct {
	ID          int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	ScheduledAt time.Time         `gorm:"not null;index" json:"scheduled_at"`
	DonorID     int64             `gorm:"not null;index" json:"donor_id"`
	RecipientID int64             `gorm:"not null;index" json:"recipient_id"`
	Status      AppointmentStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	CreatedAt   time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// NewAppointment creates a pending appointment.
func NewAppointment(scheduledAt time.Time, donorID, recipientID int64) (*Appointment, error) {
	if scheduledAt.IsZero() {
		return nil, apperror.Validation("scheduled_at", "is required")
	}
	return &Appointment{
		ScheduledAt: scheduledAt,
		DonorID:     donorID,
		RecipientID: recipientID,
		Status:      AppointmentStatusPending,
	}, nil
}

// UpdateStatus moves the appointment to status. Any status of the closed set
// is reachable from any other.
func (a *Appointment) UpdateStatus(status string) error {
	parsed, err := ParseAppointmentStatus(status)
	if err != nil {
		return err
	}
	a.Status = parsed
	return nil
}

func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentStatusPending
}

func (a *Appointment) Equal(other *Appointment) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.ID == other.ID &&
		a.ScheduledAt.Equal(other.ScheduledAt) &&
		a.DonorID == other.DonorID &&
		a.RecipientID == other.RecipientID &&
		a.Status == other.Status
}
