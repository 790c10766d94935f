package models

import (
	"time"

	"gorm.io/gorm"
)

type PatchStatus string

const (
	PatchPending   PatchStatus = "pending"
	PatchApproved  PatchStatus = "approved"
	PatchInstalled PatchStatus = "installed"
	PatchRejected  PatchStatus = "rejected"
)

type PatchUrgency string

const (
	UrgencyImmediate PatchUrgency = "immediate"
	UrgencyScheduled PatchUrgency = "scheduled"
	UrgencyRoutine   PatchUrgency = "routine"
)

// Patch — обновление безопасности для актива.
type Patch struct {
	gorm.Model
	TenantID *uint
	Tenant   *Tenant

	Name     string      `gorm:"size:255;not null"`
	Severity string      `gorm:"size:20;not null"` // critical / high / medium / low
	Status   PatchStatus `gorm:"type:varchar(20);not null;default:'pending'"`

	ReleasedAt *time.Time

	AssetID *uint
	Asset   *Asset
}

// Urgency — срочность установки по серьёзности уязвимости.
func (p *Patch) Urgency() PatchUrgency {
	switch p.Severity {
	case "critical":
		return UrgencyImmediate
	case "high":
		return UrgencyScheduled
	default:
		return UrgencyRoutine
	}
}

// slaDays — допустимый срок установки с момента выпуска.
func (p *Patch) slaDays() int {
	switch p.Urgency() {
	case UrgencyImmediate:
		return 7
	case UrgencyScheduled:
		return 30
	default:
		return 90
	}
}

// IsOverdue — патч не установлен в допустимый срок. Учитываются только
// патчи в работе (pending/approved).
func (p *Patch) IsOverdue(now time.Time) bool {
	if p.Status != PatchPending && p.Status != PatchApproved {
		return false
	}
	if p.ReleasedAt == nil {
		return false
	}
	deadline := p.ReleasedAt.AddDate(0, 0, p.slaDays())
	return deadline.Before(now)
}
