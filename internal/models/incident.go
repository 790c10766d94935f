package models

import (
	"time"

	"gorm.io/gorm"
)

type IncidentSeverity string

const (
	SeverityCritical IncidentSeverity = "critical"
	SeverityHigh     IncidentSeverity = "high"
	SeverityMedium   IncidentSeverity = "medium"
	SeverityLow      IncidentSeverity = "low"
)

type IncidentStatus string

const (
	IncidentOpen          IncidentStatus = "open"
	IncidentInvestigating IncidentStatus = "investigating"
	IncidentResolved      IncidentStatus = "resolved"
	IncidentClosed        IncidentStatus = "closed"
)

type Incident struct {
	gorm.Model
	TenantID *uint
	Tenant   *Tenant

	Title       string           `gorm:"size:255;not null"`
	Severity    IncidentSeverity `gorm:"type:varchar(20);not null"`
	Status      IncidentStatus   `gorm:"type:varchar(20);not null"`
	Description string           `gorm:"type:text"`

	DetectedAt *time.Time

	AssetID *uint
	Asset   *Asset
	RiskID  *uint
	Risk    *Risk
}

// SeverityBadge — цвет бейджа для шаблонов.
func (i *Incident) SeverityBadge() string {
	switch i.Severity {
	case SeverityCritical:
		return "danger"
	case SeverityHigh:
		return "warning"
	case SeverityMedium:
		return "info"
	case SeverityLow:
		return "success"
	default:
		return "secondary"
	}
}

// DetectedWithin — обнаружен ли инцидент в последние n месяцев от now.
func (i *Incident) DetectedWithin(now time.Time, months int) bool {
	if i.DetectedAt == nil {
		return false
	}
	return withinMonths(*i.DetectedAt, now, months) && !i.DetectedAt.After(now)
}
