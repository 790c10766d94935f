package models

import "gorm.io/gorm"

type ChangeType string

const (
	ChangeStandard  ChangeType = "standard"
	ChangeNormal    ChangeType = "normal"
	ChangeEmergency ChangeType = "emergency"
)

type ChangeRiskClass string

const (
	ChangeRiskLow    ChangeRiskClass = "low"
	ChangeRiskMedium ChangeRiskClass = "medium"
	ChangeRiskHigh   ChangeRiskClass = "high"
)

// ChangeRequest — запрос на изменение с оценкой влияния и срочности (1–5).
type ChangeRequest struct {
	gorm.Model
	TenantID *uint
	Tenant   *Tenant

	Title      string     `gorm:"size:255;not null"`
	ChangeType ChangeType `gorm:"type:varchar(20);not null"`
	Status     string     `gorm:"size:20;not null;default:'draft'"`

	Impact  int `gorm:"not null;default:1"`
	Urgency int `gorm:"not null;default:1"`
}

// RiskClassification — влияние×срочность: <6 low, 6–11 medium, >=12 high.
func (c *ChangeRequest) RiskClassification() ChangeRiskClass {
	score := c.Impact * c.Urgency
	switch {
	case score < 6:
		return ChangeRiskLow
	case score < 12:
		return ChangeRiskMedium
	default:
		return ChangeRiskHigh
	}
}

// RequiresCAB — изменение выносится на комитет: высокий риск либо emergency.
func (c *ChangeRequest) RequiresCAB() bool {
	return c.RiskClassification() == ChangeRiskHigh || c.ChangeType == ChangeEmergency
}
