package models

import (
	"time"

	"gorm.io/gorm"
)

type SupplierCriticality string

const (
	CriticalityLow      SupplierCriticality = "low"
	CriticalityMedium   SupplierCriticality = "medium"
	CriticalityHigh     SupplierCriticality = "high"
	CriticalityCritical SupplierCriticality = "critical"
)

// Supplier — поставщик/подрядчик с оценкой рисков цепочки поставок.
type Supplier struct {
	gorm.Model
	TenantID *uint
	Tenant   *Tenant

	Name        string              `gorm:"size:255;not null"`
	Criticality SupplierCriticality `gorm:"type:varchar(20);not null"`

	// nil — оценка безопасности не проводилась.
	SecurityScore *int

	HasISO27001 bool `gorm:"default:false"`
	HasISO22301 bool `gorm:"default:false"`
	HasDPA      bool `gorm:"default:false"`

	LastSecurityAssessment *time.Time
	NextAssessmentDate     *time.Time
}

// AssessmentOverdue — оценка не проводилась вовсе либо просрочена.
func (s *Supplier) AssessmentOverdue(now time.Time) bool {
	if s.LastSecurityAssessment == nil {
		return true
	}
	return s.NextAssessmentDate != nil && s.NextAssessmentDate.Before(now)
}

// RiskScore — взвешенная сумма факторов риска поставщика, [0,100].
// Критичность: low 5 / medium 15 / high 30 / critical 40.
// Отсутствие оценки безопасности — 30, иначе (100−score)×0.3.
// Нет ISO 27001 — +10; нет ISO 22301 — +5 (только для high/critical);
// нет DPA — +10; просроченная или отсутствующая оценка — +5.
func (s *Supplier) RiskScore(now time.Time) int {
	score := 0.0

	switch s.Criticality {
	case CriticalityLow:
		score += 5
	case CriticalityMedium:
		score += 15
	case CriticalityHigh:
		score += 30
	case CriticalityCritical:
		score += 40
	}

	if s.SecurityScore == nil {
		score += 30
	} else {
		score += float64(100-*s.SecurityScore) * 0.3
	}

	if !s.HasISO27001 {
		score += 10
	}
	if !s.HasISO22301 && (s.Criticality == CriticalityHigh || s.Criticality == CriticalityCritical) {
		score += 5
	}
	if !s.HasDPA {
		score += 10
	}
	if s.AssessmentOverdue(now) {
		score += 5
	}

	return clampScore(int(score), 0, 100)
}

// CriticalityBadge — цвет бейджа для шаблонов.
func (s *Supplier) CriticalityBadge() string {
	switch s.Criticality {
	case CriticalityCritical:
		return "danger"
	case CriticalityHigh:
		return "warning"
	case CriticalityMedium:
		return "info"
	case CriticalityLow:
		return "success"
	default:
		return "secondary"
	}
}
