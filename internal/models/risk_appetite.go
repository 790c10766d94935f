package models

import (
	"time"

	"gorm.io/gorm"
)

type AppetiteClassification string

const (
	AppetiteAcceptable     AppetiteClassification = "acceptable"
	AppetiteReviewRequired AppetiteClassification = "review_required"
	AppetiteExceeded       AppetiteClassification = "exceeds_appetite"
)

// RiskAppetite — допустимый уровень риска; без категории действует глобально.
type RiskAppetite struct {
	gorm.Model
	TenantID *uint
	Tenant   *Tenant

	MaxAcceptableRisk int     `gorm:"not null"`
	Category          *string `gorm:"size:100"`
}

// AppliesTo — применим ли аппетит к категории риска (nil-категория — ко всем).
func (a *RiskAppetite) AppliesTo(category string) bool {
	return a.Category == nil || *a.Category == category
}

// Classify сравнивает значение риска с порогом: до порога — acceptable,
// до полутора порогов — review_required, дальше — exceeds_appetite.
func (a *RiskAppetite) Classify(riskValue int) AppetiteClassification {
	if riskValue <= a.MaxAcceptableRisk {
		return AppetiteAcceptable
	}
	if float64(riskValue) <= 1.5*float64(a.MaxAcceptableRisk) {
		return AppetiteReviewRequired
	}
	return AppetiteExceeded
}

type TreatmentStatus string

const (
	TreatmentNotStarted TreatmentStatus = "not_started"
	TreatmentInProgress TreatmentStatus = "in_progress"
	TreatmentCompleted  TreatmentStatus = "completed"
)

// RiskTreatmentPlan — план обработки риска с перечнем мер.
type RiskTreatmentPlan struct {
	gorm.Model
	RiskID uint
	Risk   *Risk

	Title    string `gorm:"size:255;not null"`
	Strategy string `gorm:"size:50"` // mitigate / transfer / avoid / accept

	TotalMeasures     int `gorm:"default:0"`
	CompletedMeasures int `gorm:"default:0"`

	DueDate *time.Time
}

// CompletionPercent — доля выполненных мер; 0 для пустого плана.
func (p *RiskTreatmentPlan) CompletionPercent() int {
	if p.TotalMeasures == 0 {
		return 0
	}
	percent := p.CompletedMeasures * 100 / p.TotalMeasures
	return clampScore(percent, 0, 100)
}

// DerivedStatus выводится из счётчиков мер.
func (p *RiskTreatmentPlan) DerivedStatus() TreatmentStatus {
	switch {
	case p.TotalMeasures == 0 || p.CompletedMeasures == 0:
		return TreatmentNotStarted
	case p.CompletedMeasures >= p.TotalMeasures:
		return TreatmentCompleted
	default:
		return TreatmentInProgress
	}
}

// IsOverdue — срок прошёл, а план не выполнен.
func (p *RiskTreatmentPlan) IsOverdue(now time.Time) bool {
	if p.DueDate == nil {
		return false
	}
	return p.DueDate.Before(now) && p.DerivedStatus() != TreatmentCompleted
}
