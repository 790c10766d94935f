package models

import "gorm.io/gorm"

type RiskStatus string

const (
	RiskActive    RiskStatus = "active"
	RiskMitigated RiskStatus = "mitigated"
	RiskAccepted  RiskStatus = "accepted"
	RiskClosed    RiskStatus = "closed"
)

// Risk — риск с присущей (до обработки) и остаточной оценкой.
// Вероятность и ущерб — по шкале 1–5.
type Risk struct {
	gorm.Model
	TenantID *uint
	Tenant   *Tenant

	Title       string     `gorm:"size:255;not null"`
	Status      RiskStatus `gorm:"type:varchar(20);not null"`
	Category    string     `gorm:"size:100"`
	Description string     `gorm:"type:text"`

	Probability int `gorm:"not null;default:1"`
	Impact      int `gorm:"not null;default:1"`

	ResidualProbability int `gorm:"not null;default:1"`
	ResidualImpact      int `gorm:"not null;default:1"`

	AssetID *uint
	Asset   *Asset

	Controls  []Control  `gorm:"many2many:risk_controls;"`
	Incidents []Incident `gorm:"foreignKey:RiskID"`
}

// InherentRiskLevel — вероятность × ущерб до применения мер.
func (r *Risk) InherentRiskLevel() int {
	return r.Probability * r.Impact
}

// ResidualRiskLevel — вероятность × ущерб после применения мер.
func (r *Risk) ResidualRiskLevel() int {
	return r.ResidualProbability * r.ResidualImpact
}

// RiskReduction — снижение риска в процентах; 0 при нулевом присущем риске.
func (r *Risk) RiskReduction() float64 {
	inherent := r.InherentRiskLevel()
	if inherent == 0 {
		return 0
	}
	return float64(inherent-r.ResidualRiskLevel()) / float64(inherent) * 100
}

func (r *Risk) IsHighRisk() bool {
	return r.InherentRiskLevel() >= 15
}

// AssessmentAccuracy сверяет оценку риска с фактическими инцидентами.
// nil — инцидентов не было, судить не о чем. Для высокого риска (>=15)
// оценка подтверждена, если был хотя бы один инцидент выше low; если все
// инциденты low — риск переоценён. Для низкого риска критический инцидент
// означает недооценку, иначе оценка подтверждена.
func (r *Risk) AssessmentAccuracy() *bool {
	if len(r.Incidents) == 0 {
		return nil
	}

	accurate := new(bool)
	if r.IsHighRisk() {
		for _, inc := range r.Incidents {
			if inc.Severity != SeverityLow {
				*accurate = true
				return accurate
			}
		}
		*accurate = false
		return accurate
	}

	for _, inc := range r.Incidents {
		if inc.Severity == SeverityCritical {
			*accurate = false
			return accurate
		}
	}
	*accurate = true
	return accurate
}

// StatusBadge — цвет бейджа для шаблонов.
func (r *Risk) StatusBadge() string {
	switch r.Status {
	case RiskActive:
		return "danger"
	case RiskMitigated:
		return "success"
	case RiskAccepted:
		return "warning"
	case RiskClosed:
		return "secondary"
	default:
		return "secondary"
	}
}
