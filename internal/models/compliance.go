package models

import "gorm.io/gorm"

type MappingType string

const (
	MappingWeak    MappingType = "weak"
	MappingPartial MappingType = "partial"
	MappingFull    MappingType = "full"
	MappingExceeds MappingType = "exceeds"
)

// ComplianceMapping — соответствие требования фреймворка внутренним контролям.
// Процент покрытия может превышать 100 (требование перекрыто с запасом).
type ComplianceMapping struct {
	gorm.Model
	TenantID *uint
	Tenant   *Tenant

	Framework   string `gorm:"size:100;not null"`
	Requirement string `gorm:"size:255;not null"`

	MappingPercentage int         `gorm:"not null;default:0"`
	MappingType       MappingType `gorm:"type:varchar(20);not null;default:'weak'"`

	GapItems []MappingGapItem `gorm:"foreignKey:MappingID"`
}

// SetMappingPercentage сохраняет процент в пределах [0,150] и выводит тип:
// <50 weak, <100 partial, ==100 full, >100 exceeds.
func (m *ComplianceMapping) SetMappingPercentage(p int) {
	p = clampScore(p, 0, 150)
	m.MappingPercentage = p

	switch {
	case p < 50:
		m.MappingType = MappingWeak
	case p < 100:
		m.MappingType = MappingPartial
	case p == 100:
		m.MappingType = MappingFull
	default:
		m.MappingType = MappingExceeds
	}
}

// GapScore — суммарный вес незакрытых замечаний по маппингу.
func (m *ComplianceMapping) GapScore() int {
	total := 0
	for _, item := range m.GapItems {
		if !item.IsResolved() {
			total += item.SeverityWeight()
		}
	}
	return total
}

type GapStatus string

const (
	GapOpen       GapStatus = "open"
	GapInProgress GapStatus = "in_progress"
	GapResolved   GapStatus = "resolved"
)

// MappingGapItem — выявленный разрыв между требованием и фактическим покрытием.
type MappingGapItem struct {
	gorm.Model
	MappingID uint

	Description string    `gorm:"type:text"`
	Severity    string    `gorm:"size:20"`
	Status      GapStatus `gorm:"type:varchar(20);not null;default:'open'"`
}

// SeverityWeight — вклад разрыва в общий счёт: critical 10 / high 7 / medium 4 / low 1.
func (g *MappingGapItem) SeverityWeight() int {
	switch g.Severity {
	case "critical":
		return 10
	case "high":
		return 7
	case "medium":
		return 4
	case "low":
		return 1
	default:
		return 0
	}
}

func (g *MappingGapItem) IsResolved() bool {
	return g.Status == GapResolved
}
