package models

import (
	"time"

	"gorm.io/gorm"
)

// CorporateGovernance — рамка корпоративного управления ИБ для тенанта.
type CorporateGovernance struct {
	gorm.Model
	TenantID *uint
	Tenant   *Tenant

	CharterDocument     string `gorm:"type:text"`
	ReviewCadenceMonths int    `gorm:"default:0"`
	ResponsibleOwner    string `gorm:"size:255"`

	LastReviewDate *time.Time
}

// OversightScore — зрелость управления, [0,100]: 40 за устав и установленную
// периодичность пересмотра, 30/15 за свежесть последнего пересмотра
// (в пределах одной/двух периодичностей), 30 за назначенного ответственного.
func (g *CorporateGovernance) OversightScore(now time.Time) int {
	score := 0

	if g.CharterDocument != "" && g.ReviewCadenceMonths > 0 {
		score += 40
	}

	if g.LastReviewDate != nil && g.ReviewCadenceMonths > 0 && !g.LastReviewDate.After(now) {
		if withinMonths(*g.LastReviewDate, now, g.ReviewCadenceMonths) {
			score += 30
		} else if withinMonths(*g.LastReviewDate, now, 2*g.ReviewCadenceMonths) {
			score += 15
		}
	}

	if g.ResponsibleOwner != "" {
		score += 30
	}

	return clampScore(score, 0, 100)
}
