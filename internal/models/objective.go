package models

import (
	"time"

	"gorm.io/gorm"
)

type ObjectiveStatus string

const (
	ObjectiveAchieved ObjectiveStatus = "achieved"
	ObjectiveOnTrack  ObjectiveStatus = "on_track"
	ObjectiveAtRisk   ObjectiveStatus = "at_risk"
	ObjectiveOverdue  ObjectiveStatus = "overdue"
)

// ISMSObjective — цель СМИБ с целевой датой и процентом выполнения.
type ISMSObjective struct {
	gorm.Model
	TenantID *uint
	Tenant   *Tenant

	Title       string `gorm:"size:255;not null"`
	Description string `gorm:"type:text"`

	Progress   int `gorm:"not null;default:0"`
	StartDate  *time.Time
	TargetDate *time.Time
}

// SetProgress сохраняет прогресс в пределах [0,100].
func (o *ISMSObjective) SetProgress(p int) {
	o.Progress = clampScore(p, 0, 100)
}

// ProgressStatus сравнивает фактический прогресс с ожидаемым по времени:
// достигнута / идёт по плану / под угрозой / просрочена.
func (o *ISMSObjective) ProgressStatus(now time.Time) ObjectiveStatus {
	if o.Progress >= 100 {
		return ObjectiveAchieved
	}
	if o.TargetDate == nil {
		return ObjectiveOnTrack
	}
	if o.TargetDate.Before(now) {
		return ObjectiveOverdue
	}
	if o.StartDate == nil || !o.StartDate.Before(*o.TargetDate) {
		return ObjectiveOnTrack
	}

	elapsed := now.Sub(*o.StartDate)
	if elapsed < 0 {
		elapsed = 0
	}
	total := o.TargetDate.Sub(*o.StartDate)
	expected := int(float64(elapsed) / float64(total) * 100)

	if o.Progress >= expected {
		return ObjectiveOnTrack
	}
	return ObjectiveAtRisk
}

type EngagementStrategy string

const (
	EngagementManageClosely EngagementStrategy = "manage_closely"
	EngagementKeepSatisfied EngagementStrategy = "keep_satisfied"
	EngagementKeepInformed  EngagementStrategy = "keep_informed"
	EngagementMonitor       EngagementStrategy = "monitor"
)

// InterestedParty — заинтересованная сторона (матрица влияние/интерес, 1–5).
type InterestedParty struct {
	gorm.Model
	TenantID *uint
	Tenant   *Tenant

	Name      string `gorm:"size:255;not null"`
	PartyType string `gorm:"size:50"` // regulator / customer / shareholder / staff

	Influence int `gorm:"not null;default:1"`
	Interest  int `gorm:"not null;default:1"`
}

// EngagementScore — влияние×10 + интерес×10, в пределах [0,100].
func (p *InterestedParty) EngagementScore() int {
	return clampScore(p.Influence*10+p.Interest*10, 0, 100)
}

// Strategy — классическая матрица власти/интереса.
func (p *InterestedParty) Strategy() EngagementStrategy {
	switch {
	case p.Influence >= 4 && p.Interest >= 4:
		return EngagementManageClosely
	case p.Influence >= 4:
		return EngagementKeepSatisfied
	case p.Interest >= 4:
		return EngagementKeepInformed
	default:
		return EngagementMonitor
	}
}
