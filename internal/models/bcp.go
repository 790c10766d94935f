package models

import (
	"time"

	"gorm.io/gorm"
)

type BCPStatus string

const (
	BCPDraft    BCPStatus = "draft"
	BCPActive   BCPStatus = "active"
	BCPArchived BCPStatus = "archived"
)

// BusinessContinuityPlan — план обеспечения непрерывности бизнеса.
type BusinessContinuityPlan struct {
	gorm.Model
	TenantID *uint
	Tenant   *Tenant

	Name   string    `gorm:"size:255;not null"`
	Status BCPStatus `gorm:"type:varchar(20);not null"`

	// Четыре обязательных содержательных раздела плана.
	ActivationCriteria string `gorm:"type:text"`
	RecoveryProcedures string `gorm:"type:text"`
	CommunicationPlan  string `gorm:"type:text"`
	ResponseTeam       string `gorm:"type:text"`

	LastTested     *time.Time
	LastReviewDate *time.Time

	Exercises []BCExercise `gorm:"foreignKey:PlanID"`
}

// MissingFields — список незаполненных обязательных разделов.
func (p *BusinessContinuityPlan) MissingFields() []string {
	var missing []string
	if p.ActivationCriteria == "" {
		missing = append(missing, "activation_criteria")
	}
	if p.RecoveryProcedures == "" {
		missing = append(missing, "recovery_procedures")
	}
	if p.CommunicationPlan == "" {
		missing = append(missing, "communication_plan")
	}
	if p.ResponseTeam == "" {
		missing = append(missing, "response_team")
	}
	return missing
}

// ReadinessScore — готовность плана, максимум 100:
// 40 за заполненные обязательные разделы; 30/20 за свежесть тестирования;
// 20/10 за свежесть пересмотра; 10 за статус active.
//
// Свежесть считается по месячной компоненте календарной разницы
// (см. monthsComponent): компонент <= 6 — "свежий" интервал.
func (p *BusinessContinuityPlan) ReadinessScore(now time.Time) int {
	score := 0

	if len(p.MissingFields()) == 0 {
		score += 40
	}

	if p.LastTested != nil && !p.LastTested.After(now) {
		if monthsComponent(*p.LastTested, now) <= 6 {
			score += 30
		} else {
			score += 20
		}
	}

	if p.LastReviewDate != nil && !p.LastReviewDate.After(now) {
		if monthsComponent(*p.LastReviewDate, now) <= 6 {
			score += 20
		} else {
			score += 10
		}
	}

	if p.Status == BCPActive {
		score += 10
	}

	return score
}

// TestOverdue — план не тестировался вовсе либо дольше 12 месяцев.
func (p *BusinessContinuityPlan) TestOverdue(now time.Time) bool {
	if p.LastTested == nil {
		return true
	}
	return !withinMonths(*p.LastTested, now, 12)
}

type ExerciseResult string

const (
	ExerciseSuccessful ExerciseResult = "successful"
	ExercisePartial    ExerciseResult = "partial"
	ExerciseFailed     ExerciseResult = "failed"
)

type ExerciseStatus string

const (
	ExerciseScheduled ExerciseStatus = "scheduled"
	ExerciseCompleted ExerciseStatus = "completed"
	ExerciseCancelled ExerciseStatus = "cancelled"
)

// BCExercise — учение по плану непрерывности (настольное, функциональное, полное).
type BCExercise struct {
	gorm.Model
	PlanID uint

	Title        string         `gorm:"size:255;not null"`
	ExerciseType string         `gorm:"size:50"`
	Status       ExerciseStatus `gorm:"type:varchar(20);not null"`
	Result       ExerciseResult `gorm:"type:varchar(20)"`

	ScheduledDate *time.Time
	OpenFindings  int `gorm:"default:0"`
}

// OutcomeScore — итог учения, [0,100]: successful 100 / partial 50 / failed 0,
// минус 10 за каждое незакрытое замечание.
func (e *BCExercise) OutcomeScore() int {
	base := 0
	switch e.Result {
	case ExerciseSuccessful:
		base = 100
	case ExercisePartial:
		base = 50
	case ExerciseFailed:
		base = 0
	default:
		base = 0
	}
	return clampScore(base-10*e.OpenFindings, 0, 100)
}

// IsOverdue — дата учения прошла, а учение не завершено и не отменено.
func (e *BCExercise) IsOverdue(now time.Time) bool {
	if e.ScheduledDate == nil {
		return false
	}
	if e.Status == ExerciseCompleted || e.Status == ExerciseCancelled {
		return false
	}
	return e.ScheduledDate.Before(now)
}
