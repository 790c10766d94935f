package models

import (
	"time"

	"gorm.io/gorm"
)

type TrainingStatus string

const (
	TrainingPlanned    TrainingStatus = "planned"
	TrainingInProgress TrainingStatus = "in_progress"
	TrainingCompleted  TrainingStatus = "completed"
)

type ControlTrainingState string

const (
	TrainingStateNone       ControlTrainingState = "no_training"
	TrainingStateCurrent    ControlTrainingState = "training_current"
	TrainingStateOutdated   ControlTrainingState = "training_outdated"
	TrainingStatePlanned    ControlTrainingState = "training_planned"
	TrainingStateIncomplete ControlTrainingState = "training_incomplete"
)

// Training — обучение персонала по конкретному контролю.
type Training struct {
	gorm.Model
	ControlID uint

	Title          string         `gorm:"size:255;not null"`
	Status         TrainingStatus `gorm:"type:varchar(20);not null"`
	CompletionDate *time.Time
}

// Control — мера защиты (контроль) из каталога ISO 27001 Annex A.
type Control struct {
	gorm.Model
	TenantID *uint
	Tenant   *Tenant

	Code                     string `gorm:"size:32"`
	Name                     string `gorm:"size:255;not null"`
	Description              string `gorm:"type:text"`
	Applicable               bool   `gorm:"default:true"`
	ImplementationPercentage int    `gorm:"not null;default:0"`

	NextReviewDate *time.Time

	ProtectedAssets []Asset    `gorm:"many2many:asset_controls;"`
	Trainings       []Training `gorm:"foreignKey:ControlID"`
}

// EffectivenessScore оценивает контроль по инцидентам на защищаемых активах.
// Не внедрённый полностью контроль всегда 0; внедрённый без активов — 100;
// иначе 100 минус 20 за каждый инцидент (после создания контроля) на один актив.
func (c *Control) EffectivenessScore() float64 {
	if c.ImplementationPercentage < 100 {
		return 0
	}
	assetCount := len(c.ProtectedAssets)
	if assetCount == 0 {
		return 100
	}

	incidents := 0
	for _, asset := range c.ProtectedAssets {
		for _, inc := range asset.Incidents {
			if inc.DetectedAt != nil && !inc.DetectedAt.Before(c.CreatedAt) {
				incidents++
			}
		}
	}

	score := 100 - 20*float64(incidents)/float64(assetCount)
	if score < 0 {
		score = 0
	}
	return score
}

// NeedsReview — был ли инцидент на защищаемом активе за последние 3 месяца,
// либо прошла дата планового пересмотра.
func (c *Control) NeedsReview(now time.Time) bool {
	for _, asset := range c.ProtectedAssets {
		for _, inc := range asset.Incidents {
			if inc.DetectedWithin(now, 3) {
				return true
			}
		}
	}
	return c.NextReviewDate != nil && c.NextReviewDate.Before(now)
}

// TrainingState — актуальность обучения по контролю. Завершённое обучение
// свежее года — актуально, старше — устарело; без завершённых смотрим,
// запланировано ли хоть одно.
func (c *Control) TrainingState(now time.Time) ControlTrainingState {
	if len(c.Trainings) == 0 {
		return TrainingStateNone
	}

	var latest *time.Time
	hasPlanned := false
	for i := range c.Trainings {
		t := &c.Trainings[i]
		switch t.Status {
		case TrainingCompleted:
			if t.CompletionDate != nil && (latest == nil || t.CompletionDate.After(*latest)) {
				latest = t.CompletionDate
			}
		case TrainingPlanned:
			hasPlanned = true
		}
	}

	if latest != nil {
		if withinMonths(*latest, now, 12) {
			return TrainingStateCurrent
		}
		return TrainingStateOutdated
	}
	if hasPlanned {
		return TrainingStatePlanned
	}
	return TrainingStateIncomplete
}
