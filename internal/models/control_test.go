package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func TestControlEffectivenessNotImplemented(t *testing.T) {
	control := Control{ImplementationPercentage: 99}
	control.ProtectedAssets = []Asset{{}}
	assert.Equal(t, 0.0, control.EffectivenessScore())
}

func TestControlEffectivenessNoAssets(t *testing.T) {
	control := Control{ImplementationPercentage: 100}
	assert.Equal(t, 100.0, control.EffectivenessScore())
}

func TestControlEffectivenessWithIncidents(t *testing.T) {
	control := Control{ImplementationPercentage: 100}
	control.CreatedAt = date(2025, time.January, 1)

	control.ProtectedAssets = []Asset{
		{Incidents: []Incident{
			{DetectedAt: datePtr(2025, time.March, 1)},
			{DetectedAt: datePtr(2025, time.June, 1)},
		}},
		{},
		{},
	}

	// 100 − 20 × (2 инцидента / 3 актива)
	assert.InDelta(t, 100-20.0*2/3, control.EffectivenessScore(), 0.001)
}

func TestControlEffectivenessIgnoresIncidentsBeforeCreation(t *testing.T) {
	control := Control{ImplementationPercentage: 100}
	control.CreatedAt = date(2025, time.June, 1)

	control.ProtectedAssets = []Asset{
		{Incidents: []Incident{
			{DetectedAt: datePtr(2025, time.January, 10)}, // до создания контроля
			{DetectedAt: datePtr(2025, time.July, 10)},
		}},
	}

	assert.InDelta(t, 80.0, control.EffectivenessScore(), 0.001)
}

func TestControlNeedsReview(t *testing.T) {
	now := date(2026, time.August, 1)

	fresh := Control{
		ProtectedAssets: []Asset{
			{Incidents: []Incident{{DetectedAt: datePtr(2026, time.July, 1)}}},
		},
	}
	assert.True(t, fresh.NeedsReview(now))

	stale := Control{
		ProtectedAssets: []Asset{
			{Incidents: []Incident{{DetectedAt: datePtr(2025, time.July, 1)}}},
		},
	}
	assert.False(t, stale.NeedsReview(now))

	overdue := Control{NextReviewDate: datePtr(2026, time.January, 1)}
	assert.True(t, overdue.NeedsReview(now))

	scheduled := Control{NextReviewDate: datePtr(2027, time.January, 1)}
	assert.False(t, scheduled.NeedsReview(now))

	empty := Control{}
	assert.False(t, empty.NeedsReview(now))
}

func TestControlTrainingState(t *testing.T) {
	now := date(2026, time.August, 1)

	none := Control{}
	assert.Equal(t, TrainingStateNone, none.TrainingState(now))

	current := Control{Trainings: []Training{
		{Status: TrainingCompleted, CompletionDate: datePtr(2026, time.February, 1)},
	}}
	assert.Equal(t, TrainingStateCurrent, current.TrainingState(now))

	outdated := Control{Trainings: []Training{
		{Status: TrainingCompleted, CompletionDate: datePtr(2024, time.February, 1)},
	}}
	assert.Equal(t, TrainingStateOutdated, outdated.TrainingState(now))

	// свежесть считается по самому позднему завершённому обучению
	mixed := Control{Trainings: []Training{
		{Status: TrainingCompleted, CompletionDate: datePtr(2024, time.February, 1)},
		{Status: TrainingCompleted, CompletionDate: datePtr(2026, time.March, 1)},
	}}
	assert.Equal(t, TrainingStateCurrent, mixed.TrainingState(now))

	planned := Control{Trainings: []Training{
		{Status: TrainingPlanned},
	}}
	assert.Equal(t, TrainingStatePlanned, planned.TrainingState(now))

	incomplete := Control{Trainings: []Training{
		{Status: TrainingInProgress},
	}}
	assert.Equal(t, TrainingStateIncomplete, incomplete.TrainingState(now))
}
