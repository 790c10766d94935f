package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestObjectiveProgressClamps(t *testing.T) {
	var o ISMSObjective
	o.SetProgress(-5)
	assert.Equal(t, 0, o.Progress)
	o.SetProgress(130)
	assert.Equal(t, 100, o.Progress)
}

func TestObjectiveProgressStatus(t *testing.T) {
	now := date(2026, time.July, 1)

	achieved := ISMSObjective{Progress: 100}
	assert.Equal(t, ObjectiveAchieved, achieved.ProgressStatus(now))

	noTarget := ISMSObjective{Progress: 10}
	assert.Equal(t, ObjectiveOnTrack, noTarget.ProgressStatus(now))

	overdue := ISMSObjective{
		Progress:   50,
		TargetDate: datePtr(2026, time.January, 1),
	}
	assert.Equal(t, ObjectiveOverdue, overdue.ProgressStatus(now))

	// половина срока прошла, прогресс выше половины — по плану
	onTrack := ISMSObjective{
		Progress:   60,
		StartDate:  datePtr(2026, time.January, 1),
		TargetDate: datePtr(2027, time.January, 1),
	}
	assert.Equal(t, ObjectiveOnTrack, onTrack.ProgressStatus(now))

	atRisk := ISMSObjective{
		Progress:   10,
		StartDate:  datePtr(2026, time.January, 1),
		TargetDate: datePtr(2027, time.January, 1),
	}
	assert.Equal(t, ObjectiveAtRisk, atRisk.ProgressStatus(now))
}

func TestInterestedPartyEngagement(t *testing.T) {
	regulator := InterestedParty{Influence: 5, Interest: 5}
	assert.Equal(t, 100, regulator.EngagementScore())
	assert.Equal(t, EngagementManageClosely, regulator.Strategy())

	shareholder := InterestedParty{Influence: 5, Interest: 2}
	assert.Equal(t, 70, shareholder.EngagementScore())
	assert.Equal(t, EngagementKeepSatisfied, shareholder.Strategy())

	staff := InterestedParty{Influence: 2, Interest: 5}
	assert.Equal(t, EngagementKeepInformed, staff.Strategy())

	vendor := InterestedParty{Influence: 1, Interest: 1}
	assert.Equal(t, 20, vendor.EngagementScore())
	assert.Equal(t, EngagementMonitor, vendor.Strategy())
}

func TestChangeRequestClassification(t *testing.T) {
	low := ChangeRequest{Impact: 1, Urgency: 3}
	assert.Equal(t, ChangeRiskLow, low.RiskClassification())
	assert.False(t, low.RequiresCAB())

	medium := ChangeRequest{Impact: 3, Urgency: 3}
	assert.Equal(t, ChangeRiskMedium, medium.RiskClassification())
	assert.False(t, medium.RequiresCAB())

	high := ChangeRequest{Impact: 4, Urgency: 3}
	assert.Equal(t, ChangeRiskHigh, high.RiskClassification())
	assert.True(t, high.RequiresCAB())

	// emergency выносится на комитет независимо от риска
	emergency := ChangeRequest{Impact: 1, Urgency: 1, ChangeType: ChangeEmergency}
	assert.True(t, emergency.RequiresCAB())
}

func TestGovernanceOversightScore(t *testing.T) {
	now := date(2026, time.August, 1)

	full := CorporateGovernance{
		CharterDocument:     "устав ИБ",
		ReviewCadenceMonths: 12,
		ResponsibleOwner:    "CISO",
		LastReviewDate:      datePtr(2026, time.March, 1),
	}
	assert.Equal(t, 100, full.OversightScore(now))

	staleReview := full
	staleReview.LastReviewDate = datePtr(2025, time.March, 1) // в пределах 2×каденции
	assert.Equal(t, 85, staleReview.OversightScore(now))

	noCharter := CorporateGovernance{ResponsibleOwner: "CISO"}
	assert.Equal(t, 30, noCharter.OversightScore(now))

	empty := CorporateGovernance{}
	assert.Equal(t, 0, empty.OversightScore(now))
}

func TestTreatmentPlan(t *testing.T) {
	now := date(2026, time.August, 1)

	empty := RiskTreatmentPlan{}
	assert.Equal(t, 0, empty.CompletionPercent())
	assert.Equal(t, TreatmentNotStarted, empty.DerivedStatus())

	half := RiskTreatmentPlan{TotalMeasures: 4, CompletedMeasures: 2}
	assert.Equal(t, 50, half.CompletionPercent())
	assert.Equal(t, TreatmentInProgress, half.DerivedStatus())

	done := RiskTreatmentPlan{TotalMeasures: 3, CompletedMeasures: 3}
	assert.Equal(t, 100, done.CompletionPercent())
	assert.Equal(t, TreatmentCompleted, done.DerivedStatus())

	overdue := RiskTreatmentPlan{
		TotalMeasures: 2, CompletedMeasures: 1,
		DueDate: datePtr(2026, time.January, 1),
	}
	assert.True(t, overdue.IsOverdue(now))

	doneLate := RiskTreatmentPlan{
		TotalMeasures: 2, CompletedMeasures: 2,
		DueDate: datePtr(2026, time.January, 1),
	}
	assert.False(t, doneLate.IsOverdue(now))
}

func TestPatchUrgency(t *testing.T) {
	now := date(2026, time.August, 1)

	critical := Patch{Severity: "critical", Status: PatchPending, ReleasedAt: datePtr(2026, time.July, 20)}
	assert.Equal(t, UrgencyImmediate, critical.Urgency())
	assert.True(t, critical.IsOverdue(now)) // SLA 7 дней

	high := Patch{Severity: "high", Status: PatchPending, ReleasedAt: datePtr(2026, time.July, 20)}
	assert.Equal(t, UrgencyScheduled, high.Urgency())
	assert.False(t, high.IsOverdue(now)) // SLA 30 дней

	routine := Patch{Severity: "low", Status: PatchPending, ReleasedAt: datePtr(2026, time.March, 1)}
	assert.Equal(t, UrgencyRoutine, routine.Urgency())
	assert.True(t, routine.IsOverdue(now)) // SLA 90 дней

	installed := Patch{Severity: "critical", Status: PatchInstalled, ReleasedAt: datePtr(2026, time.January, 1)}
	assert.False(t, installed.IsOverdue(now))
}
