package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeRisks(status RiskStatus, n int) []Risk {
	risks := make([]Risk, n)
	for i := range risks {
		risks[i] = Risk{Status: status}
	}
	return risks
}

func TestAssetTotalValue(t *testing.T) {
	cases := []struct {
		name    string
		c, i, a int
		want    int
	}{
		{"confidentiality highest", 5, 2, 1, 5},
		{"integrity highest", 1, 4, 2, 4},
		{"availability highest", 1, 2, 3, 3},
		{"all equal", 2, 2, 2, 2},
		{"minimum", 1, 1, 1, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			asset := Asset{Confidentiality: tc.c, Integrity: tc.i, Availability: tc.a}
			assert.Equal(t, tc.want, asset.TotalValue())
		})
	}
}

func TestAssetRiskScore(t *testing.T) {
	asset := Asset{Confidentiality: 3, Integrity: 2, Availability: 1}
	// 3*10 = 30, ни рисков, ни инцидентов, ни контролей
	assert.Equal(t, 30, asset.RiskScore())

	asset.Risks = makeRisks(RiskActive, 2)
	assert.Equal(t, 40, asset.RiskScore())

	asset.Incidents = []Incident{{}, {}}
	assert.Equal(t, 44, asset.RiskScore())

	asset.Controls = []Control{{}, {}, {}}
	assert.Equal(t, 35, asset.RiskScore())
}

func TestAssetRiskScoreCountsOnlyActiveRisks(t *testing.T) {
	asset := Asset{Confidentiality: 2, Integrity: 2, Availability: 2}
	asset.Risks = append(makeRisks(RiskActive, 1), makeRisks(RiskClosed, 10)...)
	assert.Equal(t, 25, asset.RiskScore())
}

func TestAssetRiskScoreStaysClamped(t *testing.T) {
	// экстремальные входы не выводят оценку за [0,100]
	extreme := Asset{Confidentiality: 5, Integrity: 5, Availability: 5}
	extreme.Risks = makeRisks(RiskActive, 1000)
	assert.Equal(t, 100, extreme.RiskScore())

	protected := Asset{Confidentiality: 1, Integrity: 1, Availability: 1}
	protected.Controls = make([]Control, 50)
	assert.Equal(t, 0, protected.RiskScore())
}

func TestAssetHighRiskBoundary(t *testing.T) {
	// 4 активных риска: 50 + 20 = 70 — порог высокого риска
	asset := Asset{Confidentiality: 5, Integrity: 5, Availability: 5}
	asset.Risks = makeRisks(RiskActive, 4)
	assert.Equal(t, 70, asset.RiskScore())
	assert.True(t, asset.IsHighRisk())

	// 3 активных риска: 65 — уже не высокий
	asset.Risks = makeRisks(RiskActive, 3)
	assert.Equal(t, 65, asset.RiskScore())
	assert.False(t, asset.IsHighRisk())
}

func TestAssetIsHighRiskDerivedFromScore(t *testing.T) {
	for _, n := range []int{0, 2, 4, 7, 20} {
		asset := Asset{Confidentiality: 3, Integrity: 3, Availability: 3}
		asset.Risks = makeRisks(RiskActive, n)
		assert.Equal(t, asset.RiskScore() >= 70, asset.IsHighRisk(), "risks=%d", n)
	}
}

func TestAssetProtectionStatus(t *testing.T) {
	noRisks := Asset{}
	assert.Equal(t, ProtectionAdequate, noRisks.ProtectionStatus())

	unprotected := Asset{Risks: makeRisks(RiskActive, 2)}
	assert.Equal(t, ProtectionNone, unprotected.ProtectionStatus())

	under := Asset{Risks: makeRisks(RiskActive, 3), Controls: []Control{{}}}
	assert.Equal(t, ProtectionUnder, under.ProtectionStatus())

	adequate := Asset{Risks: makeRisks(RiskActive, 2), Controls: []Control{{}, {}}}
	assert.Equal(t, ProtectionAdequate, adequate.ProtectionStatus())

	// закрытые риски защиты не требуют
	closed := Asset{Risks: makeRisks(RiskClosed, 5)}
	assert.Equal(t, ProtectionAdequate, closed.ProtectionStatus())
}
