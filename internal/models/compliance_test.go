package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComplianceMappingTypes(t *testing.T) {
	cases := []struct {
		percent  int
		wantPct  int
		wantType MappingType
	}{
		{0, 0, MappingWeak},
		{49, 49, MappingWeak},
		{50, 50, MappingPartial},
		{99, 99, MappingPartial},
		{100, 100, MappingFull},
		{101, 101, MappingExceeds},
		{150, 150, MappingExceeds},
		{-10, 0, MappingWeak},    // нижняя граница
		{200, 150, MappingExceeds}, // верхняя граница
	}

	for _, tc := range cases {
		m := ComplianceMapping{}
		m.SetMappingPercentage(tc.percent)
		assert.Equal(t, tc.wantPct, m.MappingPercentage, "input=%d", tc.percent)
		assert.Equal(t, tc.wantType, m.MappingType, "input=%d", tc.percent)
	}
}

func TestMappingGapWeights(t *testing.T) {
	assert.Equal(t, 10, (&MappingGapItem{Severity: "critical"}).SeverityWeight())
	assert.Equal(t, 7, (&MappingGapItem{Severity: "high"}).SeverityWeight())
	assert.Equal(t, 4, (&MappingGapItem{Severity: "medium"}).SeverityWeight())
	assert.Equal(t, 1, (&MappingGapItem{Severity: "low"}).SeverityWeight())
	assert.Equal(t, 0, (&MappingGapItem{Severity: "bogus"}).SeverityWeight())
}

func TestComplianceMappingGapScore(t *testing.T) {
	m := ComplianceMapping{GapItems: []MappingGapItem{
		{Severity: "critical", Status: GapOpen},
		{Severity: "high", Status: GapInProgress},
		{Severity: "medium", Status: GapResolved}, // закрытые не считаются
	}}
	assert.Equal(t, 17, m.GapScore())

	empty := ComplianceMapping{}
	assert.Equal(t, 0, empty.GapScore())
}

func TestRiskAppetiteClassify(t *testing.T) {
	appetite := RiskAppetite{MaxAcceptableRisk: 10}

	assert.Equal(t, AppetiteAcceptable, appetite.Classify(5))
	assert.Equal(t, AppetiteAcceptable, appetite.Classify(10))
	assert.Equal(t, AppetiteReviewRequired, appetite.Classify(11))
	assert.Equal(t, AppetiteReviewRequired, appetite.Classify(15)) // ровно 1.5×max
	assert.Equal(t, AppetiteExceeded, appetite.Classify(16))
}

func TestRiskAppetiteAppliesTo(t *testing.T) {
	global := RiskAppetite{MaxAcceptableRisk: 10}
	assert.True(t, global.AppliesTo("operational"))
	assert.True(t, global.AppliesTo(""))

	category := "operational"
	scoped := RiskAppetite{MaxAcceptableRisk: 10, Category: &category}
	assert.True(t, scoped.AppliesTo("operational"))
	assert.False(t, scoped.AppliesTo("financial"))
}
