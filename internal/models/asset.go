package models

import "gorm.io/gorm"

type AssetType string

const (
	AssetHardware    AssetType = "hardware"
	AssetSoftware    AssetType = "software"
	AssetInformation AssetType = "information"
	AssetService     AssetType = "service"
	AssetPersonnel   AssetType = "personnel"
)

type ProtectionStatus string

const (
	ProtectionAdequate ProtectionStatus = "adequately_protected"
	ProtectionUnder    ProtectionStatus = "under_protected"
	ProtectionNone     ProtectionStatus = "unprotected"
)

// Asset — актив с оценками конфиденциальности/целостности/доступности (1–5).
type Asset struct {
	gorm.Model
	TenantID *uint
	Tenant   *Tenant

	Name        string    `gorm:"size:255;not null"`
	AssetType   AssetType `gorm:"type:varchar(50);not null"`
	Description string    `gorm:"type:text"`

	Confidentiality int `gorm:"not null;default:1"`
	Integrity       int `gorm:"not null;default:1"`
	Availability    int `gorm:"not null;default:1"`

	Risks     []Risk     `gorm:"foreignKey:AssetID"`
	Incidents []Incident `gorm:"foreignKey:AssetID"`
	Controls  []Control  `gorm:"many2many:asset_controls;"`
}

// TotalValue — максимум из трёх оценок КЦД.
func (a *Asset) TotalValue() int {
	v := a.Confidentiality
	if a.Integrity > v {
		v = a.Integrity
	}
	if a.Availability > v {
		v = a.Availability
	}
	return v
}

func (a *Asset) activeRiskCount() int {
	n := 0
	for _, r := range a.Risks {
		if r.Status == RiskActive {
			n++
		}
	}
	return n
}

// RiskScore — взвешенная сумма: ценность*10 + 5 за активный риск
// + 2 за инцидент − 3 за защищающий контроль, в пределах [0,100].
func (a *Asset) RiskScore() int {
	score := a.TotalValue()*10 +
		a.activeRiskCount()*5 +
		len(a.Incidents)*2 -
		len(a.Controls)*3
	return clampScore(score, 0, 100)
}

func (a *Asset) IsHighRisk() bool {
	return a.RiskScore() >= 70
}

// ProtectionStatus сравнивает число защищающих контролей с числом активных рисков.
func (a *Asset) ProtectionStatus() ProtectionStatus {
	risks := a.activeRiskCount()
	if risks == 0 {
		return ProtectionAdequate
	}
	controls := len(a.Controls)
	if controls == 0 {
		return ProtectionNone
	}
	if controls < risks {
		return ProtectionUnder
	}
	return ProtectionAdequate
}
