package handlers

import (
	"net/http"
	"time"

	"isms-admin/internal/database"
	"isms-admin/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func IndexPage(c *gin.Context) {
	sess := sessions.Default(c)
	_, ok := sess.Get("user_id").(uint)

	c.HTML(http.StatusOK, "index.html", gin.H{
		"isAuthed": ok,
	})
}

// Dashboard — сводка по СМИБ: активы высокого риска, просроченные поставщики,
// готовность планов непрерывности.
func Dashboard(c *gin.Context) {
	now := time.Now()

	var assets []models.Asset
	database.DB.
		Preload("Risks").
		Preload("Incidents").
		Preload("Controls").
		Find(&assets)

	highRisk := 0
	for i := range assets {
		if assets[i].IsHighRisk() {
			highRisk++
		}
	}

	var suppliers []models.Supplier
	database.DB.Find(&suppliers)

	overdueSuppliers := 0
	for i := range suppliers {
		if suppliers[i].AssessmentOverdue(now) {
			overdueSuppliers++
		}
	}

	var plans []models.BusinessContinuityPlan
	database.DB.Find(&plans)

	readiness := make(map[uint]int, len(plans))
	for i := range plans {
		readiness[plans[i].ID] = plans[i].ReadinessScore(now)
	}

	var openIncidents int64
	database.DB.Model(&models.Incident{}).
		Where("status IN ?", []models.IncidentStatus{models.IncidentOpen, models.IncidentInvestigating}).
		Count(&openIncidents)

	render(c, http.StatusOK, "dashboard.html", gin.H{
		"assetCount":       len(assets),
		"highRiskAssets":   highRisk,
		"overdueSuppliers": overdueSuppliers,
		"openIncidents":    openIncidents,
		"plans":            plans,
		"readiness":        readiness,
	})
}
