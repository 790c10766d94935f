package handlers

import (
	"net/http"
	"strings"
	"time"

	"isms-admin/internal/authz"
	"isms-admin/internal/database"
	"isms-admin/internal/middleware"
	"isms-admin/internal/models"

	"github.com/gin-gonic/gin"
)

// ЖУРНАЛ ИНЦИДЕНТОВ

func ListIncidents(c *gin.Context) {
	var incidents []models.Incident
	database.DB.
		Preload("Tenant").
		Preload("Asset").
		Order("detected_at desc").
		Find(&incidents)

	render(c, http.StatusOK, "incidents_list.html", gin.H{
		"incidents": incidents,
	})
}

// РЕГИСТРАЦИЯ ИНЦИДЕНТА

func ShowNewIncident(c *gin.Context) {
	var assets []models.Asset
	database.DB.Order("name asc").Find(&assets)

	render(c, http.StatusOK, "incidents_new.html", gin.H{
		"assets": assets,
		"error":  "",
	})
}

func CreateIncident(c *gin.Context) {
	title := strings.TrimSpace(c.PostForm("title"))
	if len(title) < 3 {
		renderIncidentError(c, "Название инцидента должно быть не короче 3 символов")
		return
	}

	severity := models.IncidentSeverity(c.PostForm("severity"))
	switch severity {
	case models.SeverityCritical, models.SeverityHigh, models.SeverityMedium, models.SeverityLow:
	default:
		renderIncidentError(c, "Неверная серьёзность инцидента")
		return
	}

	tenantID := resolveTenantID(c)
	if tenantID == nil {
		renderIncidentError(c, "Не определена организация инцидента")
		return
	}

	detectedAt := formDate(c, "detected_at")
	if detectedAt == nil {
		now := time.Now()
		detectedAt = &now
	}

	incident := models.Incident{
		TenantID:    tenantID,
		Title:       title,
		Severity:    severity,
		Status:      models.IncidentOpen,
		Description: strings.TrimSpace(c.PostForm("description")),
		DetectedAt:  detectedAt,
	}

	if aid := formInt(c, "asset_id", 0); aid > 0 {
		var asset models.Asset
		if err := database.DB.First(&asset, aid).Error; err != nil {
			renderIncidentError(c, "Актив не найден")
			return
		}
		incident.AssetID = &asset.ID
	}
	if rid := formInt(c, "risk_id", 0); rid > 0 {
		var risk models.Risk
		if err := database.DB.First(&risk, rid).Error; err != nil {
			renderIncidentError(c, "Риск не найден")
			return
		}
		incident.RiskID = &risk.ID
	}

	if err := database.DB.Create(&incident).Error; err != nil {
		renderIncidentError(c, "Ошибка сохранения инцидента в БД")
		return
	}

	audit(c, "incident", incident.ID, "create", "Зарегистрирован инцидент: "+incident.Title)
	c.Redirect(http.StatusFound, "/incidents")
}

func renderIncidentError(c *gin.Context, msg string) {
	var assets []models.Asset
	database.DB.Order("name asc").Find(&assets)

	render(c, http.StatusBadRequest, "incidents_new.html", gin.H{
		"error":  msg,
		"assets": assets,
	})
}

// СМЕНА СТАТУСА

func UpdateIncidentStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.String(http.StatusBadRequest, "Некорректный ID инцидента")
		return
	}

	var incident models.Incident
	if err := database.DB.First(&incident, id).Error; err != nil {
		c.String(http.StatusNotFound, "Инцидент не найден")
		return
	}

	if !middleware.Can(c, &incident, authz.ActionEdit, authz.IncidentVoter{}) {
		return
	}

	status := models.IncidentStatus(c.PostForm("status"))
	switch status {
	case models.IncidentOpen, models.IncidentInvestigating, models.IncidentResolved, models.IncidentClosed:
	default:
		c.String(http.StatusBadRequest, "Неверный статус инцидента")
		return
	}

	incident.Status = status
	if err := database.DB.Save(&incident).Error; err != nil {
		c.String(http.StatusInternalServerError, "Ошибка сохранения инцидента")
		return
	}

	audit(c, "incident", incident.ID, "status_change", "Статус инцидента: "+string(status))
	c.Redirect(http.StatusFound, "/incidents")
}

func DeleteIncident(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.String(http.StatusBadRequest, "Некорректный ID инцидента")
		return
	}

	var incident models.Incident
	if err := database.DB.First(&incident, id).Error; err != nil {
		c.String(http.StatusNotFound, "Инцидент не найден")
		return
	}

	if !middleware.Can(c, &incident, authz.ActionDelete, authz.IncidentVoter{}) {
		return
	}

	if err := database.DB.Delete(&incident).Error; err != nil {
		c.String(http.StatusInternalServerError, "Ошибка удаления инцидента")
		return
	}

	audit(c, "incident", incident.ID, "delete", "Удалён инцидент: "+incident.Title)
	c.Redirect(http.StatusFound, "/incidents")
}
