package handlers

import (
	"net/http"
	"strings"

	"isms-admin/internal/authz"
	"isms-admin/internal/database"
	"isms-admin/internal/middleware"
	"isms-admin/internal/models"

	"github.com/gin-gonic/gin"
)

// РЕЕСТР РИСКОВ

func ListRisks(c *gin.Context) {
	var risks []models.Risk
	database.DB.
		Preload("Tenant").
		Preload("Asset").
		Order("tenant_id asc, title asc").
		Find(&risks)

	render(c, http.StatusOK, "risks_list.html", gin.H{
		"risks": risks,
	})
}

func ShowRiskDetail(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.String(http.StatusBadRequest, "Некорректный ID риска")
		return
	}

	var risk models.Risk
	if err := database.DB.
		Preload("Tenant").
		Preload("Asset").
		Preload("Controls").
		Preload("Incidents").
		First(&risk, id).Error; err != nil {
		c.String(http.StatusNotFound, "Риск не найден")
		return
	}

	if !middleware.Can(c, &risk, authz.ActionView, authz.RiskVoter{}) {
		return
	}

	// классификация по применимым аппетитам к риску
	var appetites []models.RiskAppetite
	database.DB.Where("tenant_id = ?", risk.TenantID).Find(&appetites)

	classifications := map[uint]models.AppetiteClassification{}
	for i := range appetites {
		if appetites[i].AppliesTo(risk.Category) {
			classifications[appetites[i].ID] = appetites[i].Classify(risk.InherentRiskLevel())
		}
	}

	render(c, http.StatusOK, "risk_detail.html", gin.H{
		"risk":            risk,
		"inherent":        risk.InherentRiskLevel(),
		"residual":        risk.ResidualRiskLevel(),
		"reduction":       risk.RiskReduction(),
		"isHighRisk":      risk.IsHighRisk(),
		"accuracy":        risk.AssessmentAccuracy(),
		"appetites":       appetites,
		"classifications": classifications,
	})
}

// СОЗДАНИЕ РИСКА

func ShowNewRisk(c *gin.Context) {
	var assets []models.Asset
	database.DB.Order("name asc").Find(&assets)

	render(c, http.StatusOK, "risks_new.html", gin.H{
		"assets": assets,
		"error":  "",
	})
}

func CreateRisk(c *gin.Context) {
	title := strings.TrimSpace(c.PostForm("title"))
	if len(title) < 3 {
		renderRiskError(c, "Название риска должно быть не короче 3 символов")
		return
	}

	tenantID := resolveTenantID(c)
	if tenantID == nil {
		renderRiskError(c, "Не определена организация риска")
		return
	}

	risk := models.Risk{
		TenantID:            tenantID,
		Title:               title,
		Status:              models.RiskActive,
		Category:            strings.TrimSpace(c.PostForm("category")),
		Description:         strings.TrimSpace(c.PostForm("description")),
		Probability:         formRating(c, "probability"),
		Impact:              formRating(c, "impact"),
		ResidualProbability: formRating(c, "residual_probability"),
		ResidualImpact:      formRating(c, "residual_impact"),
	}

	if aid := formInt(c, "asset_id", 0); aid > 0 {
		var asset models.Asset
		if err := database.DB.First(&asset, aid).Error; err != nil {
			renderRiskError(c, "Актив не найден")
			return
		}
		risk.AssetID = &asset.ID
	}

	if err := database.DB.Create(&risk).Error; err != nil {
		renderRiskError(c, "Ошибка сохранения риска в БД")
		return
	}

	audit(c, "risk", risk.ID, "create", "Создан риск: "+risk.Title)
	c.Redirect(http.StatusFound, "/risks")
}

func renderRiskError(c *gin.Context, msg string) {
	var assets []models.Asset
	database.DB.Order("name asc").Find(&assets)

	render(c, http.StatusBadRequest, "risks_new.html", gin.H{
		"error":  msg,
		"assets": assets,
	})
}

// РЕДАКТИРОВАНИЕ РИСКА

func ShowEditRisk(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.String(http.StatusBadRequest, "Некорректный ID риска")
		return
	}

	var risk models.Risk
	if err := database.DB.Preload("Asset").First(&risk, id).Error; err != nil {
		c.String(http.StatusNotFound, "Риск не найден")
		return
	}

	if !middleware.Can(c, &risk, authz.ActionEdit, authz.RiskVoter{}) {
		return
	}

	render(c, http.StatusOK, "risks_edit.html", gin.H{
		"risk":  risk,
		"error": "",
	})
}

func UpdateRisk(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.String(http.StatusBadRequest, "Некорректный ID риска")
		return
	}

	var risk models.Risk
	if err := database.DB.First(&risk, id).Error; err != nil {
		c.String(http.StatusNotFound, "Риск не найден")
		return
	}

	if !middleware.Can(c, &risk, authz.ActionEdit, authz.RiskVoter{}) {
		return
	}

	title := strings.TrimSpace(c.PostForm("title"))
	if len(title) < 3 {
		c.String(http.StatusBadRequest, "Название риска должно быть не короче 3 символов")
		return
	}

	status := models.RiskStatus(c.PostForm("status"))
	switch status {
	case models.RiskActive, models.RiskMitigated, models.RiskAccepted, models.RiskClosed:
	default:
		c.String(http.StatusBadRequest, "Неверный статус риска")
		return
	}

	risk.Title = title
	risk.Status = status
	risk.Category = strings.TrimSpace(c.PostForm("category"))
	risk.Description = strings.TrimSpace(c.PostForm("description"))
	risk.Probability = formRating(c, "probability")
	risk.Impact = formRating(c, "impact")
	risk.ResidualProbability = formRating(c, "residual_probability")
	risk.ResidualImpact = formRating(c, "residual_impact")

	if err := database.DB.Save(&risk).Error; err != nil {
		c.String(http.StatusInternalServerError, "Ошибка сохранения риска в БД")
		return
	}

	audit(c, "risk", risk.ID, "update", "Изменён риск: "+risk.Title)
	c.Redirect(http.StatusFound, "/risks")
}

func DeleteRisk(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.String(http.StatusBadRequest, "Некорректный ID риска")
		return
	}

	var risk models.Risk
	if err := database.DB.First(&risk, id).Error; err != nil {
		c.String(http.StatusNotFound, "Риск не найден")
		return
	}

	if !middleware.Can(c, &risk, authz.ActionDelete, authz.RiskVoter{}) {
		return
	}

	if err := database.DB.Delete(&risk).Error; err != nil {
		c.String(http.StatusInternalServerError, "Ошибка удаления риска")
		return
	}

	audit(c, "risk", risk.ID, "delete", "Удалён риск: "+risk.Title)
	c.Redirect(http.StatusFound, "/risks")
}
