package handlers

import (
	"net/http"
	"strings"

	"isms-admin/internal/database"
	"isms-admin/internal/models"

	"github.com/gin-gonic/gin"
)

// АППЕТИТ К РИСКУ

func ListRiskAppetites(c *gin.Context) {
	var appetites []models.RiskAppetite
	database.DB.Preload("Tenant").Find(&appetites)

	render(c, http.StatusOK, "appetites_list.html", gin.H{
		"appetites": appetites,
	})
}

func CreateRiskAppetite(c *gin.Context) {
	maxRisk := formInt(c, "max_acceptable_risk", 0)
	if maxRisk <= 0 {
		c.String(http.StatusBadRequest, "Порог риска должен быть положительным")
		return
	}

	tenantID := resolveTenantID(c)
	if tenantID == nil {
		c.String(http.StatusBadRequest, "Не определена организация")
		return
	}

	appetite := models.RiskAppetite{
		TenantID:          tenantID,
		MaxAcceptableRisk: maxRisk,
	}

	// пустая категория — глобальный аппетит
	if category := strings.TrimSpace(c.PostForm("category")); category != "" {
		appetite.Category = &category
	}

	if err := database.DB.Create(&appetite).Error; err != nil {
		c.String(http.StatusInternalServerError, "Ошибка сохранения аппетита к риску")
		return
	}

	audit(c, "risk_appetite", appetite.ID, "create", "Задан аппетит к риску")
	c.Redirect(http.StatusFound, "/appetites")
}
