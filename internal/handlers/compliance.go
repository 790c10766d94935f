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

// СООТВЕТСТВИЕ ТРЕБОВАНИЯМ

func ListComplianceMappings(c *gin.Context) {
	var mappings []models.ComplianceMapping
	database.DB.
		Preload("Tenant").
		Preload("GapItems").
		Order("framework asc, requirement asc").
		Find(&mappings)

	gapScores := map[uint]int{}
	for i := range mappings {
		gapScores[mappings[i].ID] = mappings[i].GapScore()
	}

	render(c, http.StatusOK, "compliance_list.html", gin.H{
		"mappings":  mappings,
		"gapScores": gapScores,
	})
}

func ShowNewComplianceMapping(c *gin.Context) {
	render(c, http.StatusOK, "compliance_new.html", gin.H{"error": ""})
}

func CreateComplianceMapping(c *gin.Context) {
	framework := strings.TrimSpace(c.PostForm("framework"))
	requirement := strings.TrimSpace(c.PostForm("requirement"))
	if framework == "" || requirement == "" {
		render(c, http.StatusBadRequest, "compliance_new.html", gin.H{
			"error": "Укажите фреймворк и требование",
		})
		return
	}

	tenantID := resolveTenantID(c)
	if tenantID == nil {
		render(c, http.StatusBadRequest, "compliance_new.html", gin.H{
			"error": "Не определена организация",
		})
		return
	}

	mapping := models.ComplianceMapping{
		TenantID:    tenantID,
		Framework:   framework,
		Requirement: requirement,
	}
	mapping.SetMappingPercentage(formInt(c, "mapping_percentage", 0))

	if err := database.DB.Create(&mapping).Error; err != nil {
		render(c, http.StatusInternalServerError, "compliance_new.html", gin.H{
			"error": "Ошибка сохранения в БД",
		})
		return
	}

	audit(c, "compliance_mapping", mapping.ID, "create",
		"Маппинг "+framework+" / "+requirement)
	c.Redirect(http.StatusFound, "/compliance")
}

func UpdateComplianceMapping(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.String(http.StatusBadRequest, "Некорректный ID маппинга")
		return
	}

	var mapping models.ComplianceMapping
	if err := database.DB.First(&mapping, id).Error; err != nil {
		c.String(http.StatusNotFound, "Маппинг не найден")
		return
	}

	if !middleware.Can(c, &mapping, authz.ActionEdit, authz.EntityVoter{}) {
		return
	}

	mapping.SetMappingPercentage(formInt(c, "mapping_percentage", mapping.MappingPercentage))

	if err := database.DB.Save(&mapping).Error; err != nil {
		c.String(http.StatusInternalServerError, "Ошибка сохранения в БД")
		return
	}

	audit(c, "compliance_mapping", mapping.ID, "update",
		"Покрытие: "+string(mapping.MappingType))
	c.Redirect(http.StatusFound, "/compliance")
}

// РАЗРЫВЫ ПО МАППИНГУ

func AddGapItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.String(http.StatusBadRequest, "Некорректный ID маппинга")
		return
	}

	var mapping models.ComplianceMapping
	if err := database.DB.First(&mapping, id).Error; err != nil {
		c.String(http.StatusNotFound, "Маппинг не найден")
		return
	}

	if !middleware.Can(c, &mapping, authz.ActionEdit, authz.EntityVoter{}) {
		return
	}

	item := models.MappingGapItem{
		MappingID:   mapping.ID,
		Description: strings.TrimSpace(c.PostForm("description")),
		Severity:    strings.TrimSpace(c.PostForm("severity")),
		Status:      models.GapOpen,
	}

	if err := database.DB.Create(&item).Error; err != nil {
		c.String(http.StatusInternalServerError, "Ошибка сохранения разрыва")
		return
	}

	audit(c, "gap_item", item.ID, "create", "Разрыв по маппингу")
	c.Redirect(http.StatusFound, "/compliance")
}

func ResolveGapItem(c *gin.Context) {
	id, ok := parseID(c, "gap_id")
	if !ok {
		c.String(http.StatusBadRequest, "Некорректный ID разрыва")
		return
	}

	var item models.MappingGapItem
	if err := database.DB.First(&item, id).Error; err != nil {
		c.String(http.StatusNotFound, "Разрыв не найден")
		return
	}

	var mapping models.ComplianceMapping
	if err := database.DB.First(&mapping, item.MappingID).Error; err != nil {
		c.String(http.StatusNotFound, "Маппинг не найден")
		return
	}

	if !middleware.Can(c, &mapping, authz.ActionEdit, authz.EntityVoter{}) {
		return
	}

	item.Status = models.GapResolved
	if err := database.DB.Save(&item).Error; err != nil {
		c.String(http.StatusInternalServerError, "Ошибка сохранения разрыва")
		return
	}

	audit(c, "gap_item", item.ID, "resolve", "Разрыв закрыт")
	c.Redirect(http.StatusFound, "/compliance")
}
