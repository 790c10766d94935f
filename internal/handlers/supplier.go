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

// РЕЕСТР ПОСТАВЩИКОВ

func ListSuppliers(c *gin.Context) {
	now := time.Now()

	var suppliers []models.Supplier
	database.DB.Preload("Tenant").Order("name asc").Find(&suppliers)

	riskScores := map[uint]int{}
	overdue := map[uint]bool{}
	for i := range suppliers {
		riskScores[suppliers[i].ID] = suppliers[i].RiskScore(now)
		overdue[suppliers[i].ID] = suppliers[i].AssessmentOverdue(now)
	}

	render(c, http.StatusOK, "suppliers_list.html", gin.H{
		"suppliers":  suppliers,
		"riskScores": riskScores,
		"overdue":    overdue,
	})
}

// СОЗДАНИЕ ПОСТАВЩИКА

func ShowNewSupplier(c *gin.Context) {
	render(c, http.StatusOK, "suppliers_new.html", gin.H{"error": ""})
}

func CreateSupplier(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	if len(name) < 3 {
		render(c, http.StatusBadRequest, "suppliers_new.html", gin.H{
			"error": "Название поставщика должно быть не короче 3 символов",
		})
		return
	}

	criticality := models.SupplierCriticality(c.PostForm("criticality"))
	switch criticality {
	case models.CriticalityLow, models.CriticalityMedium, models.CriticalityHigh, models.CriticalityCritical:
	default:
		render(c, http.StatusBadRequest, "suppliers_new.html", gin.H{
			"error": "Неверная критичность поставщика",
		})
		return
	}

	tenantID := resolveTenantID(c)
	if tenantID == nil {
		render(c, http.StatusBadRequest, "suppliers_new.html", gin.H{
			"error": "Не определена организация поставщика",
		})
		return
	}

	supplier := models.Supplier{
		TenantID:               tenantID,
		Name:                   name,
		Criticality:            criticality,
		HasISO27001:            formBool(c, "has_iso27001"),
		HasISO22301:            formBool(c, "has_iso22301"),
		HasDPA:                 formBool(c, "has_dpa"),
		LastSecurityAssessment: formDate(c, "last_security_assessment"),
		NextAssessmentDate:     formDate(c, "next_assessment_date"),
	}

	// пустое поле — оценка не проводилась
	if raw := strings.TrimSpace(c.PostForm("security_score")); raw != "" {
		score := formInt(c, "security_score", 0)
		if score < 0 {
			score = 0
		}
		if score > 100 {
			score = 100
		}
		supplier.SecurityScore = &score
	}

	if err := database.DB.Create(&supplier).Error; err != nil {
		render(c, http.StatusInternalServerError, "suppliers_new.html", gin.H{
			"error": "Ошибка сохранения поставщика в БД",
		})
		return
	}

	audit(c, "supplier", supplier.ID, "create", "Создан поставщик: "+supplier.Name)
	c.Redirect(http.StatusFound, "/suppliers")
}

// РЕДАКТИРОВАНИЕ ПОСТАВЩИКА

func ShowEditSupplier(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.String(http.StatusBadRequest, "Некорректный ID поставщика")
		return
	}

	var supplier models.Supplier
	if err := database.DB.First(&supplier, id).Error; err != nil {
		c.String(http.StatusNotFound, "Поставщик не найден")
		return
	}

	if !middleware.Can(c, &supplier, authz.ActionEdit, authz.EntityVoter{}) {
		return
	}

	render(c, http.StatusOK, "suppliers_edit.html", gin.H{
		"supplier": supplier,
		"error":    "",
	})
}

func UpdateSupplier(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.String(http.StatusBadRequest, "Некорректный ID поставщика")
		return
	}

	var supplier models.Supplier
	if err := database.DB.First(&supplier, id).Error; err != nil {
		c.String(http.StatusNotFound, "Поставщик не найден")
		return
	}

	if !middleware.Can(c, &supplier, authz.ActionEdit, authz.EntityVoter{}) {
		return
	}

	name := strings.TrimSpace(c.PostForm("name"))
	if len(name) < 3 {
		c.String(http.StatusBadRequest, "Название поставщика должно быть не короче 3 символов")
		return
	}

	supplier.Name = name
	supplier.Criticality = models.SupplierCriticality(c.PostForm("criticality"))
	supplier.HasISO27001 = formBool(c, "has_iso27001")
	supplier.HasISO22301 = formBool(c, "has_iso22301")
	supplier.HasDPA = formBool(c, "has_dpa")
	supplier.LastSecurityAssessment = formDate(c, "last_security_assessment")
	supplier.NextAssessmentDate = formDate(c, "next_assessment_date")

	supplier.SecurityScore = nil
	if raw := strings.TrimSpace(c.PostForm("security_score")); raw != "" {
		score := formInt(c, "security_score", 0)
		if score < 0 {
			score = 0
		}
		if score > 100 {
			score = 100
		}
		supplier.SecurityScore = &score
	}

	if err := database.DB.Save(&supplier).Error; err != nil {
		c.String(http.StatusInternalServerError, "Ошибка сохранения поставщика в БД")
		return
	}

	audit(c, "supplier", supplier.ID, "update", "Изменён поставщик: "+supplier.Name)
	c.Redirect(http.StatusFound, "/suppliers")
}
