package handlers

import (
	"net/http"
	"strings"

	"isms-admin/internal/authz"
	"isms-admin/internal/database"
	"isms-admin/internal/middleware"
	"isms-admin/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// СПИСОК АКТИВОВ

func ListAssets(c *gin.Context) {
	var assets []models.Asset
	database.DB.
		Preload("Tenant").
		Preload("Risks").
		Preload("Incidents").
		Preload("Controls").
		Order("tenant_id asc, name asc").
		Find(&assets)

	render(c, http.StatusOK, "assets_list.html", gin.H{
		"assets": assets,
	})
}

// КАРТОЧКА АКТИВА

func ShowAssetDetail(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.String(http.StatusBadRequest, "Некорректный ID актива")
		return
	}

	var asset models.Asset
	if err := database.DB.
		Preload("Tenant").
		Preload("Risks").
		Preload("Incidents").
		Preload("Controls").
		First(&asset, id).Error; err != nil {
		c.String(http.StatusNotFound, "Актив не найден")
		return
	}

	if !middleware.Can(c, &asset, authz.ActionView, authz.AssetVoter{}) {
		return
	}

	render(c, http.StatusOK, "asset_detail.html", gin.H{
		"asset":            asset,
		"totalValue":       asset.TotalValue(),
		"riskScore":        asset.RiskScore(),
		"isHighRisk":       asset.IsHighRisk(),
		"protectionStatus": asset.ProtectionStatus(),
	})
}

// СОЗДАНИЕ АКТИВА

func ShowNewAsset(c *gin.Context) {
	var tenants []models.Tenant
	database.DB.Order("name asc").Find(&tenants)

	render(c, http.StatusOK, "assets_new.html", gin.H{
		"tenants": tenants,
		"error":   "",
	})
}

func CreateAsset(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	aTypeStr := strings.TrimSpace(c.PostForm("asset_type"))
	description := strings.TrimSpace(c.PostForm("description"))

	if len(name) < 3 {
		renderAssetError(c, "Название актива должно быть не короче 3 символов")
		return
	}
	if aTypeStr == "" {
		renderAssetError(c, "Укажите тип актива")
		return
	}

	tenantID := resolveTenantID(c)
	if tenantID == nil {
		renderAssetError(c, "Не определена организация актива")
		return
	}

	asset := models.Asset{
		TenantID:        tenantID,
		Name:            name,
		AssetType:       models.AssetType(aTypeStr),
		Description:     description,
		Confidentiality: formRating(c, "confidentiality"),
		Integrity:       formRating(c, "integrity"),
		Availability:    formRating(c, "availability"),
	}

	if err := database.DB.Create(&asset).Error; err != nil {
		renderAssetError(c, "Ошибка сохранения актива в БД")
		return
	}

	audit(c, "asset", asset.ID, "create", "Создан актив: "+asset.Name)
	c.Redirect(http.StatusFound, "/assets")
}

func renderAssetError(c *gin.Context, msg string) {
	var tenants []models.Tenant
	database.DB.Order("name asc").Find(&tenants)

	render(c, http.StatusBadRequest, "assets_new.html", gin.H{
		"error":   msg,
		"tenants": tenants,
	})
}

// РЕДАКТИРОВАНИЕ АКТИВА

func ShowEditAsset(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.String(http.StatusBadRequest, "Некорректный ID актива")
		return
	}

	var asset models.Asset
	if err := database.DB.Preload("Tenant").First(&asset, id).Error; err != nil {
		c.String(http.StatusNotFound, "Актив не найден")
		return
	}

	if !middleware.Can(c, &asset, authz.ActionEdit, authz.AssetVoter{}) {
		return
	}

	var tenants []models.Tenant
	database.DB.Order("name asc").Find(&tenants)

	render(c, http.StatusOK, "assets_edit.html", gin.H{
		"asset":   asset,
		"tenants": tenants,
		"error":   "",
	})
}

func UpdateAsset(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.String(http.StatusBadRequest, "Некорректный ID актива")
		return
	}

	var asset models.Asset
	if err := database.DB.First(&asset, id).Error; err != nil {
		c.String(http.StatusNotFound, "Актив не найден")
		return
	}

	if !middleware.Can(c, &asset, authz.ActionEdit, authz.AssetVoter{}) {
		return
	}

	name := strings.TrimSpace(c.PostForm("name"))
	aTypeStr := strings.TrimSpace(c.PostForm("asset_type"))

	if len(name) < 3 {
		c.String(http.StatusBadRequest, "Название актива должно быть не короче 3 символов")
		return
	}
	if aTypeStr == "" {
		c.String(http.StatusBadRequest, "Укажите тип актива")
		return
	}

	asset.Name = name
	asset.AssetType = models.AssetType(aTypeStr)
	asset.Description = strings.TrimSpace(c.PostForm("description"))
	asset.Confidentiality = formRating(c, "confidentiality")
	asset.Integrity = formRating(c, "integrity")
	asset.Availability = formRating(c, "availability")

	if err := database.DB.Save(&asset).Error; err != nil {
		c.String(http.StatusInternalServerError, "Ошибка сохранения актива в БД")
		return
	}

	audit(c, "asset", asset.ID, "update", "Изменён актив: "+asset.Name)
	c.Redirect(http.StatusFound, "/assets")
}

// УДАЛЕНИЕ АКТИВА

func DeleteAsset(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.String(http.StatusBadRequest, "Некорректный ID актива")
		return
	}

	var asset models.Asset
	if err := database.DB.First(&asset, id).Error; err != nil {
		c.String(http.StatusNotFound, "Актив не найден")
		return
	}

	if !middleware.Can(c, &asset, authz.ActionDelete, authz.AssetVoter{}) {
		return
	}

	if err := database.DB.Delete(&asset).Error; err != nil {
		c.String(http.StatusInternalServerError, "Ошибка удаления актива")
		return
	}

	audit(c, "asset", asset.ID, "delete", "Удалён актив: "+asset.Name)
	c.Redirect(http.StatusFound, "/assets")
}

// resolveTenantID: админ может указать организацию в форме,
// остальные создают только в своей.
func resolveTenantID(c *gin.Context) *uint {
	user := middleware.CurrentUser(c)
	if user == nil {
		return nil
	}
	if user.IsAdmin() {
		if tid := formInt(c, "tenant_id", 0); tid > 0 {
			id := uint(tid)
			return &id
		}
	}
	return user.TenantID
}

// audit пишет действие текущего пользователя в журнал.
func audit(c *gin.Context, entity string, entityID uint, action, details string) {
	sess := sessions.Default(c)
	if uid, ok := sess.Get("user_id").(uint); ok {
		database.CreateAuditLog(uid, entity, entityID, action, details)
	}
}
