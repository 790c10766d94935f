package handlers

import (
	"net/http"
	"strings"

	"isms-admin/internal/database"
	"isms-admin/internal/models"

	"github.com/gin-gonic/gin"
)

// СТРУКТУРА ОРГАНИЗАЦИЙ

func ListTenants(c *gin.Context) {
	var tenants []models.Tenant
	database.DB.Preload("Parent").Order("name asc").Find(&tenants)

	render(c, http.StatusOK, "tenants_list.html", gin.H{
		"tenants": tenants,
	})
}

func ShowTenantDetail(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.String(http.StatusBadRequest, "Некорректный ID организации")
		return
	}

	tenant, err := loadTenantTree(id)
	if err != nil {
		c.String(http.StatusNotFound, "Организация не найдена")
		return
	}

	render(c, http.StatusOK, "tenant_detail.html", gin.H{
		"tenant":       tenant,
		"root":         tenant.RootParent(),
		"ancestors":    tenant.AllAncestors(),
		"subsidiaries": tenant.AllSubsidiaries(),
		"depth":        tenant.HierarchyDepth(),
	})
}

// loadTenantTree загружает тенант вместе с цепочкой родителей и всеми
// потомками, чтобы методы обхода работали по памяти.
func loadTenantTree(id uint) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := database.DB.First(&tenant, id).Error; err != nil {
		return nil, err
	}

	// родители до корня
	current := &tenant
	for current.ParentID != nil {
		var parent models.Tenant
		if err := database.DB.First(&parent, *current.ParentID).Error; err != nil {
			break
		}
		current.Parent = &parent
		current = &parent
	}

	// потомки рекурсивно
	loadSubsidiaries(&tenant)

	return &tenant, nil
}

func loadSubsidiaries(t *models.Tenant) {
	var subs []*models.Tenant
	if err := database.DB.Where("parent_id = ?", t.ID).Find(&subs).Error; err != nil {
		return
	}
	t.Subsidiaries = subs
	for _, sub := range subs {
		loadSubsidiaries(sub)
	}
}

func CreateTenant(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	if len(name) < 2 {
		c.String(http.StatusBadRequest, "Название организации должно быть не короче 2 символов")
		return
	}

	tenant := models.Tenant{
		Name:              name,
		IsCorporateParent: formBool(c, "is_corporate_parent"),
	}

	if pid := formInt(c, "parent_id", 0); pid > 0 {
		var parent models.Tenant
		if err := database.DB.First(&parent, pid).Error; err != nil {
			c.String(http.StatusNotFound, "Родительская организация не найдена")
			return
		}
		tenant.ParentID = &parent.ID
	}

	if err := database.DB.Create(&tenant).Error; err != nil {
		c.String(http.StatusInternalServerError, "Ошибка сохранения организации")
		return
	}

	audit(c, "tenant", tenant.ID, "create", "Создана организация: "+tenant.Name)
	c.Redirect(http.StatusFound, "/tenants")
}
