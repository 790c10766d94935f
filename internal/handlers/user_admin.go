package handlers

import (
	"net/http"

	"isms-admin/internal/authz"
	"isms-admin/internal/database"
	"isms-admin/internal/middleware"
	"isms-admin/internal/models"

	"github.com/gin-gonic/gin"
)

// УПРАВЛЕНИЕ ПОЛЬЗОВАТЕЛЯМИ

func userVoter() authz.UserVoter {
	return authz.UserVoter{InitialAdmin: database.InitialAdminService{}}
}

func ListUsers(c *gin.Context) {
	var users []models.User
	database.DB.Preload("Tenant").Preload("CustomRoles").Order("username asc").Find(&users)

	render(c, http.StatusOK, "users_list.html", gin.H{
		"users": users,
	})
}

func UpdateUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.String(http.StatusBadRequest, "Некорректный ID пользователя")
		return
	}

	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		c.String(http.StatusNotFound, "Пользователь не найден")
		return
	}

	if !middleware.Can(c, &user, authz.ActionEdit, userVoter()) {
		return
	}

	user.Active = formBool(c, "active")
	if tid := formInt(c, "tenant_id", 0); tid > 0 {
		var tenant models.Tenant
		if err := database.DB.First(&tenant, tid).Error; err != nil {
			c.String(http.StatusNotFound, "Организация не найдена")
			return
		}
		user.TenantID = &tenant.ID
	}

	if err := database.DB.Save(&user).Error; err != nil {
		c.String(http.StatusInternalServerError, "Ошибка сохранения пользователя")
		return
	}

	audit(c, "user", user.ID, "update", "Изменён пользователь: "+user.Username)
	c.Redirect(http.StatusFound, "/users")
}

func DeleteUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.String(http.StatusBadRequest, "Некорректный ID пользователя")
		return
	}

	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		c.String(http.StatusNotFound, "Пользователь не найден")
		return
	}

	// себя и первоначального админа удалить нельзя — решает voter
	if !middleware.Can(c, &user, authz.ActionDelete, userVoter()) {
		return
	}

	if err := database.DB.Delete(&user).Error; err != nil {
		c.String(http.StatusInternalServerError, "Ошибка удаления пользователя")
		return
	}

	audit(c, "user", user.ID, "delete", "Удалён пользователь: "+user.Username)
	c.Redirect(http.StatusFound, "/users")
}

// НАЗНАЧЕНИЕ КАСТОМНЫХ РОЛЕЙ

func AssignUserRole(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.String(http.StatusBadRequest, "Некорректный ID пользователя")
		return
	}

	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		c.String(http.StatusNotFound, "Пользователь не найден")
		return
	}

	if !middleware.Can(c, &user, authz.ActionManageRoles, userVoter()) {
		return
	}

	rid := formInt(c, "role_id", 0)
	var role models.CustomRole
	if err := database.DB.First(&role, rid).Error; err != nil {
		c.String(http.StatusNotFound, "Роль не найдена")
		return
	}

	if err := database.DB.Model(&user).Association("CustomRoles").Append(&role); err != nil {
		c.String(http.StatusInternalServerError, "Ошибка назначения роли")
		return
	}

	audit(c, "user", user.ID, "assign_role", "Назначена роль "+role.Name)
	c.Redirect(http.StatusFound, "/users")
}

// УПРАВЛЕНИЕ РОЛЯМИ

func ListRoles(c *gin.Context) {
	var roles []models.CustomRole
	database.DB.Preload("Permissions").Order("name asc").Find(&roles)

	render(c, http.StatusOK, "roles_list.html", gin.H{
		"roles":             roles,
		"catalog":           authz.Catalog(),
		"entityPermissions": authz.EntityPermissions(),
	})
}

func CreateRole(c *gin.Context) {
	name := c.PostForm("name")
	if len(name) < 3 {
		c.String(http.StatusBadRequest, "Название роли должно быть не короче 3 символов")
		return
	}

	role := models.CustomRole{
		Name:        name,
		Description: c.PostForm("description"),
	}

	if !middleware.Can(c, &role, authz.ActionCreate, authz.RoleVoter{}) {
		return
	}

	for _, pname := range c.PostFormArray("permissions") {
		if !authz.AssignablePermission(pname) {
			continue
		}
		var perm models.Permission
		if err := database.DB.Where("name = ?", pname).
			FirstOrCreate(&perm, models.Permission{Name: pname}).Error; err != nil {
			continue
		}
		role.Permissions = append(role.Permissions, perm)
	}

	if err := database.DB.Create(&role).Error; err != nil {
		c.String(http.StatusInternalServerError, "Ошибка сохранения роли")
		return
	}

	audit(c, "role", role.ID, "create", "Создана роль: "+role.Name)
	c.Redirect(http.StatusFound, "/roles")
}

func DeleteRole(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.String(http.StatusBadRequest, "Некорректный ID роли")
		return
	}

	var role models.CustomRole
	if err := database.DB.First(&role, id).Error; err != nil {
		c.String(http.StatusNotFound, "Роль не найдена")
		return
	}

	// системные роли не удаляются даже администратором
	if !middleware.Can(c, &role, authz.ActionDelete, authz.RoleVoter{}) {
		return
	}

	if err := database.DB.Delete(&role).Error; err != nil {
		c.String(http.StatusInternalServerError, "Ошибка удаления роли")
		return
	}

	audit(c, "role", role.ID, "delete", "Удалена роль: "+role.Name)
	c.Redirect(http.StatusFound, "/roles")
}
