package handlers

import (
	"net/http"

	"isms-admin/internal/authz"
	"isms-admin/internal/database"
	"isms-admin/internal/middleware"
	"isms-admin/internal/models"

	"github.com/gin-gonic/gin"
)

func ListAuditLogs(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	// журнал видят администраторы и пользователи с правом audit.view
	if !middleware.Can(c, nil, "audit.view", authz.PermissionVoter{}) {
		return
	}

	var logs []models.AuditLog
	database.DB.
		Preload("User").
		Order("created_at desc").
		Limit(200).
		Find(&logs)

	// не-администратор видит журнал с замаскированными учётными записями
	if !user.IsAdmin() {
		for i := range logs {
			logs[i].User.Username = MaskEmail(logs[i].User.Username)
		}
	}

	render(c, http.StatusOK, "audit_list.html", gin.H{
		"logs": logs,
	})
}
