package handlers

import (
	"strings"

	"isms-admin/internal/middleware"

	"github.com/gin-gonic/gin"
)

// render — обёртка над c.HTML: во все шаблоны прокидывается текущий
// пользователь и признак администратора, на который завязана навигация
// страниц с voter-проверками.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if user := middleware.CurrentUser(c); user != nil {
		data["CurrentUser"] = user
		data["CurrentUsername"] = user.Username
		data["CurrentUserRole"] = user.Role
		data["IsAdmin"] = user.IsAdmin()
	}

	c.HTML(status, tmpl, data)
}

// MaskEmail скрывает локальную часть адреса: "admin@isms.local" → "ad***@isms.local".
// Строка без "@" маскируется целиком.
func MaskEmail(email string) string {
	at := strings.Index(email, "@")
	if at <= 0 {
		return "***"
	}

	prefix := []rune(email[:at])
	domain := email[at:]
	if len(prefix) <= 2 {
		return string(prefix) + "***" + domain
	}
	return string(prefix[:2]) + "***" + domain
}
