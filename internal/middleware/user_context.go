package middleware

import (
	"isms-admin/internal/database"
	"isms-admin/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func InjectUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		if uidRaw := sess.Get("user_id"); uidRaw != nil {
			if uid, ok := uidRaw.(uint); ok && uid > 0 {
				var user models.User
				if err := database.DB.
					Preload("Tenant").
					Preload("CustomRoles.Permissions").
					First(&user, uid).Error; err == nil {
					c.Set("CurrentUser", user)
				}
			}
		}

		c.Next()
	}
}

// CurrentUser достаёт пользователя, положенного InjectUser.
func CurrentUser(c *gin.Context) *models.User {
	if uVal, ok := c.Get("CurrentUser"); ok {
		switch u := uVal.(type) {
		case models.User:
			return &u
		case *models.User:
			return u
		}
	}
	return nil
}
