package middleware

import (
	"net/http"

	"isms-admin/internal/authz"

	"github.com/gin-gonic/gin"
)

// Decide объединяет решения voters для HTTP-слоя: любой Deny запрещает,
// иначе достаточно одного Grant (Abstain голосом не считается).
// Сами voters этой политики не знают.
func Decide(actor *authz.Actor, subject any, attribute string, voters ...authz.Voter) bool {
	granted := false
	for _, v := range voters {
		switch v.Vote(actor, subject, attribute) {
		case authz.Deny:
			return false
		case authz.Grant:
			granted = true
		}
	}
	return granted
}

// Can — проверка доступа внутри обработчика; при отказе пишет 403 и прерывает запрос.
func Can(c *gin.Context, subject any, attribute string, voters ...authz.Voter) bool {
	actor := authz.NewActor(CurrentUser(c))
	if Decide(actor, subject, attribute, voters...) {
		return true
	}
	c.String(http.StatusForbidden, "access denied")
	c.Abort()
	return false
}
