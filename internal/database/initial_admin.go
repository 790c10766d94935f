package database

import "isms-admin/internal/models"

// username первоначального админа фиксируется при сидировании
var initialAdminUsername string

func setInitialAdminUsername(username string) {
	initialAdminUsername = username
}

// InitialAdminService отвечает на единственный вопрос: является ли
// пользователь первоначальным администратором (его нельзя удалить).
type InitialAdminService struct{}

func (InitialAdminService) IsInitialAdmin(u *models.User) bool {
	if u == nil || initialAdminUsername == "" {
		return false
	}
	return u.Username == initialAdminUsername
}
