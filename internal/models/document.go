package models

import "gorm.io/gorm"

// Document — документ СМИБ (политика, процедура, отчёт), загруженный пользователем.
type Document struct {
	gorm.Model
	Title    string `gorm:"size:255;not null"`
	Category string `gorm:"size:100"`
	FilePath string `gorm:"size:512"`

	UploaderID uint
	Uploader   *User
}
