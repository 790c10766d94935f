package handlers

import (
	"net/http"
	"strings"

	"isms-admin/internal/authz"
	"isms-admin/internal/database"
	"isms-admin/internal/middleware"
	"isms-admin/internal/models"

	"github.com/gin-gonic/gin"
)

// ДОКУМЕНТЫ СМИБ

func ListDocuments(c *gin.Context) {
	actor := authz.NewActor(middleware.CurrentUser(c))

	var documents []models.Document
	database.DB.Preload("Uploader").Order("title asc").Find(&documents)

	// показываем только то, что пользователю разрешено видеть
	visible := make([]models.Document, 0, len(documents))
	voter := authz.DocumentVoter{}
	for i := range documents {
		if voter.Vote(actor, &documents[i], authz.ActionView) == authz.Grant {
			visible = append(visible, documents[i])
		}
	}

	render(c, http.StatusOK, "documents_list.html", gin.H{
		"documents": visible,
	})
}

func CreateDocument(c *gin.Context) {
	title := strings.TrimSpace(c.PostForm("title"))
	if len(title) < 3 {
		c.String(http.StatusBadRequest, "Название документа должно быть не короче 3 символов")
		return
	}

	user := middleware.CurrentUser(c)
	if user == nil {
		c.String(http.StatusForbidden, "access denied")
		return
	}

	document := models.Document{
		Title:      title,
		Category:   strings.TrimSpace(c.PostForm("category")),
		FilePath:   strings.TrimSpace(c.PostForm("file_path")),
		UploaderID: user.ID,
	}

	if err := database.DB.Create(&document).Error; err != nil {
		c.String(http.StatusInternalServerError, "Ошибка сохранения документа")
		return
	}

	audit(c, "document", document.ID, "create", "Загружен документ: "+document.Title)
	c.Redirect(http.StatusFound, "/documents")
}

func UpdateDocument(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.String(http.StatusBadRequest, "Некорректный ID документа")
		return
	}

	var document models.Document
	if err := database.DB.Preload("Uploader").First(&document, id).Error; err != nil {
		c.String(http.StatusNotFound, "Документ не найден")
		return
	}

	// править документ может только загрузивший (или администратор)
	if !middleware.Can(c, &document, authz.ActionEdit, authz.DocumentVoter{}) {
		return
	}

	title := strings.TrimSpace(c.PostForm("title"))
	if len(title) < 3 {
		c.String(http.StatusBadRequest, "Название документа должно быть не короче 3 символов")
		return
	}

	document.Title = title
	document.Category = strings.TrimSpace(c.PostForm("category"))

	if err := database.DB.Save(&document).Error; err != nil {
		c.String(http.StatusInternalServerError, "Ошибка сохранения документа")
		return
	}

	audit(c, "document", document.ID, "update", "Изменён документ: "+document.Title)
	c.Redirect(http.StatusFound, "/documents")
}

func DeleteDocument(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.String(http.StatusBadRequest, "Некорректный ID документа")
		return
	}

	var document models.Document
	if err := database.DB.Preload("Uploader").First(&document, id).Error; err != nil {
		c.String(http.StatusNotFound, "Документ не найден")
		return
	}

	if !middleware.Can(c, &document, authz.ActionDelete, authz.DocumentVoter{}) {
		return
	}

	if err := database.DB.Delete(&document).Error; err != nil {
		c.String(http.StatusInternalServerError, "Ошибка удаления документа")
		return
	}

	audit(c, "document", document.ID, "delete", "Удалён документ: "+document.Title)
	c.Redirect(http.StatusFound, "/documents")
}
