package handlers

import (
	"net/http"
	"strings"
	"time"

	"isms-admin/internal/authz"
	"isms-admin/internal/database"
	"isms-admin/internal/middleware"
	"isms-admin/internal/models"

	"github.com/gin-gonic/gin"
)

// КАТАЛОГ КОНТРОЛЕЙ

func ListControls(c *gin.Context) {
	now := time.Now()

	var controls []models.Control
	database.DB.
		Preload("Tenant").
		Preload("ProtectedAssets.Incidents").
		Preload("Trainings").
		Order("code asc, name asc").
		Find(&controls)

	needsReview := map[uint]bool{}
	trainingState := map[uint]models.ControlTrainingState{}
	for i := range controls {
		needsReview[controls[i].ID] = controls[i].NeedsReview(now)
		trainingState[controls[i].ID] = controls[i].TrainingState(now)
	}

	render(c, http.StatusOK, "controls_list.html", gin.H{
		"controls":      controls,
		"needsReview":   needsReview,
		"trainingState": trainingState,
	})
}

func ShowControlDetail(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.String(http.StatusBadRequest, "Некорректный ID контроля")
		return
	}

	var control models.Control
	if err := database.DB.
		Preload("Tenant").
		Preload("ProtectedAssets.Incidents").
		Preload("Trainings").
		First(&control, id).Error; err != nil {
		c.String(http.StatusNotFound, "Контроль не найден")
		return
	}

	if !middleware.Can(c, &control, authz.ActionView, authz.ControlVoter{}) {
		return
	}

	now := time.Now()
	render(c, http.StatusOK, "control_detail.html", gin.H{
		"control":       control,
		"effectiveness": control.EffectivenessScore(),
		"needsReview":   control.NeedsReview(now),
		"trainingState": control.TrainingState(now),
	})
}

// СОЗДАНИЕ КОНТРОЛЯ

func ShowNewControl(c *gin.Context) {
	render(c, http.StatusOK, "controls_new.html", gin.H{"error": ""})
}

func CreateControl(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	if len(name) < 3 {
		render(c, http.StatusBadRequest, "controls_new.html", gin.H{
			"error": "Название контроля должно быть не короче 3 символов",
		})
		return
	}

	tenantID := resolveTenantID(c)
	if tenantID == nil {
		render(c, http.StatusBadRequest, "controls_new.html", gin.H{
			"error": "Не определена организация контроля",
		})
		return
	}

	impl := formInt(c, "implementation_percentage", 0)
	if impl < 0 {
		impl = 0
	}
	if impl > 100 {
		impl = 100
	}

	control := models.Control{
		TenantID:                 tenantID,
		Code:                     strings.TrimSpace(c.PostForm("code")),
		Name:                     name,
		Description:              strings.TrimSpace(c.PostForm("description")),
		Applicable:               formBool(c, "applicable"),
		ImplementationPercentage: impl,
		NextReviewDate:           formDate(c, "next_review_date"),
	}

	if err := database.DB.Create(&control).Error; err != nil {
		render(c, http.StatusInternalServerError, "controls_new.html", gin.H{
			"error": "Ошибка сохранения контроля в БД",
		})
		return
	}

	audit(c, "control", control.ID, "create", "Создан контроль: "+control.Name)
	c.Redirect(http.StatusFound, "/controls")
}

// РЕДАКТИРОВАНИЕ КОНТРОЛЯ

func ShowEditControl(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.String(http.StatusBadRequest, "Некорректный ID контроля")
		return
	}

	var control models.Control
	if err := database.DB.First(&control, id).Error; err != nil {
		c.String(http.StatusNotFound, "Контроль не найден")
		return
	}

	if !middleware.Can(c, &control, authz.ActionEdit, authz.ControlVoter{}) {
		return
	}

	render(c, http.StatusOK, "controls_edit.html", gin.H{
		"control": control,
		"error":   "",
	})
}

func UpdateControl(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.String(http.StatusBadRequest, "Некорректный ID контроля")
		return
	}

	var control models.Control
	if err := database.DB.First(&control, id).Error; err != nil {
		c.String(http.StatusNotFound, "Контроль не найден")
		return
	}

	if !middleware.Can(c, &control, authz.ActionEdit, authz.ControlVoter{}) {
		return
	}

	name := strings.TrimSpace(c.PostForm("name"))
	if len(name) < 3 {
		c.String(http.StatusBadRequest, "Название контроля должно быть не короче 3 символов")
		return
	}

	impl := formInt(c, "implementation_percentage", control.ImplementationPercentage)
	if impl < 0 {
		impl = 0
	}
	if impl > 100 {
		impl = 100
	}

	control.Code = strings.TrimSpace(c.PostForm("code"))
	control.Name = name
	control.Description = strings.TrimSpace(c.PostForm("description"))
	control.Applicable = formBool(c, "applicable")
	control.ImplementationPercentage = impl
	control.NextReviewDate = formDate(c, "next_review_date")

	if err := database.DB.Save(&control).Error; err != nil {
		c.String(http.StatusInternalServerError, "Ошибка сохранения контроля в БД")
		return
	}

	audit(c, "control", control.ID, "update", "Изменён контроль: "+control.Name)
	c.Redirect(http.StatusFound, "/controls")
}

// ПРИВЯЗКА АКТИВА К КОНТРОЛЮ

func AddControlAsset(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.String(http.StatusBadRequest, "Некорректный ID контроля")
		return
	}

	var control models.Control
	if err := database.DB.First(&control, id).Error; err != nil {
		c.String(http.StatusNotFound, "Контроль не найден")
		return
	}

	if !middleware.Can(c, &control, authz.ActionEdit, authz.ControlVoter{}) {
		return
	}

	aid := formInt(c, "asset_id", 0)
	var asset models.Asset
	if err := database.DB.First(&asset, aid).Error; err != nil {
		c.String(http.StatusNotFound, "Актив не найден")
		return
	}

	// связь поддерживается с обеих сторон одной операцией
	if err := database.DB.Model(&control).Association("ProtectedAssets").Append(&asset); err != nil {
		c.String(http.StatusInternalServerError, "Ошибка привязки актива")
		return
	}

	audit(c, "control", control.ID, "link_asset", "Контроль "+control.Name+" защищает актив "+asset.Name)
	c.Redirect(http.StatusFound, "/controls/"+c.Param("id"))
}

// ОБУЧЕНИЕ ПО КОНТРОЛЮ

func AddControlTraining(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.String(http.StatusBadRequest, "Некорректный ID контроля")
		return
	}

	var control models.Control
	if err := database.DB.First(&control, id).Error; err != nil {
		c.String(http.StatusNotFound, "Контроль не найден")
		return
	}

	if !middleware.Can(c, &control, authz.ActionEdit, authz.ControlVoter{}) {
		return
	}

	title := strings.TrimSpace(c.PostForm("title"))
	if len(title) < 3 {
		c.String(http.StatusBadRequest, "Название обучения должно быть не короче 3 символов")
		return
	}

	status := models.TrainingStatus(c.PostForm("status"))
	switch status {
	case models.TrainingPlanned, models.TrainingInProgress, models.TrainingCompleted:
	default:
		status = models.TrainingPlanned
	}

	training := models.Training{
		ControlID:      control.ID,
		Title:          title,
		Status:         status,
		CompletionDate: formDate(c, "completion_date"),
	}

	if err := database.DB.Create(&training).Error; err != nil {
		c.String(http.StatusInternalServerError, "Ошибка сохранения обучения")
		return
	}

	audit(c, "control", control.ID, "add_training", "Добавлено обучение по контролю: "+training.Title)
	c.Redirect(http.StatusFound, "/controls/"+c.Param("id"))
}
