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

// ПЛАНЫ НЕПРЕРЫВНОСТИ

func ListBCPlans(c *gin.Context) {
	now := time.Now()

	var plans []models.BusinessContinuityPlan
	database.DB.Preload("Tenant").Order("name asc").Find(&plans)

	readiness := map[uint]int{}
	testOverdue := map[uint]bool{}
	for i := range plans {
		readiness[plans[i].ID] = plans[i].ReadinessScore(now)
		testOverdue[plans[i].ID] = plans[i].TestOverdue(now)
	}

	render(c, http.StatusOK, "bcp_list.html", gin.H{
		"plans":       plans,
		"readiness":   readiness,
		"testOverdue": testOverdue,
	})
}

func ShowBCPlanDetail(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.String(http.StatusBadRequest, "Некорректный ID плана")
		return
	}

	var plan models.BusinessContinuityPlan
	if err := database.DB.
		Preload("Tenant").
		Preload("Exercises").
		First(&plan, id).Error; err != nil {
		c.String(http.StatusNotFound, "План не найден")
		return
	}

	if !middleware.Can(c, &plan, authz.ActionView, authz.EntityVoter{}) {
		return
	}

	now := time.Now()
	exerciseScores := map[uint]int{}
	for i := range plan.Exercises {
		exerciseScores[plan.Exercises[i].ID] = plan.Exercises[i].OutcomeScore()
	}

	render(c, http.StatusOK, "bcp_detail.html", gin.H{
		"plan":           plan,
		"readiness":      plan.ReadinessScore(now),
		"missingFields":  plan.MissingFields(),
		"testOverdue":    plan.TestOverdue(now),
		"exerciseScores": exerciseScores,
	})
}

// СОЗДАНИЕ/РЕДАКТИРОВАНИЕ ПЛАНА

func ShowNewBCPlan(c *gin.Context) {
	render(c, http.StatusOK, "bcp_new.html", gin.H{"error": ""})
}

func CreateBCPlan(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	if len(name) < 3 {
		render(c, http.StatusBadRequest, "bcp_new.html", gin.H{
			"error": "Название плана должно быть не короче 3 символов",
		})
		return
	}

	tenantID := resolveTenantID(c)
	if tenantID == nil {
		render(c, http.StatusBadRequest, "bcp_new.html", gin.H{
			"error": "Не определена организация плана",
		})
		return
	}

	plan := models.BusinessContinuityPlan{
		TenantID:           tenantID,
		Name:               name,
		Status:             models.BCPDraft,
		ActivationCriteria: strings.TrimSpace(c.PostForm("activation_criteria")),
		RecoveryProcedures: strings.TrimSpace(c.PostForm("recovery_procedures")),
		CommunicationPlan:  strings.TrimSpace(c.PostForm("communication_plan")),
		ResponseTeam:       strings.TrimSpace(c.PostForm("response_team")),
		LastTested:         formDate(c, "last_tested"),
		LastReviewDate:     formDate(c, "last_review_date"),
	}

	if err := database.DB.Create(&plan).Error; err != nil {
		render(c, http.StatusInternalServerError, "bcp_new.html", gin.H{
			"error": "Ошибка сохранения плана в БД",
		})
		return
	}

	audit(c, "bcp", plan.ID, "create", "Создан план непрерывности: "+plan.Name)
	c.Redirect(http.StatusFound, "/bcp")
}

func UpdateBCPlan(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.String(http.StatusBadRequest, "Некорректный ID плана")
		return
	}

	var plan models.BusinessContinuityPlan
	if err := database.DB.First(&plan, id).Error; err != nil {
		c.String(http.StatusNotFound, "План не найден")
		return
	}

	if !middleware.Can(c, &plan, authz.ActionEdit, authz.EntityVoter{}) {
		return
	}

	name := strings.TrimSpace(c.PostForm("name"))
	if len(name) < 3 {
		c.String(http.StatusBadRequest, "Название плана должно быть не короче 3 символов")
		return
	}

	status := models.BCPStatus(c.PostForm("status"))
	switch status {
	case models.BCPDraft, models.BCPActive, models.BCPArchived:
	default:
		c.String(http.StatusBadRequest, "Неверный статус плана")
		return
	}

	plan.Name = name
	plan.Status = status
	plan.ActivationCriteria = strings.TrimSpace(c.PostForm("activation_criteria"))
	plan.RecoveryProcedures = strings.TrimSpace(c.PostForm("recovery_procedures"))
	plan.CommunicationPlan = strings.TrimSpace(c.PostForm("communication_plan"))
	plan.ResponseTeam = strings.TrimSpace(c.PostForm("response_team"))
	plan.LastTested = formDate(c, "last_tested")
	plan.LastReviewDate = formDate(c, "last_review_date")

	if err := database.DB.Save(&plan).Error; err != nil {
		c.String(http.StatusInternalServerError, "Ошибка сохранения плана в БД")
		return
	}

	audit(c, "bcp", plan.ID, "update", "Изменён план непрерывности: "+plan.Name)
	c.Redirect(http.StatusFound, "/bcp")
}

// УЧЕНИЯ ПО ПЛАНУ

func AddBCExercise(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.String(http.StatusBadRequest, "Некорректный ID плана")
		return
	}

	var plan models.BusinessContinuityPlan
	if err := database.DB.First(&plan, id).Error; err != nil {
		c.String(http.StatusNotFound, "План не найден")
		return
	}

	if !middleware.Can(c, &plan, authz.ActionEdit, authz.EntityVoter{}) {
		return
	}

	title := strings.TrimSpace(c.PostForm("title"))
	if len(title) < 3 {
		c.String(http.StatusBadRequest, "Название учения должно быть не короче 3 символов")
		return
	}

	exercise := models.BCExercise{
		PlanID:        plan.ID,
		Title:         title,
		ExerciseType:  strings.TrimSpace(c.PostForm("exercise_type")),
		Status:        models.ExerciseScheduled,
		ScheduledDate: formDate(c, "scheduled_date"),
	}

	if err := database.DB.Create(&exercise).Error; err != nil {
		c.String(http.StatusInternalServerError, "Ошибка сохранения учения")
		return
	}

	audit(c, "bc_exercise", exercise.ID, "create", "Запланировано учение: "+exercise.Title)
	c.Redirect(http.StatusFound, "/bcp/"+c.Param("id"))
}

func CompleteBCExercise(c *gin.Context) {
	id, ok := parseID(c, "exercise_id")
	if !ok {
		c.String(http.StatusBadRequest, "Некорректный ID учения")
		return
	}

	var exercise models.BCExercise
	if err := database.DB.First(&exercise, id).Error; err != nil {
		c.String(http.StatusNotFound, "Учение не найдено")
		return
	}

	var plan models.BusinessContinuityPlan
	if err := database.DB.First(&plan, exercise.PlanID).Error; err != nil {
		c.String(http.StatusNotFound, "План не найден")
		return
	}

	if !middleware.Can(c, &plan, authz.ActionEdit, authz.EntityVoter{}) {
		return
	}

	result := models.ExerciseResult(c.PostForm("result"))
	switch result {
	case models.ExerciseSuccessful, models.ExercisePartial, models.ExerciseFailed:
	default:
		c.String(http.StatusBadRequest, "Неверный результат учения")
		return
	}

	exercise.Status = models.ExerciseCompleted
	exercise.Result = result
	exercise.OpenFindings = formInt(c, "open_findings", 0)

	if err := database.DB.Save(&exercise).Error; err != nil {
		c.String(http.StatusInternalServerError, "Ошибка сохранения учения")
		return
	}

	// завершённое учение обновляет дату последнего тестирования плана
	now := time.Now()
	plan.LastTested = &now
	_ = database.DB.Save(&plan).Error

	audit(c, "bc_exercise", exercise.ID, "complete", "Завершено учение: "+exercise.Title)
	c.Redirect(http.StatusFound, "/bcp")
}
