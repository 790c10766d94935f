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

// ЦЕЛИ СМИБ

func ListObjectives(c *gin.Context) {
	now := time.Now()

	var objectives []models.ISMSObjective
	database.DB.Preload("Tenant").Order("target_date asc").Find(&objectives)

	statuses := map[uint]models.ObjectiveStatus{}
	for i := range objectives {
		statuses[objectives[i].ID] = objectives[i].ProgressStatus(now)
	}

	render(c, http.StatusOK, "objective_list.html", gin.H{
		"objectives": objectives,
		"statuses":   statuses,
	})
}

func CreateObjective(c *gin.Context) {
	title := strings.TrimSpace(c.PostForm("title"))
	if len(title) < 3 {
		c.String(http.StatusBadRequest, "Название цели должно быть не короче 3 символов")
		return
	}

	objective := models.ISMSObjective{
		TenantID:    resolveTenantID(c),
		Title:       title,
		Description: strings.TrimSpace(c.PostForm("description")),
		StartDate:   formDate(c, "start_date"),
		TargetDate:  formDate(c, "target_date"),
	}
	objective.SetProgress(formInt(c, "progress", 0))

	if err := database.DB.Create(&objective).Error; err != nil {
		c.String(http.StatusInternalServerError, "Ошибка сохранения цели в БД")
		return
	}

	audit(c, "objective", objective.ID, "create", "Создана цель СМИБ: "+objective.Title)
	c.Redirect(http.StatusFound, "/objectives")
}

func UpdateObjectiveProgress(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.String(http.StatusBadRequest, "Некорректный ID цели")
		return
	}

	var objective models.ISMSObjective
	if err := database.DB.First(&objective, id).Error; err != nil {
		c.String(http.StatusNotFound, "Цель не найдена")
		return
	}

	if !middleware.Can(c, &objective, authz.ActionEdit, authz.EntityVoter{}) {
		return
	}

	objective.SetProgress(formInt(c, "progress", objective.Progress))
	if err := database.DB.Save(&objective).Error; err != nil {
		c.String(http.StatusInternalServerError, "Ошибка сохранения цели в БД")
		return
	}

	audit(c, "objective", objective.ID, "update", "Обновлён прогресс цели: "+objective.Title)
	c.Redirect(http.StatusFound, "/objectives")
}

// ЗАИНТЕРЕСОВАННЫЕ СТОРОНЫ

func ListInterestedParties(c *gin.Context) {
	var parties []models.InterestedParty
	database.DB.Preload("Tenant").Order("name asc").Find(&parties)

	engagement := map[uint]int{}
	strategies := map[uint]models.EngagementStrategy{}
	for i := range parties {
		engagement[parties[i].ID] = parties[i].EngagementScore()
		strategies[parties[i].ID] = parties[i].Strategy()
	}

	render(c, http.StatusOK, "party_list.html", gin.H{
		"parties":    parties,
		"engagement": engagement,
		"strategies": strategies,
	})
}

func CreateInterestedParty(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	if len(name) < 2 {
		c.String(http.StatusBadRequest, "Название стороны должно быть не короче 2 символов")
		return
	}

	party := models.InterestedParty{
		TenantID:  resolveTenantID(c),
		Name:      name,
		PartyType: strings.TrimSpace(c.PostForm("party_type")),
		Influence: formRating(c, "influence"),
		Interest:  formRating(c, "interest"),
	}

	if err := database.DB.Create(&party).Error; err != nil {
		c.String(http.StatusInternalServerError, "Ошибка сохранения стороны в БД")
		return
	}

	audit(c, "interested_party", party.ID, "create", "Добавлена заинтересованная сторона: "+party.Name)
	c.Redirect(http.StatusFound, "/parties")
}

// ЗАПРОСЫ НА ИЗМЕНЕНИЯ

func ListChangeRequests(c *gin.Context) {
	var changes []models.ChangeRequest
	database.DB.Preload("Tenant").Order("created_at desc").Find(&changes)

	classes := map[uint]models.ChangeRiskClass{}
	needsCAB := map[uint]bool{}
	for i := range changes {
		classes[changes[i].ID] = changes[i].RiskClassification()
		needsCAB[changes[i].ID] = changes[i].RequiresCAB()
	}

	render(c, http.StatusOK, "change_list.html", gin.H{
		"changes":  changes,
		"classes":  classes,
		"needsCAB": needsCAB,
	})
}

func CreateChangeRequest(c *gin.Context) {
	title := strings.TrimSpace(c.PostForm("title"))
	if len(title) < 3 {
		c.String(http.StatusBadRequest, "Название изменения должно быть не короче 3 символов")
		return
	}

	changeType := models.ChangeType(c.PostForm("change_type"))
	switch changeType {
	case models.ChangeStandard, models.ChangeNormal, models.ChangeEmergency:
	default:
		c.String(http.StatusBadRequest, "Неверный тип изменения")
		return
	}

	change := models.ChangeRequest{
		TenantID:   resolveTenantID(c),
		Title:      title,
		ChangeType: changeType,
		Status:     "draft",
		Impact:     formRating(c, "impact"),
		Urgency:    formRating(c, "urgency"),
	}

	if err := database.DB.Create(&change).Error; err != nil {
		c.String(http.StatusInternalServerError, "Ошибка сохранения изменения в БД")
		return
	}

	audit(c, "change_request", change.ID, "create", "Создан запрос на изменение: "+change.Title)
	c.Redirect(http.StatusFound, "/changes")
}

// КОРПОРАТИВНОЕ УПРАВЛЕНИЕ

func ShowGovernance(c *gin.Context) {
	now := time.Now()

	var frameworks []models.CorporateGovernance
	database.DB.Preload("Tenant").Find(&frameworks)

	oversight := map[uint]int{}
	for i := range frameworks {
		oversight[frameworks[i].ID] = frameworks[i].OversightScore(now)
	}

	render(c, http.StatusOK, "governance.html", gin.H{
		"frameworks": frameworks,
		"oversight":  oversight,
	})
}

func SaveGovernance(c *gin.Context) {
	tenantID := resolveTenantID(c)
	if tenantID == nil {
		c.String(http.StatusBadRequest, "Не определена организация")
		return
	}

	// на организацию — одна рамка управления
	var framework models.CorporateGovernance
	database.DB.Where("tenant_id = ?", *tenantID).FirstOrInit(&framework)

	framework.TenantID = tenantID
	framework.CharterDocument = strings.TrimSpace(c.PostForm("charter_document"))
	framework.ReviewCadenceMonths = formInt(c, "review_cadence_months", 0)
	framework.ResponsibleOwner = strings.TrimSpace(c.PostForm("responsible_owner"))
	framework.LastReviewDate = formDate(c, "last_review_date")

	if err := database.DB.Save(&framework).Error; err != nil {
		c.String(http.StatusInternalServerError, "Ошибка сохранения рамки управления")
		return
	}

	audit(c, "governance", framework.ID, "update", "Обновлена рамка корпоративного управления")
	c.Redirect(http.StatusFound, "/governance")
}

// ПЛАНЫ ОБРАБОТКИ РИСКОВ

func AddTreatmentPlan(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.String(http.StatusBadRequest, "Некорректный ID риска")
		return
	}

	var risk models.Risk
	if err := database.DB.First(&risk, id).Error; err != nil {
		c.String(http.StatusNotFound, "Риск не найден")
		return
	}

	if !middleware.Can(c, &risk, authz.ActionEdit, authz.RiskVoter{}) {
		return
	}

	title := strings.TrimSpace(c.PostForm("title"))
	if len(title) < 3 {
		c.String(http.StatusBadRequest, "Название плана должно быть не короче 3 символов")
		return
	}

	plan := models.RiskTreatmentPlan{
		RiskID:            risk.ID,
		Title:             title,
		Strategy:          strings.TrimSpace(c.PostForm("strategy")),
		TotalMeasures:     formInt(c, "total_measures", 0),
		CompletedMeasures: formInt(c, "completed_measures", 0),
		DueDate:           formDate(c, "due_date"),
	}

	if err := database.DB.Create(&plan).Error; err != nil {
		c.String(http.StatusInternalServerError, "Ошибка сохранения плана обработки")
		return
	}

	audit(c, "treatment_plan", plan.ID, "create", "Создан план обработки риска: "+plan.Title)
	c.Redirect(http.StatusFound, "/risks/"+c.Param("id"))
}

func ListTreatmentPlans(c *gin.Context) {
	now := time.Now()

	var plans []models.RiskTreatmentPlan
	database.DB.Preload("Risk").Order("due_date asc").Find(&plans)

	completion := map[uint]int{}
	statuses := map[uint]models.TreatmentStatus{}
	overdue := map[uint]bool{}
	for i := range plans {
		completion[plans[i].ID] = plans[i].CompletionPercent()
		statuses[plans[i].ID] = plans[i].DerivedStatus()
		overdue[plans[i].ID] = plans[i].IsOverdue(now)
	}

	render(c, http.StatusOK, "treatment_list.html", gin.H{
		"plans":      plans,
		"completion": completion,
		"statuses":   statuses,
		"overdue":    overdue,
	})
}

// ПАТЧИ

func ListPatches(c *gin.Context) {
	now := time.Now()

	var patches []models.Patch
	database.DB.Preload("Asset").Order("released_at asc").Find(&patches)

	urgencies := map[uint]models.PatchUrgency{}
	overdue := map[uint]bool{}
	for i := range patches {
		urgencies[patches[i].ID] = patches[i].Urgency()
		overdue[patches[i].ID] = patches[i].IsOverdue(now)
	}

	render(c, http.StatusOK, "patch_list.html", gin.H{
		"patches":   patches,
		"urgencies": urgencies,
		"overdue":   overdue,
	})
}

func CreatePatch(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	if len(name) < 3 {
		c.String(http.StatusBadRequest, "Название патча должно быть не короче 3 символов")
		return
	}

	patch := models.Patch{
		TenantID:   resolveTenantID(c),
		Name:       name,
		Severity:   strings.TrimSpace(c.PostForm("severity")),
		Status:     models.PatchPending,
		ReleasedAt: formDate(c, "released_at"),
	}
	if assetID := formInt(c, "asset_id", 0); assetID > 0 {
		id := uint(assetID)
		patch.AssetID = &id
	}

	if err := database.DB.Create(&patch).Error; err != nil {
		c.String(http.StatusInternalServerError, "Ошибка сохранения патча в БД")
		return
	}

	audit(c, "patch", patch.ID, "create", "Зарегистрирован патч: "+patch.Name)
	c.Redirect(http.StatusFound, "/patches")
}

func UpdatePatchStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.String(http.StatusBadRequest, "Некорректный ID патча")
		return
	}

	var patch models.Patch
	if err := database.DB.First(&patch, id).Error; err != nil {
		c.String(http.StatusNotFound, "Патч не найден")
		return
	}

	if !middleware.Can(c, &patch, authz.ActionEdit, authz.EntityVoter{}) {
		return
	}

	status := models.PatchStatus(c.PostForm("status"))
	switch status {
	case models.PatchPending, models.PatchApproved, models.PatchInstalled, models.PatchRejected:
	default:
		c.String(http.StatusBadRequest, "Неверный статус патча")
		return
	}

	patch.Status = status
	if err := database.DB.Save(&patch).Error; err != nil {
		c.String(http.StatusInternalServerError, "Ошибка сохранения патча в БД")
		return
	}

	audit(c, "patch", patch.ID, "status", "Изменён статус патча: "+patch.Name)
	c.Redirect(http.StatusFound, "/patches")
}
