package server

import (
	"html/template"
	"net/http"

	"isms-admin/internal/config"
	"isms-admin/internal/handlers"
	"isms-admin/internal/middleware"
	"isms-admin/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Static("/static", "./web/static")

	r.SetFuncMap(template.FuncMap{
		"eq":        func(a, b interface{}) bool { return a == b },
		"maskEmail": handlers.MaskEmail,
	})
	r.LoadHTMLGlob("web/templates/*.html")

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("isms_session", store))

	r.Use(middleware.InjectUser())

	// ГЛАВНАЯ
	r.GET("/", handlers.IndexPage)

	// AUTH
	r.GET("/register", handlers.ShowRegister)
	r.POST("/register", handlers.Register)
	r.GET("/login", handlers.ShowLogin)
	r.POST("/login", handlers.Login)
	r.GET("/logout", handlers.Logout)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())

	auth.GET("/dashboard", handlers.Dashboard)

	// АКТИВЫ
	auth.GET("/assets", handlers.ListAssets)
	auth.GET("/assets/new",
		middleware.RequireRole(models.RoleAdmin, models.RoleAnalyst),
		handlers.ShowNewAsset,
	)
	auth.POST("/assets/new",
		middleware.RequireRole(models.RoleAdmin, models.RoleAnalyst),
		handlers.CreateAsset,
	)
	auth.GET("/assets/:id", handlers.ShowAssetDetail)
	auth.GET("/assets/:id/edit", handlers.ShowEditAsset)
	auth.POST("/assets/:id/edit", handlers.UpdateAsset)
	auth.POST("/assets/:id/delete", handlers.DeleteAsset)

	// РИСКИ
	auth.GET("/risks", handlers.ListRisks)
	auth.GET("/risks/new",
		middleware.RequireRole(models.RoleAdmin, models.RoleAnalyst),
		handlers.ShowNewRisk,
	)
	auth.POST("/risks/new",
		middleware.RequireRole(models.RoleAdmin, models.RoleAnalyst),
		handlers.CreateRisk,
	)
	auth.GET("/risks/:id", handlers.ShowRiskDetail)
	auth.GET("/risks/:id/edit", handlers.ShowEditRisk)
	auth.POST("/risks/:id/edit", handlers.UpdateRisk)
	auth.POST("/risks/:id/delete", handlers.DeleteRisk)

	// КОНТРОЛИ
	auth.GET("/controls", handlers.ListControls)
	auth.GET("/controls/new",
		middleware.RequireRole(models.RoleAdmin, models.RoleAnalyst),
		handlers.ShowNewControl,
	)
	auth.POST("/controls/new",
		middleware.RequireRole(models.RoleAdmin, models.RoleAnalyst),
		handlers.CreateControl,
	)
	auth.GET("/controls/:id", handlers.ShowControlDetail)
	auth.GET("/controls/:id/edit", handlers.ShowEditControl)
	auth.POST("/controls/:id/edit", handlers.UpdateControl)
	auth.POST("/controls/:id/assets/add", handlers.AddControlAsset)
	auth.POST("/controls/:id/trainings/add", handlers.AddControlTraining)

	// ИНЦИДЕНТЫ
	auth.GET("/incidents", handlers.ListIncidents)
	auth.GET("/incidents/new", handlers.ShowNewIncident)
	auth.POST("/incidents/new", handlers.CreateIncident)
	auth.POST("/incidents/:id/status", handlers.UpdateIncidentStatus)
	auth.POST("/incidents/:id/delete", handlers.DeleteIncident)

	// ПОСТАВЩИКИ
	auth.GET("/suppliers", handlers.ListSuppliers)
	auth.GET("/suppliers/new",
		middleware.RequireRole(models.RoleAdmin, models.RoleAnalyst),
		handlers.ShowNewSupplier,
	)
	auth.POST("/suppliers/new",
		middleware.RequireRole(models.RoleAdmin, models.RoleAnalyst),
		handlers.CreateSupplier,
	)
	auth.GET("/suppliers/:id/edit", handlers.ShowEditSupplier)
	auth.POST("/suppliers/:id/edit", handlers.UpdateSupplier)

	// ПЛАНЫ НЕПРЕРЫВНОСТИ
	auth.GET("/bcp", handlers.ListBCPlans)
	auth.GET("/bcp/new",
		middleware.RequireRole(models.RoleAdmin, models.RoleAnalyst),
		handlers.ShowNewBCPlan,
	)
	auth.POST("/bcp/new",
		middleware.RequireRole(models.RoleAdmin, models.RoleAnalyst),
		handlers.CreateBCPlan,
	)
	auth.GET("/bcp/:id", handlers.ShowBCPlanDetail)
	auth.POST("/bcp/:id/edit", handlers.UpdateBCPlan)
	auth.POST("/bcp/:id/exercises/add", handlers.AddBCExercise)
	auth.POST("/bcp/exercises/:exercise_id/complete", handlers.CompleteBCExercise)

	// СООТВЕТСТВИЕ
	auth.GET("/compliance", handlers.ListComplianceMappings)
	auth.GET("/compliance/new",
		middleware.RequireRole(models.RoleAdmin, models.RoleAnalyst),
		handlers.ShowNewComplianceMapping,
	)
	auth.POST("/compliance/new",
		middleware.RequireRole(models.RoleAdmin, models.RoleAnalyst),
		handlers.CreateComplianceMapping,
	)
	auth.POST("/compliance/:id/edit", handlers.UpdateComplianceMapping)
	auth.POST("/compliance/:id/gaps/add", handlers.AddGapItem)
	auth.POST("/compliance/gaps/:gap_id/resolve", handlers.ResolveGapItem)

	// АППЕТИТ К РИСКУ
	auth.GET("/appetites", handlers.ListRiskAppetites)
	auth.POST("/appetites/new",
		middleware.RequireRole(models.RoleAdmin),
		handlers.CreateRiskAppetite,
	)

	// ЦЕЛИ, СТОРОНЫ, ИЗМЕНЕНИЯ, УПРАВЛЕНИЕ
	auth.GET("/objectives", handlers.ListObjectives)
	auth.POST("/objectives/new",
		middleware.RequireRole(models.RoleAdmin, models.RoleAnalyst),
		handlers.CreateObjective,
	)
	auth.POST("/objectives/:id/progress", handlers.UpdateObjectiveProgress)

	auth.GET("/parties", handlers.ListInterestedParties)
	auth.POST("/parties/new",
		middleware.RequireRole(models.RoleAdmin, models.RoleAnalyst),
		handlers.CreateInterestedParty,
	)

	auth.GET("/changes", handlers.ListChangeRequests)
	auth.POST("/changes/new",
		middleware.RequireRole(models.RoleAdmin, models.RoleAnalyst),
		handlers.CreateChangeRequest,
	)

	auth.GET("/governance", handlers.ShowGovernance)
	auth.POST("/governance",
		middleware.RequireRole(models.RoleAdmin),
		handlers.SaveGovernance,
	)

	// ОБРАБОТКА РИСКОВ И ПАТЧИ
	auth.GET("/treatments", handlers.ListTreatmentPlans)
	auth.POST("/risks/:id/treatments/add", handlers.AddTreatmentPlan)

	auth.GET("/patches", handlers.ListPatches)
	auth.POST("/patches/new",
		middleware.RequireRole(models.RoleAdmin, models.RoleAnalyst),
		handlers.CreatePatch,
	)
	auth.POST("/patches/:id/status", handlers.UpdatePatchStatus)

	// ОРГАНИЗАЦИИ
	auth.GET("/tenants", handlers.ListTenants)
	auth.GET("/tenants/:id", handlers.ShowTenantDetail)
	auth.POST("/tenants/new",
		middleware.RequireRole(models.RoleAdmin),
		handlers.CreateTenant,
	)

	// ДОКУМЕНТЫ
	auth.GET("/documents", handlers.ListDocuments)
	auth.POST("/documents/new", handlers.CreateDocument)
	auth.POST("/documents/:id/edit", handlers.UpdateDocument)
	auth.POST("/documents/:id/delete", handlers.DeleteDocument)

	// ПОЛЬЗОВАТЕЛИ И РОЛИ
	auth.GET("/users",
		middleware.RequireRole(models.RoleAdmin),
		handlers.ListUsers,
	)
	auth.POST("/users/:id/edit", handlers.UpdateUser)
	auth.POST("/users/:id/delete", handlers.DeleteUser)
	auth.POST("/users/:id/roles/assign", handlers.AssignUserRole)

	auth.GET("/roles", handlers.ListRoles)
	auth.POST("/roles/new", handlers.CreateRole)
	auth.POST("/roles/:id/delete", handlers.DeleteRole)

	// АУДИТ
	auth.GET("/audit", handlers.ListAuditLogs)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
