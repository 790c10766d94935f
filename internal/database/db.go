package database

import (
	"log"
	"time"

	"isms-admin/internal/config"
	"isms-admin/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		log.Printf("trying to connect to DB (attempt %d/%d)...", i, maxAttempts)

		DB, err = gorm.Open(postgres.Open(cfg.DBDSN), &gorm.Config{})
		if err == nil {
			log.Println("connected to DB successfully")
			break
		}

		log.Printf("failed to connect to DB: %v", err)
		time.Sleep(2 * time.Second)
	}

	if err != nil {
		log.Fatalf("failed to connect to db after %d attempts: %v", maxAttempts, err)
	}

	// миграции
	err = DB.AutoMigrate(
		&models.Tenant{},
		&models.User{},
		&models.CustomRole{},
		&models.Permission{},
		&models.Asset{},
		&models.Risk{},
		&models.Control{},
		&models.Training{},
		&models.Incident{},
		&models.Supplier{},
		&models.BusinessContinuityPlan{},
		&models.BCExercise{},
		&models.ISMSObjective{},
		&models.InterestedParty{},
		&models.ChangeRequest{},
		&models.CorporateGovernance{},
		&models.ComplianceMapping{},
		&models.MappingGapItem{},
		&models.RiskAppetite{},
		&models.RiskTreatmentPlan{},
		&models.Patch{},
		&models.Document{},
		&models.AuditLog{},
	)
	if err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seedRootTenant()
	createInitialAdmin(cfg.AdminUsername, cfg.AdminPassword)
	seedSystemRoles()
}

// корневой тенант, чтобы было куда прикреплять пользователей и сущности
func seedRootTenant() {
	var count int64
	if err := DB.Model(&models.Tenant{}).Count(&count).Error; err != nil {
		log.Printf("failed to check tenants: %v", err)
		return
	}
	if count > 0 {
		return
	}

	root := models.Tenant{
		Name:              "Head Office",
		IsCorporateParent: true,
	}
	if err := DB.Create(&root).Error; err != nil {
		log.Printf("failed to create root tenant: %v", err)
		return
	}
	log.Printf("created root tenant: %s", root.Name)
}

// первоначальный админ только из кода/конфига; его username фиксируется
// для InitialAdminService
func createInitialAdmin(username, password string) {
	setInitialAdminUsername(username)

	var count int64
	if err := DB.Model(&models.User{}).
		Where("role IN ?", []models.UserRole{models.RoleAdmin, models.RoleSuperAdmin}).
		Count(&count).Error; err != nil {
		log.Printf("failed to check admin user: %v", err)
		return
	}
	if count > 0 {
		// админ уже есть — ничего не делаем
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("failed to hash initial admin password: %v", err)
		return
	}

	admin := models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         models.RoleSuperAdmin,
		Active:       true,
	}

	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("failed to create initial admin: %v", err)
		return
	}

	log.Printf("created initial admin user: %s", username)
}

// системные роли создаются один раз и не редактируются через UI
func seedSystemRoles() {
	type seedRole struct {
		Name        string
		Description string
		Permissions []string
	}

	roles := []seedRole{
		{
			Name:        "Compliance Officer",
			Description: "Просмотр и ведение соответствия требованиям",
			Permissions: []string{"compliance.view", "compliance.edit", "audit.view"},
		},
		{
			Name:        "Security Auditor",
			Description: "Доступ к журналу аудита и мониторингу",
			Permissions: []string{"audit.view", "audit.export", "monitoring.view"},
		},
	}

	for _, r := range roles {
		var count int64
		if err := DB.Model(&models.CustomRole{}).
			Where("name = ?", r.Name).
			Count(&count).Error; err != nil {
			log.Printf("failed to check system role %s: %v", r.Name, err)
			continue
		}
		if count > 0 {
			continue
		}

		role := models.CustomRole{
			Name:        r.Name,
			Description: r.Description,
			IsSystem:    true,
		}
		for _, pname := range r.Permissions {
			var perm models.Permission
			if err := DB.Where("name = ?", pname).
				FirstOrCreate(&perm, models.Permission{Name: pname}).Error; err != nil {
				log.Printf("failed to ensure permission %s: %v", pname, err)
				continue
			}
			role.Permissions = append(role.Permissions, perm)
		}

		if err := DB.Create(&role).Error; err != nil {
			log.Printf("failed to create system role %s: %v", r.Name, err)
			continue
		}
		log.Printf("created system role: %s", r.Name)
	}
}
