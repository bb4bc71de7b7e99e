package database

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"deptsite/internal/config"
	"deptsite/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=")
}

func open(dsn string) (*gorm.DB, error) {
	gc := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}

	if isPostgresDSN(dsn) {
		return gorm.Open(postgres.Open(dsn), gc)
	}

	// sqlite file path
	if dir := filepath.Dir(dsn); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return gorm.Open(sqlite.Open(dsn), gc)
}

func Init(cfg *config.Config) {
	var err error

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		DB, err = open(cfg.DBDSN)
		if err == nil {
			break
		}
		log.Printf("failed to connect to DB (attempt %d/%d): %v", i, maxAttempts, err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		log.Fatalf("failed to connect to db after %d attempts: %v", maxAttempts, err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.ContactSubmission{},
		&models.FacultyMember{},
	)
	if err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	createDefaultAdmin(cfg)
	seedFaculty()
}

// admin comes from env/config only, never from the registration form
func createDefaultAdmin(cfg *config.Config) {
	name := cfg.AdminName
	if name == "" {
		name = "Department Admin"
	}
	email := cfg.AdminEmail
	if email == "" {
		email = "admin@dept.local"
	}
	password := cfg.AdminPassword
	if password == "" {
		password = "Admin123!"
	}

	var count int64
	if err := DB.Model(&models.User{}).
		Where("role = ?", models.RoleAdmin).
		Count(&count).Error; err != nil {
		log.Printf("failed to check admin user: %v", err)
		return
	}
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("failed to hash default admin password: %v", err)
		return
	}

	admin := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("failed to create default admin: %v", err)
		return
	}

	log.Printf("created default admin user: %s", email)
}

// faculty directory reference data, loaded once into an empty table
func seedFaculty() {
	var count int64
	if err := DB.Model(&models.FacultyMember{}).Count(&count).Error; err != nil {
		log.Printf("failed to check faculty table: %v", err)
		return
	}
	if count > 0 {
		return
	}

	members := []models.FacultyMember{
		{Slug: "a-chen", Name: "Alice Chen", Department: "Computer Science", Title: "Professor"},
		{Slug: "d-okafor", Name: "David Okafor", Department: "Computer Science", Title: "Associate Professor"},
		{Slug: "m-alvarez", Name: "Maria Alvarez", Department: "Information Systems", Title: "Senior Lecturer"},
		{Slug: "p-novak", Name: "Petra Novak", Department: "Computer Science", Title: "Assistant Professor"},
		{Slug: "r-singh", Name: "Rohan Singh", Department: "Information Systems", Title: "Professor"},
	}

	if err := DB.Create(&members).Error; err != nil {
		log.Printf("failed to seed faculty: %v", err)
		return
	}
	log.Printf("seeded %d faculty members", len(members))
}
