package main

import (
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/clause"

	"sharksports/internal/config"
	"sharksports/internal/database"
	"sharksports/internal/domain"
)

// Seeds the schema and the default accounts so a fresh database is usable
// immediately. Running it twice is safe: existing accounts are left alone.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed: ", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed: ", err)
	}

	log.Println("Creating default accounts...")

	adminHash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), 12)
	if err != nil {
		log.Fatal(err)
	}
	admin := domain.User{
		Name:         "Platform Admin",
		Email:        cfg.AdminEmail,
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Status:       domain.UserActive,
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(&admin).Error; err != nil {
		log.Fatal(err)
	}
	log.Printf("Admin ready: %s", cfg.AdminEmail)

	vendorHash, err := bcrypt.GenerateFromPassword([]byte("vendor123"), 12)
	if err != nil {
		log.Fatal(err)
	}
	vendor := domain.User{
		Name:         "Demo Vendor",
		Email:        "vendor@sharksports.com",
		Phone:        "+91 98765 43210",
		PasswordHash: string(vendorHash),
		Role:         domain.RoleVendor,
		Status:       domain.UserActive,
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(&vendor).Error; err != nil {
		log.Fatal(err)
	}
	log.Println("Vendor ready: vendor@sharksports.com / vendor123")

	log.Println("Seed complete.")
}
