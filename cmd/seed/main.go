package main

import (
	"context"
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"newsapi/internal/config"
	"newsapi/internal/db"
	"newsapi/internal/model"
	"newsapi/internal/repository"
)

var starterCategories = []string{
	"Politics",
	"Business",
	"Technology",
	"Sports",
	"Culture",
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()
	if cfg.SeedAdminPassword == "" {
		log.Fatal("SEED_ADMIN_PASSWORD must be set")
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Profile{},
		&model.Category{},
		&model.News{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()

	if err := seedAdmin(ctx, repository.NewUserRepository(gormDB), cfg); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	created, err := seedCategories(ctx, repository.NewCategoryRepository(gormDB))
	if err != nil {
		log.Fatalf("Failed to seed categories: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New categories created: %d", created)
}

// seedAdmin creates the ADMIN account once; reruns leave an existing account
// untouched.
func seedAdmin(ctx context.Context, users repository.UserRepository, cfg *config.Config) error {
	existing, err := users.FindByEmail(ctx, cfg.SeedAdminEmail)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if existing != nil {
		log.Printf("Admin user %s already exists, skipping", cfg.SeedAdminEmail)
		return nil
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(cfg.SeedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &model.User{
		Name:     cfg.SeedAdminName,
		Email:    cfg.SeedAdminEmail,
		Password: string(digest),
		Role:     model.RoleAdmin,
		Profile:  &model.Profile{},
	}
	if err := users.Create(ctx, admin); err != nil {
		return err
	}
	log.Printf("Created admin user %s", cfg.SeedAdminEmail)
	return nil
}

func seedCategories(ctx context.Context, categories repository.CategoryRepository) (int, error) {
	created := 0
	for _, name := range starterCategories {
		existing, err := categories.FindByName(ctx, name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, err
		}
		if existing != nil {
			continue
		}
		if err := categories.Create(ctx, &model.Category{Name: name}); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
