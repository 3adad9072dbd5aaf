package services

import (
	"errors"
	"testing"

	"github.com/campushq/teambuilder/internal/models"
	"github.com/campushq/teambuilder/pkg/response"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Project{},
		&models.Follow{},
		&models.Membership{},
		&models.Request{},
		&models.PrivateMessage{},
		&models.PublicMessage{},
		&models.RefreshToken{},
		&models.ActivityLog{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := models.User{
		Username: username,
		Email:    username + "@campus.test",
		Password: "x",
		Role:     "user",
		AuthType: "local",
		IsActive: true,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", username, err)
	}
	if err := db.Create(&models.Profile{UserID: user.ID}).Error; err != nil {
		t.Fatalf("failed to create profile for %s: %v", username, err)
	}
	return &user
}

func createProject(t *testing.T, db *gorm.DB, ownerID uint, title string) *models.Project {
	t.Helper()

	project := models.Project{
		Title:        title,
		Description:  "test project",
		Category:     models.CategorySoftware,
		OwnerID:      ownerID,
		OwnerRole:    "lead",
		DesiredRoles: models.StringList{"backend developer"},
	}
	if err := db.Create(&project).Error; err != nil {
		t.Fatalf("failed to create project %s: %v", title, err)
	}
	return &project
}

func createMembership(t *testing.T, db *gorm.DB, projectID, userID uint, role string) *models.Membership {
	t.Helper()

	membership := models.Membership{ProjectID: projectID, UserID: userID, Role: role}
	if err := db.Create(&membership).Error; err != nil {
		t.Fatalf("failed to create membership: %v", err)
	}
	return &membership
}

// wantStatus asserts that err is an AppError with the given HTTP status.
func wantStatus(t *testing.T, err error, status int) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected an error with status %d, got nil", status)
	}
	var appErr *response.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *response.AppError, got %T: %v", err, err)
	}
	if appErr.HTTPStatus != status {
		t.Fatalf("expected status %d, got %d (%s)", status, appErr.HTTPStatus, appErr.Message)
	}
}

func membershipCount(db *gorm.DB, projectID uint) int64 {
	var count int64
	db.Model(&models.Membership{}).Where("project_id = ?", projectID).Count(&count)
	return count
}
