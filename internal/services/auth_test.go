package services

import (
	"net/http"
	"testing"

	"github.com/campushq/teambuilder/internal/config"
	"github.com/campushq/teambuilder/internal/models"
	"github.com/campushq/teambuilder/internal/utils"
	"gorm.io/gorm"
)

func init() {
	utils.SetJWTSecret("test-secret-for-service-testing")
}

func newTestAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(db,
		&config.JWTConfig{Secret: "test", ExpireHour: 1, RefreshExpireHour: 24},
		&config.LDAPConfig{Enabled: false})
}

func TestRegister_CreatesProfile(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAuthService(db)

	user, err := svc.Register(&RegisterRequest{
		Username: "alice", Email: "alice@campus.test", Password: "secret123",
		FirstName: "Alice", LastName: "Nguyen",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if user.Profile == nil {
		t.Fatal("every new account must carry a profile")
	}

	var profile models.Profile
	if err := db.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		t.Fatalf("profile row missing: %v", err)
	}

	if user.Password == "secret123" {
		t.Error("password stored in plaintext")
	}
}

func TestRegister_Uniqueness(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAuthService(db)

	if _, err := svc.Register(&RegisterRequest{
		Username: "alice", Email: "alice@campus.test", Password: "secret123",
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	_, err := svc.Register(&RegisterRequest{
		Username: "alice", Email: "other@campus.test", Password: "secret123",
	})
	wantStatus(t, err, http.StatusBadRequest)

	_, err = svc.Register(&RegisterRequest{
		Username: "alice2", Email: "alice@campus.test", Password: "secret123",
	})
	wantStatus(t, err, http.StatusBadRequest)
}

func TestLoginAndRefreshRotation(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAuthService(db)

	svc.Register(&RegisterRequest{
		Username: "alice", Email: "alice@campus.test", Password: "secret123",
	})

	result, err := svc.Login(&LoginRequest{Username: "alice", Password: "secret123"}, "127.0.0.1", "test-agent")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if result.AccessToken == "" || result.RefreshToken == "" {
		t.Fatal("login must return both tokens")
	}

	claims, err := utils.ParseToken(result.AccessToken)
	if err != nil {
		t.Fatalf("access token does not parse: %v", err)
	}
	if claims.Username != "alice" {
		t.Errorf("claims username = %q", claims.Username)
	}

	refreshed, err := svc.Refresh(result.RefreshToken, "127.0.0.1", "test-agent")
	if err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if refreshed.RefreshToken == result.RefreshToken {
		t.Error("refresh must rotate the token")
	}

	// The old token is revoked after rotation
	_, err = svc.Refresh(result.RefreshToken, "127.0.0.1", "test-agent")
	wantStatus(t, err, http.StatusUnauthorized)
}

func TestLogin_WrongPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAuthService(db)

	svc.Register(&RegisterRequest{
		Username: "alice", Email: "alice@campus.test", Password: "secret123",
	})

	_, err := svc.Login(&LoginRequest{Username: "alice", Password: "wrong"}, "", "")
	wantStatus(t, err, http.StatusUnauthorized)

	_, err = svc.Login(&LoginRequest{Username: "nobody", Password: "secret123"}, "", "")
	wantStatus(t, err, http.StatusUnauthorized)
}

func TestRevokeRefreshToken(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAuthService(db)

	svc.Register(&RegisterRequest{
		Username: "alice", Email: "alice@campus.test", Password: "secret123",
	})
	result, _ := svc.Login(&LoginRequest{Username: "alice", Password: "secret123"}, "", "")

	if err := svc.RevokeRefreshToken(result.RefreshToken); err != nil {
		t.Fatalf("RevokeRefreshToken() error = %v", err)
	}

	_, err := svc.Refresh(result.RefreshToken, "", "")
	wantStatus(t, err, http.StatusUnauthorized)
}

func TestCreateAdminIfNotExists(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAuthService(db)

	if err := svc.CreateAdminIfNotExists(); err != nil {
		t.Fatalf("CreateAdminIfNotExists() error = %v", err)
	}

	var count int64
	db.Model(&models.User{}).Where("role = ?", "admin").Count(&count)
	if count != 1 {
		t.Fatalf("admin count = %d", count)
	}

	// Idempotent
	if err := svc.CreateAdminIfNotExists(); err != nil {
		t.Fatalf("second CreateAdminIfNotExists() error = %v", err)
	}
	db.Model(&models.User{}).Where("role = ?", "admin").Count(&count)
	if count != 1 {
		t.Errorf("admin count = %d after second call", count)
	}
}
