package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	router := gin.New()
	router.GET("/", handler)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	router.ServeHTTP(w, req)
	return w
}

func TestSuccess(t *testing.T) {
	w := perform(func(c *gin.Context) {
		Success(c, gin.H{"value": 1})
	})

	if w.Code != http.StatusOK {
		t.Errorf("status = %d", w.Code)
	}

	var resp Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.Code != 0 {
		t.Errorf("code = %d, expected 0", resp.Code)
	}
}

func TestError_AppError(t *testing.T) {
	cases := []struct {
		err    *AppError
		status int
	}{
		{NewBadRequest("bad"), http.StatusBadRequest},
		{NewUnauthorized("who"), http.StatusUnauthorized},
		{NewForbidden("no"), http.StatusForbidden},
		{NewNotFound("gone"), http.StatusNotFound},
		{NewServerError("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		w := perform(func(c *gin.Context) {
			Error(c, tc.err)
		})
		if w.Code != tc.status {
			t.Errorf("%s: status = %d, expected %d", tc.err.Message, w.Code, tc.status)
		}
	}
}

func TestError_WrappedAppError(t *testing.T) {
	wrapped := fmt.Errorf("context: %w", NewNotFound("gone"))

	w := perform(func(c *gin.Context) {
		Error(c, wrapped)
	})

	if w.Code != http.StatusNotFound {
		t.Errorf("wrapped AppError should keep its status, got %d", w.Code)
	}
}

func TestError_PlainError(t *testing.T) {
	w := perform(func(c *gin.Context) {
		Error(c, fmt.Errorf("database exploded"))
	})

	if w.Code != http.StatusInternalServerError {
		t.Errorf("plain errors map to 500, got %d", w.Code)
	}
}

func TestDeleted(t *testing.T) {
	w := perform(func(c *gin.Context) {
		Deleted(c)
	})

	if w.Code != http.StatusNoContent {
		t.Errorf("status = %d, expected 204", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("204 response must have no body")
	}
}
