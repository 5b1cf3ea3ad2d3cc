package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"scoopshop-backend/models"

	"github.com/gin-gonic/gin"
)

func authedRouter(t *testing.T, handler gin.HandlerFunc, extra ...gin.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/", AuthMiddleware())
	for _, m := range extra {
		group.Use(m)
	}
	group.GET("/ping", handler)
	return r
}

func doGet(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	r := authedRouter(t, func(c *gin.Context) {
		role, ok := CurrentRole(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no role"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"role": role})
	})

	t.Run("missing header", func(t *testing.T) {
		if w := doGet(r, ""); w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		if w := doGet(r, "not-a-token"); w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("valid staff token", func(t *testing.T) {
		token, err := GenerateToken("user-1", models.RoleStaff)
		if err != nil {
			t.Fatalf("GenerateToken: %v", err)
		}
		w := doGet(r, token)
		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want 200, body %s", w.Code, w.Body.String())
		}
	})
}

func TestRequireOwner(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	r := authedRouter(t, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}, RequireOwner())

	staffToken, err := GenerateToken("user-1", models.RoleStaff)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	ownerToken, err := GenerateToken("user-2", models.RoleOwner)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if w := doGet(r, staffToken); w.Code != http.StatusForbidden {
		t.Errorf("staff status = %d, want 403", w.Code)
	}
	if w := doGet(r, ownerToken); w.Code != http.StatusOK {
		t.Errorf("owner status = %d, want 200", w.Code)
	}
}
