package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bookstore/utils"

	"github.com/gin-gonic/gin"
)

// adminTestRouter mounts RequireAdmin behind a stub that injects the given
// email as the authenticated identity (empty means no identity at all).
func adminTestRouter(email string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/admin",
		func(c *gin.Context) {
			if email != "" {
				c.Set("email", email)
			}
			c.Next()
		},
		RequireAdmin(),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"success": true})
		},
	)
	return router
}

func TestRequireAdmin(t *testing.T) {
	t.Setenv("ADMIN_EMAILS", "admin@example.com, boss@example.com")
	utils.LoadAdminEmails()

	cases := []struct {
		name   string
		email  string
		status int
	}{
		{"no identity", "", http.StatusUnauthorized},
		{"non-admin", "user@example.com", http.StatusForbidden},
		{"admin", "admin@example.com", http.StatusOK},
		{"admin mixed case", "Boss@Example.COM", http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/admin", nil)
			adminTestRouter(tc.email).ServeHTTP(w, req)

			if w.Code != tc.status {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tc.status, w.Body.String())
			}
		})
	}
}

func TestRequireAdminFailsClosed(t *testing.T) {
	t.Setenv("ADMIN_EMAILS", "")
	utils.LoadAdminEmails()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin", nil)
	adminTestRouter("admin@example.com").ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403 when no admins are configured", w.Code)
	}
}
