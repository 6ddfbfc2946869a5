// handler/auth_middleware_test.go
package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Prasanth-1011/Blog-System/config"
	"github.com/Prasanth-1011/Blog-System/model"
	"github.com/Prasanth-1011/Blog-System/router"
	"github.com/Prasanth-1011/Blog-System/service"

	"github.com/stretchr/testify/assert"
)

// tokenFor signs a real JWT for the given user against the test secret.
func tokenFor(t *testing.T, user *model.User) string {
	config.AppConfig.JWT.SecretKey = "test-secret"
	authService := service.NewAuthService(nil, nil)
	token, err := authService.GenerateJWT(user)
	assert.NoError(t, err)
	return token
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	r := router.NewRouter(nil, nil, nil, nil, nil, nil)

	t.Run("missing token", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/auth/me", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/auth/me", nil)
		req.Header.Set("Authorization", "NotBearer xyz")
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/auth/me", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestRoleGates(t *testing.T) {
	r := router.NewRouter(nil, nil, nil, nil, nil, nil)

	userToken := tokenFor(t, &model.User{ID: 1, Email: "user@test.com", Role: string(model.RoleUser)})
	adminToken := tokenFor(t, &model.User{ID: 2, Email: "admin@test.com", Role: string(model.RoleAdmin)})

	t.Run("regular user is forbidden from admin routes", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/admin/users", nil)
		req.Header.Set("Authorization", "Bearer "+userToken)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("non-root admin cannot review admin requests", func(t *testing.T) {
		req, _ := http.NewRequest("PUT", "/api/admin/requests/1/review", nil)
		req.Header.Set("Authorization", "Bearer "+adminToken)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("regular user cannot review admin requests", func(t *testing.T) {
		req, _ := http.NewRequest("PUT", "/api/admin/requests/1/review", nil)
		req.Header.Set("Authorization", "Bearer "+userToken)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}
