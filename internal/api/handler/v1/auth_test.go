package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bigstrengthboys/sweet-shop/internal/api/handler/v1/response"
	"github.com/Bigstrengthboys/sweet-shop/internal/config"
	"github.com/Bigstrengthboys/sweet-shop/internal/domain"
	"github.com/Bigstrengthboys/sweet-shop/internal/service"
)

type stubAuthService struct {
	signupFn func(ctx context.Context, user domain.User) (domain.User, error)
	loginFn  func(ctx context.Context, email, password string) (domain.User, error)
}

func (s *stubAuthService) Signup(ctx context.Context, user domain.User) (domain.User, error) {
	return s.signupFn(ctx, user)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func authTestRouter(svc AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	conf := &config.APIConfig{JWTSigningKey: "test-signing-key"}
	handler := NewAuthHandler(conf, svc)

	router := gin.New()
	router.POST("/auth/signup", handler.HandleSignup)
	router.POST("/auth/login", handler.HandleLogin)

	return router
}

func TestHandleSignup(t *testing.T) {
	t.Run("creates the user", func(t *testing.T) {
		svc := &stubAuthService{
			signupFn: func(_ context.Context, user domain.User) (domain.User, error) {
				user.ID = 1
				return user, nil
			},
		}
		router := authTestRouter(svc)

		body := `{
			"name": "Asha",
			"email": "asha@example.com",
			"phone": "9876543210",
			"address": "12 MG Road",
			"password": "sweets123",
			"confirm_password": "sweets123"
		}`
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(body)))

		assert.Equal(t, http.StatusCreated, w.Code)

		var got domain.User
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, uint(1), got.ID)
		assert.Equal(t, "asha@example.com", got.Email)
	})

	t.Run("rejects a short password without calling the service", func(t *testing.T) {
		called := false
		svc := &stubAuthService{
			signupFn: func(_ context.Context, user domain.User) (domain.User, error) {
				called = true
				return user, nil
			},
		}
		router := authTestRouter(svc)

		body := `{
			"name": "Asha",
			"email": "asha@example.com",
			"phone": "9876543210",
			"address": "12 MG Road",
			"password": "abc",
			"confirm_password": "abc"
		}`
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "too short")
		assert.False(t, called)
	})

	t.Run("rejects a password mismatch without calling the service", func(t *testing.T) {
		called := false
		svc := &stubAuthService{
			signupFn: func(_ context.Context, user domain.User) (domain.User, error) {
				called = true
				return user, nil
			},
		}
		router := authTestRouter(svc)

		body := `{
			"name": "Asha",
			"email": "asha@example.com",
			"phone": "9876543210",
			"address": "12 MG Road",
			"password": "sweets123",
			"confirm_password": "sweets124"
		}`
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, called)
	})

	t.Run("maps a duplicate email to 400", func(t *testing.T) {
		svc := &stubAuthService{
			signupFn: func(_ context.Context, _ domain.User) (domain.User, error) {
				return domain.User{}, service.ErrUserEmailExists
			},
		}
		router := authTestRouter(svc)

		body := `{
			"name": "Asha",
			"email": "asha@example.com",
			"phone": "9876543210",
			"address": "12 MG Road",
			"password": "sweets123",
			"confirm_password": "sweets123"
		}`
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "already exists")
	})
}

func TestHandleLogin(t *testing.T) {
	t.Run("returns a token and the user record", func(t *testing.T) {
		svc := &stubAuthService{
			loginFn: func(_ context.Context, email, _ string) (domain.User, error) {
				return domain.User{ID: 1, Name: "Asha", Email: email, IsAdmin: true}, nil
			},
		}
		router := authTestRouter(svc)

		body := `{"email": "asha@example.com", "password": "sweets123"}`
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body)))

		require.Equal(t, http.StatusOK, w.Code)

		var got response.LoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.NotEmpty(t, got.Token)
		assert.Equal(t, "asha@example.com", got.User.Email)
		assert.True(t, got.User.IsAdmin)
	})

	t.Run("masks wrong credentials as 401", func(t *testing.T) {
		svc := &stubAuthService{
			loginFn: func(_ context.Context, _, _ string) (domain.User, error) {
				return domain.User{}, service.ErrWrongPassword
			},
		}
		router := authTestRouter(svc)

		body := `{"email": "asha@example.com", "password": "wrong"}`
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body)))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid email or password")
	})

	t.Run("treats an unknown email the same as a wrong password", func(t *testing.T) {
		svc := &stubAuthService{
			loginFn: func(_ context.Context, _, _ string) (domain.User, error) {
				return domain.User{}, service.ErrUserNotFound
			},
		}
		router := authTestRouter(svc)

		body := `{"email": "nobody@example.com", "password": "sweets123"}`
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body)))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
