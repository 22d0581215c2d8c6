package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bigstrengthboys/sweet-shop/internal/pkg/jwthelper"
)

const testSigningKey = "test-signing-key"

func protectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", NewAuthenticator(testSigningKey).VerifyJWT(), func(ctx *gin.Context) {
		userID := ctx.GetUint(CtxKeyUserID)
		ctx.JSON(http.StatusOK, gin.H{"user_id": userID})
	})

	return router
}

func TestVerifyJWT(t *testing.T) {
	router := protectedRouter()

	validToken, err := jwthelper.GenerateToken([]byte(testSigningKey), 42, "test-agent")
	require.NoError(t, err)

	foreignToken, err := jwthelper.GenerateToken([]byte("some-other-key"), 42, "test-agent")
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{name: "valid token", authHeader: "Bearer " + validToken, wantStatus: http.StatusOK},
		{name: "missing header", authHeader: "", wantStatus: http.StatusUnauthorized},
		{name: "not a bearer scheme", authHeader: "Basic abc123", wantStatus: http.StatusUnauthorized},
		{name: "garbled token", authHeader: "Bearer garbage", wantStatus: http.StatusUnauthorized},
		{name: "token signed with a different key", authHeader: "Bearer " + foreignToken, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Contains(t, w.Body.String(), `"user_id":42`)
			}
		})
	}
}
