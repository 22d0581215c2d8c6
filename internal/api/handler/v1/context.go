package v1

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/Bigstrengthboys/sweet-shop/internal/api/handler/v1/response"
	"github.com/Bigstrengthboys/sweet-shop/internal/api/middleware"
	"github.com/Bigstrengthboys/sweet-shop/internal/domain"
	"github.com/Bigstrengthboys/sweet-shop/internal/service"
)

// getUserFromContext resolves the authenticated user from the ID the JWT
// middleware stored. The user record is always re-read from the store so
// the admin flag is authoritative, not whatever an old token claims.
func getUserFromContext(ctx *gin.Context, uSvc UserService) (domain.User, *response.Err) {
	value, exists := ctx.Get(middleware.CtxKeyUserID)
	if !exists {
		return domain.User{}, response.ErrUnauthorized(errors.New("missing credentials"))
	}

	userID, ok := value.(uint)
	if !ok {
		return domain.User{}, response.ErrUnauthorized(errors.New("invalid credentials"))
	}

	user, err := uSvc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return domain.User{}, response.ErrUnauthorized(errors.New("unknown user"))
		}

		return domain.User{}, response.ErrInternalServerError(fmt.Errorf("v1.getUserFromContext -> uSvc.GetUser -> %w", err))
	}

	return user, nil
}

// requireAdmin is the server-side gate in front of inventory mutations.
func requireAdmin(ctx *gin.Context, uSvc UserService) (domain.User, *response.Err) {
	user, respErr := getUserFromContext(ctx, uSvc)
	if respErr != nil {
		return domain.User{}, respErr
	}

	if !user.IsAdmin {
		return domain.User{}, response.ErrPermissionDenied(fmt.Errorf("user %v is not an admin", user.ID))
	}

	return user, nil
}
