package middleware

import (
	"strings"

	"interntrack_backend/internal/auth"
	"interntrack_backend/internal/logger"
	"interntrack_backend/internal/repositories"
	"interntrack_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware guards protected routes. It extracts the Bearer token,
// verifies it, confirms the subject still exists, and puts the user id into
// the gin and logging contexts. All failure modes collapse to a generic 401;
// the concrete reason is only logged.
func AuthMiddleware(jwtSecret string, userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			apperrors.HandleError(c, apperrors.ErrNoToken)
			c.Abort()
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(jwtSecret, tokenStr)
		if err != nil {
			logger.CtxDebug(c.Request.Context(), "token rejected", "reason", err.Error())
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}

		// Liveness check: a validly signed token for a deleted identity is
		// just as invalid as a forged one.
		user, err := userRepo.FindByID(claims.UserID)
		if err != nil {
			logger.CtxDebug(c.Request.Context(), "token subject not resolvable", "user_id", claims.UserID)
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), user.ID)
		c.Request = c.Request.WithContext(ctx)
		c.Set("userID", user.ID)
		c.Next()
	}
}

// GetUserID reads the authenticated user id set by AuthMiddleware.
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get("userID")
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}
	return id
}
