package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/realme-social/realme-backend/config"
	"github.com/realme-social/realme-backend/utils"
)

// ContextUserIDKey is the key used to store the authenticated identity id in
// the Gin context. The stored value is a uuid.UUID.
const ContextUserIDKey = "user_id"

// AuthRequired ensures the request carries a valid bearer token and attaches
// the token subject to the request context. Any failure short-circuits the
// request with 401 and no handler logic runs.
func AuthRequired(cfg config.AppConfig) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")
		if authHeader == "" {
			utils.Error(ctx, http.StatusUnauthorized, "authorization header missing")
			ctx.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			utils.Error(ctx, http.StatusUnauthorized, "invalid authorization header format")
			ctx.Abort()
			return
		}

		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			utils.Error(ctx, http.StatusUnauthorized, "empty bearer token")
			ctx.Abort()
			return
		}

		claims, err := utils.ParseToken(cfg.JWTSecret, tokenString)
		if err != nil {
			utils.Error(ctx, http.StatusUnauthorized, "invalid token")
			ctx.Abort()
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			utils.Error(ctx, http.StatusUnauthorized, "invalid token subject")
			ctx.Abort()
			return
		}

		ctx.Set(ContextUserIDKey, userID)
		ctx.Next()
	}
}
