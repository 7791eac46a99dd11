package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"kyc-loan.backend/internal/domain/entities"
	domainerrors "kyc-loan.backend/internal/domain/errors"
	"kyc-loan.backend/internal/interfaces/http/response"
	"kyc-loan.backend/pkg/jwt"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// UserIDKey is the context key for user ID
	UserIDKey = "userId"
	// UserRoleKey is the context key for user role
	UserRoleKey = "userRole"
)

// AuthMiddleware validates the bearer token and stores identity in context
func AuthMiddleware(tokens *jwt.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeader)
		if authHeader == "" {
			response.AbortError(c, domainerrors.Unauthenticated("authorization header is required"))
			return
		}
		if !strings.HasPrefix(authHeader, BearerPrefix) {
			response.AbortError(c, domainerrors.Unauthenticated("invalid authorization format, use: Bearer <token>"))
			return
		}

		claims, err := tokens.Validate(strings.TrimPrefix(authHeader, BearerPrefix))
		if err != nil {
			if errors.Is(err, jwt.ErrExpiredToken) {
				response.AbortError(c, domainerrors.Unauthenticated("token has expired"))
				return
			}
			response.AbortError(c, domainerrors.Unauthenticated("invalid token"))
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UserRoleKey, claims.Role)
		c.Next()
	}
}

// GetUserID gets the authenticated user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	return userID.(uuid.UUID), true
}

// GetUserRole gets the authenticated user role from context
func GetUserRole(c *gin.Context) (entities.UserRole, bool) {
	role, exists := c.Get(UserRoleKey)
	if !exists {
		return "", false
	}
	return entities.UserRole(role.(string)), true
}

// RequireRole allows only the listed roles. The super admin role passes any
// role gate.
func RequireRole(roles ...entities.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := GetUserRole(c)
		if !exists {
			response.AbortError(c, domainerrors.Unauthenticated("user role not found"))
			return
		}

		if userRole == entities.UserRoleSuperAdmin {
			c.Next()
			return
		}
		for _, role := range roles {
			if userRole == role {
				c.Next()
				return
			}
		}

		response.AbortError(c, domainerrors.Unauthorized("insufficient permissions"))
	}
}

// RequireAdmin allows admin and super admin callers
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(entities.UserRoleAdmin)
}

// RequireSuperAdmin allows only the super admin
func RequireSuperAdmin() gin.HandlerFunc {
	return RequireRole(entities.UserRoleSuperAdmin)
}
