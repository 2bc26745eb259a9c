package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/scalableservices/restaurant-service/internal/models"
)

// UserTypeHeader is the role marker header gating owner-only mutations
const UserTypeHeader = "X-UserType"

// UserIDHeader optionally identifies the calling owner for ownership checks
const UserIDHeader = "X-UserId"

// RoleRestaurantOwner is the only role allowed to mutate restaurant data
const RoleRestaurantOwner = "restaurant_owner"

// RequireUserType is a middleware that checks the X-UserType role marker.
// The comparison is case-insensitive, matching the upstream contract.
func RequireUserType(requiredType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userType := c.GetHeader(UserTypeHeader)
		if userType == "" {
			c.JSON(http.StatusUnauthorized, models.Failed(models.ErrUnauthorized,
				"missing "+UserTypeHeader+" header"))
			c.Abort()
			return
		}

		if !strings.EqualFold(userType, requiredType) {
			c.JSON(http.StatusUnauthorized, models.Failed(models.ErrUnauthorized,
				"only restaurant owners are allowed to perform this operation"))
			c.Abort()
			return
		}

		c.Set("userType", strings.ToLower(userType))
		c.Next()
	}
}
