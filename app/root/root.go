// Package root contains endpoints that don't belong to any resource
package root

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Heartbeat(c *gin.Context) {
	c.Status(http.StatusOK)
}

// Validate only runs after the JWT middleware, so reaching it means the
// presented token is good.
func Validate(c *gin.Context) {
	c.Status(http.StatusOK)
}
