package file

import (
	"net/http"

	"filedrop/file-api/internal"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FilePublic lists every public file. No login needed.
func FilePublic(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	files, err := d.Files.ListPublic(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to list public files", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, files)
}
