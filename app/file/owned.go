package file

import (
	"net/http"

	"filedrop/file-api/internal"
	"filedrop/file-api/internal/apperr"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FileOwned lists the caller's files, public and private alike.
func FileOwned(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	files, err := d.Files.ListOwned(c.Request.Context(), userID)
	if err != nil {
		status := apperr.HTTPStatus(err)
		if status == http.StatusInternalServerError {
			zap.L().Error("Failed to list owned files", zap.Error(err), zap.String("requestID", requestID))
		}

		c.JSON(status, gin.H{
			"error":     apperr.Message(err),
			"requestID": requestID,
		})
		return
	}

	c.JSON(http.StatusOK, files)
}
