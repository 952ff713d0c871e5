package file

import (
	"errors"
	"net/http"

	"filedrop/file-api/internal"
	"filedrop/file-api/internal/apperr"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func FileDelete(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	fileID := c.Param("id")
	if fileID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "ID is missing",
			"requestID": requestID,
		})
		return
	}

	err := d.Files.Delete(c.Request.Context(), userID, fileID)
	if err != nil {
		// The record is gone but the blob store kept the bytes. The
		// delete itself succeeded, so say so and flag the leftover.
		if errors.Is(err, apperr.ErrStorage) {
			c.JSON(http.StatusOK, gin.H{
				"message":   "File deleted successfully",
				"warning":   "The file's contents could not be removed from storage",
				"requestID": requestID,
			})
			return
		}

		status := apperr.HTTPStatus(err)
		if status == http.StatusInternalServerError {
			zap.L().Error("Failed to delete file", zap.Error(err), zap.String("requestID", requestID))
		}

		c.JSON(status, gin.H{
			"error":     apperr.Message(err),
			"requestID": requestID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "File deleted successfully",
		"requestID": requestID,
	})
}
