// Package file contains the file endpoints
package file

import (
	"context"
	"net/http"
	"path"
	"strings"
	"time"

	"filedrop/file-api/internal"
	"filedrop/file-api/internal/apperr"
	"filedrop/file-api/pkg/validators"

	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"
)

const keyCharset = "abcdefghijklmnopqrstuvwxyz0123456789"

func FileUpload(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "No file provided",
			"requestID": requestID,
		})
		return
	}

	code, f, contentType, err := validators.UploadValidator(fh)
	if err != nil {
		if code == http.StatusInternalServerError {
			zap.L().Error("Failed to validate upload", zap.Error(err), zap.String("requestID", requestID))

			c.JSON(code, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})
			return
		}

		c.JSON(code, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}
	defer f.Close()

	// The object lives under an opaque key so same-named uploads from
	// different users never collide
	key := gonanoid.MustGenerate(keyCharset, 21) + strings.ToLower(path.Ext(fh.Filename))

	ctx, cancel := context.WithTimeout(c.Request.Context(), time.Minute)
	defer cancel()

	if err := d.Store.Store(ctx, key, f, fh.Size, contentType); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to store uploaded object", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	fileEnt, err := d.Files.Upload(c.Request.Context(), userID, fh.Filename, key, fh.Size, c.PostForm("privacy"))
	if err != nil {
		// The record was refused, don't leave orphaned bytes behind
		if delErr := d.Store.Delete(context.Background(), key); delErr != nil {
			zap.L().Error("Failed to clean up stored object", zap.String("key", key), zap.Error(delErr))
		}

		status := apperr.HTTPStatus(err)
		if status == http.StatusInternalServerError {
			zap.L().Error("Failed to create file record", zap.Error(err), zap.String("requestID", requestID))
		}

		c.JSON(status, gin.H{
			"error":     apperr.Message(err),
			"requestID": requestID,
		})
		return
	}

	c.JSON(http.StatusOK, fileEnt)
}
