// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finledger/backend/internal/application/adapter"
	"github.com/finledger/backend/internal/integration/entrypoint/dto"
	"github.com/finledger/backend/internal/integration/entrypoint/middleware"
)

// maxUploadSize caps attachment uploads at 5 MiB.
const maxUploadSize = 5 << 20

// UploadController handles attachment upload endpoints.
type UploadController struct {
	fileStorage adapter.FileStorage
}

// NewUploadController creates a new upload controller instance.
func NewUploadController(fileStorage adapter.FileStorage) *UploadController {
	return &UploadController{
		fileStorage: fileStorage,
	}
}

// Upload handles POST /api/upload multipart requests. The stored file is
// referenced by the returned URL path.
func (c *UploadController) Upload(ctx *gin.Context) {
	if _, ok := middleware.UserIDFromContext(ctx); !ok {
		respondUnauthenticated(ctx)
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "A file is required",
		})
		return
	}

	if fileHeader.Size > maxUploadSize {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "File exceeds the maximum allowed size",
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to read the uploaded file",
		})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to read the uploaded file",
		})
		return
	}

	url, err := c.fileStorage.Store(ctx.Request.Context(), data, fileHeader.Filename)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to store the uploaded file",
		})
		return
	}

	ctx.JSON(http.StatusCreated, dto.UploadResponse{URL: url})
}

// Delete handles DELETE /api/upload/:filename requests. Removing a file that
// is already gone still succeeds.
func (c *UploadController) Delete(ctx *gin.Context) {
	if _, ok := middleware.UserIDFromContext(ctx); !ok {
		respondUnauthenticated(ctx)
		return
	}

	filename := ctx.Param("filename")
	if filename == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "A filename is required",
		})
		return
	}

	if err := c.fileStorage.Delete(ctx.Request.Context(), filename); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to delete the file",
		})
		return
	}

	ctx.Status(http.StatusNoContent)
}
