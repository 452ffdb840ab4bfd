package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/neatify/neatify-api/internal/dto"
	appErrors "github.com/neatify/neatify-api/pkg/errors"
	"github.com/neatify/neatify-api/pkg/response"
)

type uploadStore interface {
	Upload(ctx context.Context, image io.Reader) (string, error)
}

// UploadHandler serves the standalone image upload used by the mobile client
// before report submission.
type UploadHandler struct {
	store uploadStore
}

// NewUploadHandler constructs an upload handler.
func NewUploadHandler(store uploadStore) *UploadHandler {
	return &UploadHandler{store: store}
}

// UploadImage godoc
// @Summary Upload an image and return its hosted URL
// @Tags Uploads
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image"
// @Success 200 {object} dto.UploadImageResponse
// @Router /upload/image [post]
func (h *UploadHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "No file uploaded"))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to read image."))
		return
	}
	defer file.Close()

	imageURL, err := h.store.Upload(c.Request.Context(), file)
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "Upload failed"))
		return
	}
	response.JSON(c, http.StatusOK, dto.UploadImageResponse{ImageURL: imageURL})
}
