package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
)

type UploadHandler struct {
	uploadUC domain.UploadUsecase
}

func NewUploadHandler(protected *gin.RouterGroup, uploadUC domain.UploadUsecase) {
	handler := &UploadHandler{uploadUC: uploadUC}

	protected.POST("/upload", handler.Upload)
}

// Upload godoc
// @Summary      Upload an image
// @Description  Push a standalone image to the caller's storage folder
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      502  {object}  response.Response
// @Router       /upload [post]
// @Security     BearerAuth
func (h *UploadHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("image")
	if err != nil {
		c.Error(apperror.BadRequest("No file uploaded"))
		return
	}

	file, err := readImageFile(header)
	if err != nil {
		c.Error(err)
		return
	}

	uploaded, err := h.uploadUC.UploadImage(c.Request.Context(), *file)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "File uploaded", uploaded)
}
