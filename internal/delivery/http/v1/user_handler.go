package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
)

type UserHandler struct {
	profileUC domain.ProfileUsecase
}

func NewUserHandler(public *gin.RouterGroup, protected *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &UserHandler{profileUC: profileUC}

	public.GET("/user", handler.GetOwn)
	public.GET("/user/:username", handler.GetByUsername)

	protected.POST("/user", handler.Create)
	protected.PUT("/user", handler.Update)
}

type profileForm struct {
	Name         string   `form:"name" binding:"required"`
	Role         string   `form:"role" binding:"required"`
	Description  string   `form:"description"`
	SocialMedias []string `form:"socialMedias" binding:"omitempty,dive,url"`
}

// GetOwn godoc
// @Summary      Own profile
// @Description  Return the caller's portfolio profile
// @Tags         user
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /user [get]
// @Security     BearerAuth
func (h *UserHandler) GetOwn(c *gin.Context) {
	profile, err := h.profileUC.GetOwn(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile retrieved", profile)
}

// GetByUsername godoc
// @Summary      Public profile
// @Description  Return any user's portfolio profile by username
// @Tags         user
// @Produce      json
// @Param        username  path  string  true  "Username"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /user/{username} [get]
func (h *UserHandler) GetByUsername(c *gin.Context) {
	profile, err := h.profileUC.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile retrieved", profile)
}

// Create godoc
// @Summary      Create profile
// @Description  Create the caller's portfolio profile, optionally with a photo
// @Tags         user
// @Accept       multipart/form-data
// @Produce      json
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /user [post]
// @Security     BearerAuth
func (h *UserHandler) Create(c *gin.Context) {
	profile, photo, err := h.bindProfile(c)
	if err != nil {
		c.Error(err)
		return
	}

	created, err := h.profileUC.Create(c.Request.Context(), profile, photo)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Profile created", created)
}

// Update godoc
// @Summary      Update profile
// @Description  Overwrite the caller's portfolio profile
// @Tags         user
// @Accept       multipart/form-data
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /user [put]
// @Security     BearerAuth
func (h *UserHandler) Update(c *gin.Context) {
	profile, photo, err := h.bindProfile(c)
	if err != nil {
		c.Error(err)
		return
	}

	updated, err := h.profileUC.Update(c.Request.Context(), profile, photo)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated", updated)
}

func (h *UserHandler) bindProfile(c *gin.Context) (*domain.Profile, *domain.FileUpload, error) {
	var req profileForm
	if err := c.ShouldBind(&req); err != nil {
		return nil, nil, err
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil, apperror.BadRequest("Expected multipart form data")
	}
	photo, err := optionalImageFile(form, "profilePhoto")
	if err != nil {
		return nil, nil, err
	}

	profile := &domain.Profile{
		Name:         req.Name,
		Role:         req.Role,
		Description:  req.Description,
		SocialMedias: req.SocialMedias,
	}
	return profile, photo, nil
}
