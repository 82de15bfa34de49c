package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
)

type SkillHandler struct {
	skillUC domain.SkillUsecase
}

func NewSkillHandler(public *gin.RouterGroup, protected *gin.RouterGroup, skillUC domain.SkillUsecase) {
	handler := &SkillHandler{skillUC: skillUC}

	public.GET("/skills", handler.List)
	public.GET("/skills/:id", handler.Get)

	protected.POST("/skills", handler.Create)
	protected.PUT("/skills/:id", handler.Update)
	protected.DELETE("/skills/:id", handler.Delete)
}

type skillForm struct {
	Name string `form:"name" binding:"required"`
}

// List godoc
// @Summary      List skills
// @Description  Return the caller's skills; anonymous callers get an empty list
// @Tags         skills
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /skills [get]
func (h *SkillHandler) List(c *gin.Context) {
	skills, err := h.skillUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skills retrieved", skills)
}

// Get godoc
// @Summary      Get a skill
// @Tags         skills
// @Produce      json
// @Param        id  path  string  true  "Skill ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /skills/{id} [get]
func (h *SkillHandler) Get(c *gin.Context) {
	skill, err := h.skillUC.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill retrieved", skill)
}

// Create godoc
// @Summary      Create a skill
// @Description  Create a skill with its icon image
// @Tags         skills
// @Accept       multipart/form-data
// @Produce      json
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /skills [post]
// @Security     BearerAuth
func (h *SkillHandler) Create(c *gin.Context) {
	var req skillForm
	if err := c.ShouldBind(&req); err != nil {
		c.Error(err)
		return
	}

	iconHeader, err := c.FormFile("icon")
	if err != nil {
		c.Error(apperror.BadRequest("Icon image is required"))
		return
	}
	icon, err := readImageFile(iconHeader)
	if err != nil {
		c.Error(err)
		return
	}

	skill, err := h.skillUC.Create(c.Request.Context(), req.Name, *icon)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Skill created", skill)
}

// Update godoc
// @Summary      Update a skill
// @Description  Rename a skill and optionally replace its icon
// @Tags         skills
// @Accept       multipart/form-data
// @Produce      json
// @Param        id  path  string  true  "Skill ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /skills/{id} [put]
// @Security     BearerAuth
func (h *SkillHandler) Update(c *gin.Context) {
	var req skillForm
	if err := c.ShouldBind(&req); err != nil {
		c.Error(err)
		return
	}

	var icon *domain.FileUpload
	if form, err := c.MultipartForm(); err == nil {
		icon, err = optionalImageFile(form, "icon")
		if err != nil {
			c.Error(err)
			return
		}
	}

	skill, err := h.skillUC.Update(c.Request.Context(), c.Param("id"), req.Name, icon)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill updated", skill)
}

// Delete godoc
// @Summary      Delete a skill
// @Tags         skills
// @Produce      json
// @Param        id  path  string  true  "Skill ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /skills/{id} [delete]
// @Security     BearerAuth
func (h *SkillHandler) Delete(c *gin.Context) {
	if err := h.skillUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill deleted", nil)
}
