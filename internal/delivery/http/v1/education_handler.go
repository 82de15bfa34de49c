package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
)

type EducationHandler struct {
	eduUC domain.EducationUsecase
}

func NewEducationHandler(public *gin.RouterGroup, protected *gin.RouterGroup, eduUC domain.EducationUsecase) {
	handler := &EducationHandler{eduUC: eduUC}

	public.GET("/education", handler.List)
	public.GET("/education/user/:username", handler.ListByUsername)
	public.GET("/education/:id", handler.Get)

	protected.POST("/education", handler.Create)
	protected.PUT("/education/:id", handler.Update)
	protected.DELETE("/education/:id", handler.Delete)
}

type EducationRequest struct {
	Year            string `json:"year" binding:"required,max=50"`
	InstitutionName string `json:"institutionName" binding:"required"`
	Description     string `json:"description"`
}

// List godoc
// @Summary      List education
// @Description  Return the caller's education entries; anonymous callers get an empty list
// @Tags         education
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /education [get]
func (h *EducationHandler) List(c *gin.Context) {
	entries, err := h.eduUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Education retrieved", entries)
}

// ListByUsername godoc
// @Summary      Public education list
// @Tags         education
// @Produce      json
// @Param        username  path  string  true  "Username"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /education/user/{username} [get]
func (h *EducationHandler) ListByUsername(c *gin.Context) {
	entries, err := h.eduUC.ListByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Education retrieved", entries)
}

// Get godoc
// @Summary      Get an education entry
// @Tags         education
// @Produce      json
// @Param        id  path  string  true  "Education ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /education/{id} [get]
func (h *EducationHandler) Get(c *gin.Context) {
	entry, err := h.eduUC.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Education retrieved", entry)
}

// Create godoc
// @Summary      Create an education entry
// @Tags         education
// @Accept       json
// @Produce      json
// @Param        body  body      EducationRequest  true  "Education JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /education [post]
// @Security     BearerAuth
func (h *EducationHandler) Create(c *gin.Context) {
	var req EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	created, err := h.eduUC.Create(c.Request.Context(), &domain.Education{
		Year:            req.Year,
		InstitutionName: req.InstitutionName,
		Description:     req.Description,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Education created", created)
}

// Update godoc
// @Summary      Update an education entry
// @Tags         education
// @Accept       json
// @Produce      json
// @Param        id    path  string            true  "Education ID"
// @Param        body  body  EducationRequest  true  "Education JSON"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /education/{id} [put]
// @Security     BearerAuth
func (h *EducationHandler) Update(c *gin.Context) {
	var req EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	updated, err := h.eduUC.Update(c.Request.Context(), c.Param("id"), &domain.Education{
		Year:            req.Year,
		InstitutionName: req.InstitutionName,
		Description:     req.Description,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Education updated", updated)
}

// Delete godoc
// @Summary      Delete an education entry
// @Tags         education
// @Produce      json
// @Param        id  path  string  true  "Education ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /education/{id} [delete]
// @Security     BearerAuth
func (h *EducationHandler) Delete(c *gin.Context) {
	if err := h.eduUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Education deleted", nil)
}
