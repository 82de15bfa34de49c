package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
)

type ExperienceHandler struct {
	expUC domain.ExperienceUsecase
}

func NewExperienceHandler(public *gin.RouterGroup, protected *gin.RouterGroup, expUC domain.ExperienceUsecase) {
	handler := &ExperienceHandler{expUC: expUC}

	public.GET("/experience", handler.List)
	public.GET("/experience/user/:username", handler.ListByUsername)
	public.GET("/experience/:id", handler.Get)

	protected.POST("/experience", handler.Create)
	protected.PUT("/experience/:id", handler.Update)
	protected.DELETE("/experience/:id", handler.Delete)
}

type ExperienceRequest struct {
	StartYear   int      `json:"startYear" binding:"required,min=1900,max=2100"`
	EndYear     *int     `json:"endYear" binding:"omitempty,min=1900,max=2100"`
	CompanyName string   `json:"companyName" binding:"required"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	SkillIDs    []string `json:"skillIds" binding:"omitempty,dive,uuid"`
}

func (r *ExperienceRequest) toDomain() (*domain.Experience, []string) {
	skillIDs := r.SkillIDs
	if skillIDs == nil {
		skillIDs = []string{}
	}
	return &domain.Experience{
		StartYear:   r.StartYear,
		EndYear:     r.EndYear,
		CompanyName: r.CompanyName,
		Description: r.Description,
		Location:    r.Location,
	}, skillIDs
}

// List godoc
// @Summary      List experience
// @Description  Return the caller's experience entries; anonymous callers get an empty list
// @Tags         experience
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /experience [get]
func (h *ExperienceHandler) List(c *gin.Context) {
	entries, err := h.expUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Experience retrieved", entries)
}

// ListByUsername godoc
// @Summary      Public experience list
// @Tags         experience
// @Produce      json
// @Param        username  path  string  true  "Username"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /experience/user/{username} [get]
func (h *ExperienceHandler) ListByUsername(c *gin.Context) {
	entries, err := h.expUC.ListByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Experience retrieved", entries)
}

// Get godoc
// @Summary      Get an experience entry
// @Tags         experience
// @Produce      json
// @Param        id  path  string  true  "Experience ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /experience/{id} [get]
func (h *ExperienceHandler) Get(c *gin.Context) {
	entry, err := h.expUC.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Experience retrieved", entry)
}

// Create godoc
// @Summary      Create an experience entry
// @Tags         experience
// @Accept       json
// @Produce      json
// @Param        body  body      ExperienceRequest  true  "Experience JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /experience [post]
// @Security     BearerAuth
func (h *ExperienceHandler) Create(c *gin.Context) {
	var req ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	exp, skillIDs := req.toDomain()
	created, err := h.expUC.Create(c.Request.Context(), exp, skillIDs)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Experience created", created)
}

// Update godoc
// @Summary      Update an experience entry
// @Description  Overwrite the entry and replace its skill tags with the supplied set
// @Tags         experience
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "Experience ID"
// @Param        body  body  ExperienceRequest  true  "Experience JSON"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /experience/{id} [put]
// @Security     BearerAuth
func (h *ExperienceHandler) Update(c *gin.Context) {
	var req ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	exp, skillIDs := req.toDomain()
	updated, err := h.expUC.Update(c.Request.Context(), c.Param("id"), exp, skillIDs)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Experience updated", updated)
}

// Delete godoc
// @Summary      Delete an experience entry
// @Tags         experience
// @Produce      json
// @Param        id  path  string  true  "Experience ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /experience/{id} [delete]
// @Security     BearerAuth
func (h *ExperienceHandler) Delete(c *gin.Context) {
	if err := h.expUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Experience deleted", nil)
}
