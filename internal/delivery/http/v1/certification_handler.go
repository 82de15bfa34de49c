package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
)

type CertificationHandler struct {
	certUC domain.CertificationUsecase
}

func NewCertificationHandler(public *gin.RouterGroup, protected *gin.RouterGroup, certUC domain.CertificationUsecase) {
	handler := &CertificationHandler{certUC: certUC}

	public.GET("/certifications", handler.List)
	public.GET("/certifications/:id", handler.Get)

	protected.POST("/certifications", handler.Create)
	protected.PUT("/certifications/:id", handler.Update)
	protected.DELETE("/certifications/:id", handler.Delete)
}

type CertificationRequest struct {
	Name                string   `json:"name" binding:"required"`
	IssuingOrganization string   `json:"issuingOrganization" binding:"required"`
	Year                int      `json:"year" binding:"required,min=1900,max=2100"`
	Description         string   `json:"description"`
	CertificateLink     string   `json:"certificateLink" binding:"omitempty,url"`
	SkillIDs            []string `json:"skillIds" binding:"omitempty,dive,uuid"`
}

func (r *CertificationRequest) toDomain() (*domain.Certification, []string) {
	skillIDs := r.SkillIDs
	if skillIDs == nil {
		skillIDs = []string{}
	}
	var link *string
	if r.CertificateLink != "" {
		link = &r.CertificateLink
	}
	return &domain.Certification{
		Name:                r.Name,
		IssuingOrganization: r.IssuingOrganization,
		Year:                r.Year,
		Description:         r.Description,
		CertificateLink:     link,
	}, skillIDs
}

// List godoc
// @Summary      List certifications
// @Description  Return the caller's certifications; anonymous callers get an empty list
// @Tags         certifications
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /certifications [get]
func (h *CertificationHandler) List(c *gin.Context) {
	certs, err := h.certUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Certifications retrieved", certs)
}

// Get godoc
// @Summary      Get a certification
// @Tags         certifications
// @Produce      json
// @Param        id  path  string  true  "Certification ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /certifications/{id} [get]
func (h *CertificationHandler) Get(c *gin.Context) {
	cert, err := h.certUC.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Certification retrieved", cert)
}

// Create godoc
// @Summary      Create a certification
// @Tags         certifications
// @Accept       json
// @Produce      json
// @Param        body  body      CertificationRequest  true  "Certification JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /certifications [post]
// @Security     BearerAuth
func (h *CertificationHandler) Create(c *gin.Context) {
	var req CertificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	cert, skillIDs := req.toDomain()
	created, err := h.certUC.Create(c.Request.Context(), cert, skillIDs)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Certification created", created)
}

// Update godoc
// @Summary      Update a certification
// @Description  Overwrite the certification and replace its skill tags with the supplied set
// @Tags         certifications
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "Certification ID"
// @Param        body  body  CertificationRequest  true  "Certification JSON"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /certifications/{id} [put]
// @Security     BearerAuth
func (h *CertificationHandler) Update(c *gin.Context) {
	var req CertificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	cert, skillIDs := req.toDomain()
	updated, err := h.certUC.Update(c.Request.Context(), c.Param("id"), cert, skillIDs)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Certification updated", updated)
}

// Delete godoc
// @Summary      Delete a certification
// @Tags         certifications
// @Produce      json
// @Param        id  path  string  true  "Certification ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /certifications/{id} [delete]
// @Security     BearerAuth
func (h *CertificationHandler) Delete(c *gin.Context) {
	if err := h.certUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Certification deleted", nil)
}
