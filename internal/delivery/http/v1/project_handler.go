package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
)

// maxContentImages caps the number of inline images per project.
const maxContentImages = 10

type ProjectHandler struct {
	projectUC domain.ProjectUsecase
}

func NewProjectHandler(public *gin.RouterGroup, protected *gin.RouterGroup, projectUC domain.ProjectUsecase) {
	handler := &ProjectHandler{projectUC: projectUC}

	public.GET("/projects", handler.List)
	public.GET("/projects/user/:username", handler.ListByUsername)
	public.GET("/projects/user/:username/:slug", handler.GetByUsernameSlug)
	public.GET("/projects/:slug", handler.GetBySlug)

	protected.POST("/projects", handler.Create)
	protected.PUT("/projects/:id", handler.Update)
	protected.DELETE("/projects/:id", handler.Delete)
}

type projectForm struct {
	Title       string   `form:"title" binding:"required"`
	Slug        string   `form:"slug" binding:"required,slug"`
	Description string   `form:"description"`
	Content     string   `form:"content"`
	Published   bool     `form:"published"`
	Highlighted bool     `form:"highlighted"`
	PublishedAt string   `form:"publishedAt"`
	SkillIDs    []string `form:"skillIds" binding:"omitempty,dive,uuid"`
}

// List godoc
// @Summary      List projects
// @Description  Return the caller's projects; anonymous callers get an empty list
// @Tags         projects
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projectUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Projects retrieved", projects)
}

// ListByUsername godoc
// @Summary      Public project list
// @Tags         projects
// @Produce      json
// @Param        username  path  string  true  "Username"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /projects/user/{username} [get]
func (h *ProjectHandler) ListByUsername(c *gin.Context) {
	projects, err := h.projectUC.ListByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Projects retrieved", projects)
}

// GetBySlug godoc
// @Summary      Get a project
// @Description  Return the caller's project by slug
// @Tags         projects
// @Produce      json
// @Param        slug  path  string  true  "Project slug"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /projects/{slug} [get]
func (h *ProjectHandler) GetBySlug(c *gin.Context) {
	project, err := h.projectUC.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Project retrieved", project)
}

// GetByUsernameSlug godoc
// @Summary      Public project detail
// @Tags         projects
// @Produce      json
// @Param        username  path  string  true  "Username"
// @Param        slug      path  string  true  "Project slug"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /projects/user/{username}/{slug} [get]
func (h *ProjectHandler) GetByUsernameSlug(c *gin.Context) {
	project, err := h.projectUC.GetByUsernameSlug(c.Request.Context(), c.Param("username"), c.Param("slug"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Project retrieved", project)
}

// Create godoc
// @Summary      Create a project
// @Description  Create a project with an optional cover image and up to ten content images
// @Tags         projects
// @Accept       multipart/form-data
// @Produce      json
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /projects [post]
// @Security     BearerAuth
func (h *ProjectHandler) Create(c *gin.Context) {
	input, err := h.bindProject(c)
	if err != nil {
		c.Error(err)
		return
	}

	created, err := h.projectUC.Create(c.Request.Context(), *input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Project created", created)
}

// Update godoc
// @Summary      Update a project
// @Description  Overwrite the project and replace its skill tags with the supplied set
// @Tags         projects
// @Accept       multipart/form-data
// @Produce      json
// @Param        id  path  string  true  "Project ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /projects/{id} [put]
// @Security     BearerAuth
func (h *ProjectHandler) Update(c *gin.Context) {
	input, err := h.bindProject(c)
	if err != nil {
		c.Error(err)
		return
	}

	updated, err := h.projectUC.Update(c.Request.Context(), c.Param("id"), *input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Project updated", updated)
}

// Delete godoc
// @Summary      Delete a project
// @Tags         projects
// @Produce      json
// @Param        id  path  string  true  "Project ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /projects/{id} [delete]
// @Security     BearerAuth
func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.projectUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Project deleted", nil)
}

func (h *ProjectHandler) bindProject(c *gin.Context) (*domain.ProjectInput, error) {
	var req projectForm
	if err := c.ShouldBind(&req); err != nil {
		return nil, err
	}

	var publishedAt *time.Time
	if req.PublishedAt != "" {
		t, err := time.Parse(time.RFC3339, req.PublishedAt)
		if err != nil {
			return nil, apperror.BadRequest("publishedAt must be an RFC3339 timestamp")
		}
		publishedAt = &t
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, apperror.BadRequest("Expected multipart form data")
	}

	cover, err := optionalImageFile(form, "coverImage")
	if err != nil {
		return nil, err
	}

	contentHeaders := form.File["contentImages"]
	if len(contentHeaders) > maxContentImages {
		return nil, apperror.BadRequest("At most 10 content images are allowed")
	}
	contentImages := make([]domain.FileUpload, 0, len(contentHeaders))
	for _, header := range contentHeaders {
		img, err := readImageFile(header)
		if err != nil {
			return nil, err
		}
		contentImages = append(contentImages, *img)
	}

	skillIDs := req.SkillIDs
	if skillIDs == nil {
		skillIDs = []string{}
	}

	return &domain.ProjectInput{
		Project: &domain.Project{
			Title:       req.Title,
			Slug:        req.Slug,
			Description: req.Description,
			Content:     req.Content,
			Published:   req.Published,
			Highlighted: req.Highlighted,
			PublishedAt: publishedAt,
		},
		SkillIDs:      skillIDs,
		CoverImage:    cover,
		ContentImages: contentImages,
	}, nil
}
