package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-portfolio-backend/config"
	"go-portfolio-backend/internal/delivery/http/middleware"
	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/auth"
)

type RouterDeps struct {
	AuthUC          domain.AuthUsecase
	ProfileUC       domain.ProfileUsecase
	SkillUC         domain.SkillUsecase
	ExperienceUC    domain.ExperienceUsecase
	EducationUC     domain.EducationUsecase
	CertificationUC domain.CertificationUsecase
	ProjectUC       domain.ProjectUsecase
	UploadUC        domain.UploadUsecase
	Tokens          *auth.TokenManager
	Config          *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	// Identity is attached when a valid token is present; requests without
	// one stay anonymous and only see what handlers allow.
	r.Use(middleware.Authenticate(deps.Tokens))

	root := r.Group("")

	// Health Check
	root.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	protected := r.Group("")
	protected.Use(middleware.RequireAuth())

	NewAuthHandler(root, protected, deps.AuthUC)
	NewUserHandler(root, protected, deps.ProfileUC)
	NewSkillHandler(root, protected, deps.SkillUC)
	NewExperienceHandler(root, protected, deps.ExperienceUC)
	NewEducationHandler(root, protected, deps.EducationUC)
	NewCertificationHandler(root, protected, deps.CertificationUC)
	NewProjectHandler(root, protected, deps.ProjectUC)
	NewUploadHandler(protected, deps.UploadUC)

	return r
}
