package routes

import (
	"net/http"

	"portfolio-admin/config"
	adminapi "portfolio-admin/internal/api/admin"
	authapi "portfolio-admin/internal/api/auth"
	contactapi "portfolio-admin/internal/api/contact"
	profileapi "portfolio-admin/internal/api/profile"
	"portfolio-admin/internal/api/resources"
	"portfolio-admin/internal/api/sitesettings"
	"portfolio-admin/internal/api/uploads"
	"portfolio-admin/internal/app/http/middleware"
	"portfolio-admin/internal/auth"
	"portfolio-admin/internal/domain/portfolio"
	"portfolio-admin/internal/domain/users"
	"portfolio-admin/internal/infra/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Deps are the shared services handed to every handler.
type Deps struct {
	DB      *gorm.DB
	Config  *config.Config
	Tokens  *auth.TokenManager
	Storage *storage.Local
	Log     *zap.Logger
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.Use(middleware.RequestID(), middleware.SecurityHeaders(), middleware.Logger(d.Log))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.Static("/uploads", d.Storage.Root())

	contactH := contactapi.NewHandler(d.DB, d.Log)
	authH := authapi.NewHandler(d.DB, d.Tokens, d.Log)

	// Public site
	public := r.Group("/api")
	public.Use(middleware.SanitizeInput())
	public.POST("/contact", contactH.Submit)

	// Every admin call carries the public client key
	api := r.Group("/api/admin")
	api.Use(middleware.RequireAPIKey(d.Config.PublicAPIKey))
	api.POST("/login", authH.Login)

	// Authenticated admin
	admin := api.Group("/")
	admin.Use(middleware.AuthMiddleware(d.Tokens, d.DB), middleware.RequireRole(users.RoleAdmin))

	admin.POST("/logout", authH.Logout)
	admin.GET("/session", authH.Session)
	admin.POST("/change-password", authH.ChangePassword)

	resources.New[portfolio.Skill](d.DB, d.Log, "skill", "skills").Register(admin, "/skills")
	resources.New[portfolio.Technology](d.DB, d.Log, "technology", "technologies").Register(admin, "/technologies")
	resources.New[portfolio.Certification](d.DB, d.Log, "certification", "certifications").Register(admin, "/certifications")
	resources.New[portfolio.Product](d.DB, d.Log, "product", "products").Register(admin, "/products")
	resources.New[portfolio.Project](d.DB, d.Log, "project", "projects").Register(admin, "/projects")
	resources.New[portfolio.Experience](d.DB, d.Log, "experience", "experience").Register(admin, "/experience")
	resources.New[portfolio.Education](d.DB, d.Log, "education", "education").Register(admin, "/education")

	profileH := profileapi.NewHandler(d.DB, d.Log)
	admin.GET("/profile", profileH.Get)
	admin.PUT("/profile", profileH.Put)

	sitesettings.NewHandler(d.DB, d.Log).Register(admin, "/site-settings")

	admin.GET("/contact-submissions", contactH.List)
	admin.PUT("/contact-submissions", contactH.UpdateStatus)
	admin.DELETE("/contact-submissions", contactH.Delete)

	admin.POST("/upload", uploads.NewHandler(d.DB, d.Storage, d.Config.UploadMaxBytes, d.Log).Upload)
	admin.GET("/analytics", adminapi.NewHandler(d.DB, d.Log).Analytics)
}
