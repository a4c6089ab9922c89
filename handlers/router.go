package handlers

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templatesFS embed.FS

// NewRouter wires every route onto a gin engine. Templates are
// embedded so rendering works regardless of the working directory.
func NewRouter(h *Handler) *gin.Engine {
	router := gin.Default()

	// CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(config))

	router.Use(CountRequests())

	router.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	router.GET("/", h.Index)

	router.GET("/register", h.RegisterPage)
	router.POST("/register", h.Register)
	router.GET("/login", h.LoginPage)
	router.POST("/login", h.Login)

	router.GET("/courses", h.GetCourses)
	router.POST("/courses", h.CreateCourse)

	router.GET("/quiz/:courseId", h.GetQuizQuestions)
	router.POST("/quiz/:courseId", h.SubmitQuiz)

	router.GET("/profile", h.RequireAuth(), h.Profile)
	router.GET("/api/profile", h.RequireAuth(), h.APIProfile)

	router.GET("/metrics", Metrics())

	return router
}

// Index renders the landing page.
func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}
