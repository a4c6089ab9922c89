package handlers

import (
	"log"
	"net/http"
	"os"

	"github.com/anirudh21-ch/elearn/auth"
	"github.com/anirudh21-ch/elearn/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
	Role     string `json:"role" form:"role"`
}

type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// RegisterPage renders the registration form.
func (h *Handler) RegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", nil)
}

// Register creates a new user. Admin cannot be self-assigned; the
// password is stored as a bcrypt hash and never serialized back.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	bindInput(c, &req)

	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password required"})
		return
	}

	role := auth.NormalizeRegistrationRole(req.Role)
	if role == models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "creating admin via registration is not allowed"})
		return
	}
	if !auth.AllowedRegistrationRole(role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role"})
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("username = ?", req.Username).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user exists"})
		return
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
		return
	}

	user := models.User{
		Username:     req.Username,
		PasswordHash: string(hashedBytes),
		Role:         role,
	}
	if err := h.db.Create(&user).Error; err != nil {
		// Unique index races surface here on concurrent registration.
		c.JSON(http.StatusBadRequest, gin.H{"error": "user exists"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"msg": "registered", "user": user})
}

// LoginPage renders the login form.
func (h *Handler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", nil)
}

// Login checks credentials and issues a session token. Unknown user
// and wrong password produce the same response.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	bindInput(c, &req)

	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	var user models.User
	if err := h.db.Where("username = ?", req.Username).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := h.tokens.Issue(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, AuthResponse{Token: token, User: user})
}

// Profile renders the profile page. The view is built from the token
// claims alone; the store is never re-read, so it shows
// issuance-time state.
func (h *Handler) Profile(c *gin.Context) {
	claims := contextClaims(c)
	c.HTML(http.StatusOK, "profile.html", gin.H{
		"ID":       claims.Subject,
		"Username": claims.Username,
		"Role":     claims.Role,
	})
}

// APIProfile is the JSON variant of Profile.
func (h *Handler) APIProfile(c *gin.Context) {
	claims := contextClaims(c)
	c.JSON(http.StatusOK, gin.H{
		"id":       claims.Subject,
		"username": claims.Username,
		"role":     claims.Role,
	})
}

// SeedAdminUser ensures the bootstrap admin exists. Credentials come
// from ADMIN_USERNAME/ADMIN_PASSWORD, defaulting to admin/admin for
// local development.
func (h *Handler) SeedAdminUser() {
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin"
	}

	var count int64
	h.db.Model(&models.User{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		return
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("❌ Failed to hash admin password: %v", err)
		return
	}

	admin := models.User{
		Username:     username,
		PasswordHash: string(hashedBytes),
		Role:         models.RoleAdmin,
	}
	if err := h.db.Create(&admin).Error; err != nil {
		log.Printf("❌ Failed to create admin user: %v", err)
		return
	}
	log.Println("✅ Admin user seeded successfully")
}
