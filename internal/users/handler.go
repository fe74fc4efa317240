package users

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"career-backend/internal/shared/server/respond"
)

// Handler exposes signup, login and profile endpoints.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the auth and profile routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	auth.POST("/signup", h.signup)
	auth.POST("/login", h.login)
	rg.POST("/user/profile", h.saveProfile)
}

type signupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}

	user, err := h.Svc.Signup(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrExists) {
			respond.Error(c, http.StatusBadRequest, "user_exists", "User already exists", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to sign up", nil)
		return
	}
	respond.JSON(c, http.StatusCreated, gin.H{
		"message": "Signup successful",
		"email":   user.Email,
		"name":    user.Name,
	})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}

	user, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			respond.Error(c, http.StatusUnauthorized, "invalid_credentials", "Invalid credentials", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to log in", nil)
		return
	}
	respond.OK(c, gin.H{
		"message": "Login successful",
		"email":   user.Email,
		"name":    user.Name,
	})
}

type profileRequest struct {
	Email       string   `json:"email" binding:"required"`
	Age         int      `json:"age"`
	Gender      string   `json:"gender"`
	Education   string   `json:"education"`
	BoardScores string   `json:"boardScores"`
	Grades      string   `json:"grades"`
	ExamResults string   `json:"examResults"`
	Interests   []string `json:"interests"`
}

func (h *Handler) saveProfile(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}

	user, err := h.Svc.SaveProfile(c.Request.Context(), req.Email, Profile{
		Age:         req.Age,
		Gender:      req.Gender,
		Education:   req.Education,
		BoardScores: req.BoardScores,
		Grades:      req.Grades,
		ExamResults: req.ExamResults,
		Interests:   req.Interests,
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "user not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save profile", nil)
		return
	}
	respond.OK(c, gin.H{
		"message": "Profile saved",
		"profile": user.Profile,
	})
}
