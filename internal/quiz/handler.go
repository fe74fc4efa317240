package quiz

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"career-backend/internal/shared/server/respond"
)

// Handler exposes the quiz endpoints.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches quiz routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	tests := rg.Group("/tests")
	tests.POST("/generate", h.generate)
	tests.POST("/evaluate", h.evaluate)
}

type generateRequest struct {
	UserID       string `json:"user_id" binding:"required"`
	Category     string `json:"category"`
	NumQuestions int    `json:"num_questions"`
}

func (h *Handler) generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}

	test, err := h.Svc.Generate(req.UserID, req.Category, req.NumQuestions)
	if err != nil {
		if errors.Is(err, ErrUnknownCategory) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "unknown category", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to generate test", nil)
		return
	}
	respond.OK(c, test)
}

type evaluateRequest struct {
	UserID      string                       `json:"user_id"`
	TestData    GeneratedTest                `json:"test_data" binding:"required"`
	UserAnswers map[string]map[string]string `json:"user_answers" binding:"required"`
}

func (h *Handler) evaluate(c *gin.Context) {
	var req evaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}
	respond.OK(c, h.Svc.Evaluate(req.TestData, req.UserAnswers))
}
