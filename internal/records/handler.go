package records

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"jobtrack-backend/internal/shared/server/middleware"
	"jobtrack-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the records repo. The engine only reads
// records; this surface is how the rest of the product writes them.
type Handler struct {
	Repo Repo
}

// NewHandler constructs a Handler.
func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

// RegisterRoutes attaches record CRUD routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/applications", h.listApplications)
	rg.POST("/applications", h.createApplication)
	rg.PATCH("/applications/:id/status", h.updateApplicationStatus)
	rg.GET("/analyses", h.listAnalyses)
	rg.POST("/analyses", h.createAnalysis)
	rg.GET("/interviews", h.listInterviews)
	rg.POST("/interviews", h.createInterview)
}

func (h *Handler) listApplications(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	apps, err := h.Repo.ListApplicationsByUser(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list applications", nil)
		return
	}
	respond.OK(c, gin.H{"applications": apps})
}

type createApplicationRequest struct {
	Company   string     `json:"company" binding:"required"`
	Title     string     `json:"title" binding:"required"`
	Status    string     `json:"status"`
	AppliedAt *time.Time `json:"appliedAt"`
}

func (h *Handler) createApplication(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req createApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "company and title are required", nil)
		return
	}
	status := req.Status
	if status == "" {
		status = StatusApplied
	}
	if !ValidStatus(status) {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unknown application status", nil)
		return
	}

	now := time.Now().UTC()
	appliedAt := now
	if req.AppliedAt != nil {
		appliedAt = req.AppliedAt.UTC()
	}
	app := Application{
		ID:        uuid.NewString(),
		UserID:    userID,
		Company:   req.Company,
		Title:     req.Title,
		Status:    status,
		AppliedAt: appliedAt,
		UpdatedAt: now,
	}
	if err := h.Repo.CreateApplication(c.Request.Context(), app); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create application", nil)
		return
	}
	respond.JSON(c, http.StatusCreated, app)
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) updateApplicationStatus(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	appID := c.Param("id")

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || !ValidStatus(req.Status) {
		respond.Error(c, http.StatusBadRequest, "validation_error", "a valid status is required", nil)
		return
	}

	err := h.Repo.UpdateApplicationStatus(c.Request.Context(), userID, appID, req.Status)
	switch {
	case err == nil:
		respond.OK(c, gin.H{"id": appID, "status": req.Status})
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "application not found", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update application", nil)
	}
}

func (h *Handler) listAnalyses(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	analyses, err := h.Repo.ListAnalysesByUser(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list analyses", nil)
		return
	}
	respond.OK(c, gin.H{"analyses": analyses})
}

type createAnalysisRequest struct {
	Recommendation string   `json:"recommendation" binding:"required"`
	Reasons        []string `json:"reasons"`
	Role           string   `json:"role"`
	Level          string   `json:"level"`
	Domain         string   `json:"domain"`
	Objective      string   `json:"objective"`
}

func (h *Handler) createAnalysis(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req createAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "recommendation is required", nil)
		return
	}

	analysis := CareerAnalysis{
		ID:             uuid.NewString(),
		UserID:         userID,
		Recommendation: req.Recommendation,
		Reasons:        req.Reasons,
		Role:           req.Role,
		Level:          req.Level,
		Domain:         req.Domain,
		Objective:      req.Objective,
		CreatedAt:      time.Now().UTC(),
	}
	if err := h.Repo.CreateAnalysis(c.Request.Context(), analysis); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to store analysis", nil)
		return
	}
	respond.JSON(c, http.StatusCreated, analysis)
}

func (h *Handler) listInterviews(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	sessions, err := h.Repo.ListInterviewSessionsByUser(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list interview sessions", nil)
		return
	}
	respond.OK(c, gin.H{"sessions": sessions})
}

type createInterviewRequest struct {
	Role         string     `json:"role" binding:"required"`
	Score        int        `json:"score"`
	Feedback     string     `json:"feedback"`
	Strengths    []string   `json:"strengths"`
	Improvements []string   `json:"improvements"`
	CompletedAt  *time.Time `json:"completedAt"`
}

func (h *Handler) createInterview(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req createInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "role is required", nil)
		return
	}
	if req.Score < 0 || req.Score > 100 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "score must be between 0 and 100", nil)
		return
	}

	completedAt := time.Now().UTC()
	if req.CompletedAt != nil {
		completedAt = req.CompletedAt.UTC()
	}
	session := InterviewSession{
		ID:           uuid.NewString(),
		UserID:       userID,
		Role:         req.Role,
		Score:        req.Score,
		Feedback:     req.Feedback,
		Strengths:    req.Strengths,
		Improvements: req.Improvements,
		CompletedAt:  completedAt,
	}
	if err := h.Repo.CreateInterviewSession(c.Request.Context(), session); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to store interview session", nil)
		return
	}
	respond.JSON(c, http.StatusCreated, session)
}
