package engine

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobtrack-backend/internal/insights"
	"jobtrack-backend/internal/shared/server/middleware"
	"jobtrack-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the engine service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches engine routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/home/briefing", h.getBriefing)
	rg.POST("/chat/query", h.postQuery)
	rg.POST("/insights", h.postInsight)
}

func (h *Handler) getBriefing(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
		return
	}

	pendingAnalysis, _ := strconv.ParseBool(c.Query("pendingAnalysis"))

	briefing, err := h.Svc.Brief(c.Request.Context(), userID, pendingAnalysis)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to build briefing", nil)
		return
	}
	c.Set("moment", string(briefing.Moment.Kind))
	respond.OK(c, briefing)
}

type queryRequest struct {
	Question            string `json:"question" binding:"required"`
	HasInterviewContext bool   `json:"hasInterviewContext"`
	HasAnalysisContext  bool   `json:"hasAnalysisContext"`
}

func (h *Handler) postQuery(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
		return
	}

	var req queryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "question is required", nil)
		return
	}

	result, err := h.Svc.Query(c.Request.Context(), userID, req.Question, req.HasInterviewContext, req.HasAnalysisContext)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to route question", nil)
		return
	}
	respond.OK(c, result)
}

func (h *Handler) postInsight(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
		return
	}

	var intake insights.Intake
	if err := c.ShouldBindJSON(&intake); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid intake payload", nil)
		return
	}

	respond.OK(c, h.Svc.ClassifyInsight(intake))
}
