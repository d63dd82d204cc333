package issues

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bytebender77/AI-CitySense/internal/geo"
	"github.com/bytebender77/AI-CitySense/internal/issues/display"
	"github.com/bytebender77/AI-CitySense/internal/server/respond"
)

// Handler exposes the analysis API.
type Handler struct {
	svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers the session and analysis routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/sessions", h.createSession)
	rg.POST("/sessions/:sessionId/analyses", h.analyze)
	rg.GET("/sessions/:sessionId/analyses", h.listAnalyses)
	rg.GET("/sessions/:sessionId/stats", h.stats)
}

type analyzeRequest struct {
	Image       string        `json:"image"`
	Video       string        `json:"video"`
	Audio       string        `json:"audio"`
	Description string        `json:"description"`
	Location    *geo.Location `json:"location"`
}

// presentationView carries the derived display facts for one analysis so the
// browser can style the result without reimplementing the rules.
type presentationView struct {
	SeverityBand  display.Band  `json:"severityBand"`
	CategoryBadge display.Badge `json:"categoryBadge"`
	ScoreBarWidth int           `json:"scoreBarWidthPercent"`
}

type analysisView struct {
	IssueAnalysis
	Presentation presentationView `json:"presentation"`
}

type analyzeResponse struct {
	SessionID string       `json:"sessionId"`
	Analysis  analysisView `json:"analysis"`
	Stats     SessionStats `json:"stats"`
}

type historyResponse struct {
	SessionID string         `json:"sessionId"`
	Analyses  []analysisView `json:"analyses"`
}

type statsResponse struct {
	SessionID string       `json:"sessionId"`
	Stats     SessionStats `json:"stats"`
}

func (h *Handler) createSession(c *gin.Context) {
	id, err := h.svc.CreateSession(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "Unexpected server error", nil)
		return
	}
	respond.JSON(c, http.StatusCreated, gin.H{"sessionId": id})
}

func (h *Handler) analyze(c *gin.Context) {
	sessionID := c.Param("sessionId")

	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "invalid request body", nil)
		return
	}

	sub := Submission{
		Image:       req.Image,
		Video:       req.Video,
		Audio:       req.Audio,
		Description: req.Description,
		Location:    req.Location,
	}

	result, history, err := h.svc.Analyze(c.Request.Context(), sessionID, sub)
	if err != nil {
		writeAnalyzeError(c, err)
		return
	}

	respond.OK(c, analyzeResponse{
		SessionID: sessionID,
		Analysis:  present(result),
		Stats:     Stats(history),
	})
}

func (h *Handler) listAnalyses(c *gin.Context) {
	sessionID := c.Param("sessionId")
	history, err := h.svc.Snapshot(c.Request.Context(), sessionID)
	if err != nil {
		writeAnalyzeError(c, err)
		return
	}

	views := make([]analysisView, 0, len(history))
	for _, entry := range history {
		views = append(views, present(entry))
	}
	respond.OK(c, historyResponse{SessionID: sessionID, Analyses: views})
}

func (h *Handler) stats(c *gin.Context) {
	sessionID := c.Param("sessionId")
	history, err := h.svc.Snapshot(c.Request.Context(), sessionID)
	if err != nil {
		writeAnalyzeError(c, err)
		return
	}
	respond.OK(c, statsResponse{SessionID: sessionID, Stats: Stats(history)})
}

func present(a IssueAnalysis) analysisView {
	return analysisView{
		IssueAnalysis: a,
		Presentation: presentationView{
			SeverityBand:  display.SeverityBand(a.SeverityScore),
			CategoryBadge: display.CategoryBadge(a.IssueType),
			ScoreBarWidth: display.ScoreBarWidth(a.SeverityScore),
		},
	}
}

func writeAnalyzeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNoInput):
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "Please upload at least one image, video, audio, or provide text description", nil)
	case errors.Is(err, ErrVideoTooLarge):
		respond.Error(c, http.StatusBadRequest, ErrorCodeMediaSize, "Video is too large. Please upload a smaller clip.", nil)
	case errors.Is(err, ErrInvalidLocation):
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "Location coordinates are invalid", nil)
	case errors.Is(err, ErrSessionNotFound):
		respond.Error(c, http.StatusNotFound, ErrorCodeNotFound, "Session not found", nil)
	case errors.Is(err, ErrAnalysisInFlight):
		respond.Error(c, http.StatusConflict, ErrorCodeInFlight, "An analysis is already in progress for this session", nil)
	case errors.Is(err, ErrParse), errors.Is(err, ErrUnavailable):
		// Every backend failure collapses to one generic message.
		respond.Error(c, http.StatusBadGateway, ErrorCodeUnavailable, UnavailableMessage, nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal", "Unexpected server error", nil)
	}
}
