package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Real-Estate-Insight-Platform-Project/Web-App-sub000/httputil"
	"github.com/Real-Estate-Insight-Platform-Project/Web-App-sub000/models"
	"github.com/Real-Estate-Insight-Platform-Project/Web-App-sub000/storage"
)

// Recommender is the single contract the HTTP layer has with the core:
// preferences in, ranked recommendation envelope out.
type Recommender interface {
	Recommend(ctx context.Context, prefs models.Preferences) *models.RecommendationEnvelope
}

// RecommendationHandler owns the JSON boundary: it validates preferences
// before the pipeline runs and shapes every reply as a well-formed envelope.
type RecommendationHandler struct {
	service   Recommender
	runs      *storage.RunStore
	clients   *httputil.Clients
	origin    string
	userAgent string
}

func NewRecommendationHandler(service Recommender, runs *storage.RunStore, clients *httputil.Clients, origin, userAgent string) *RecommendationHandler {
	return &RecommendationHandler{
		service:   service,
		runs:      runs,
		clients:   clients,
		origin:    origin,
		userAgent: userAgent,
	}
}

// Recommend handles POST /api/v1/recommendations.
func (h *RecommendationHandler) Recommend(c *gin.Context) {
	var prefs models.Preferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request body: " + err.Error(),
		})
		return
	}

	if err := prefs.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	env := h.service.Recommend(c.Request.Context(), prefs)
	if !env.Success {
		c.JSON(http.StatusBadGateway, gin.H{
			"success": false,
			"error":   "Failed to generate recommendations",
			"message": env.Error,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"recommendations": env.Recommendations,
			"totalFound":      env.TotalFound,
			"searchUrl":       env.SearchURL,
			"generatedAt":     env.GeneratedAt,
			"preferences":     env.Preferences,
		},
	})
}

// Runs handles GET /api/v1/runs — recent request bookkeeping for operators.
func (h *RecommendationHandler) Runs(c *gin.Context) {
	if h.runs == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": "run log not configured"})
		return
	}

	runs, err := h.runs.RecentRuns(50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to load runs: " + err.Error()})
		return
	}
	if runs == nil {
		runs = []models.SearchRun{}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": runs})
}

// Health handles GET /health.
func (h *RecommendationHandler) Health(c *gin.Context) {
	siteReachable := false
	if h.clients != nil {
		siteReachable = h.clients.ProbeOrigin(h.origin, h.userAgent)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":         "healthy",
		"service":        "property-recommender",
		"site_reachable": siteReachable,
	})
}
