package interfaces

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"opportunity-finder/domain"
	"opportunity-finder/infrastructure"
)

// CredentialChecker verifies an admin secret. The static shared
// password lives in infrastructure; the gate only sees this interface.
type CredentialChecker interface {
	Verify(password string) bool
}

type HTTPHandler struct {
	Store  domain.Storage
	Creds  CredentialChecker
	Events *infrastructure.RabbitMQ
}

func NewHTTPHandler(router *gin.Engine, store domain.Storage, creds CredentialChecker, events *infrastructure.RabbitMQ) {
	h := &HTTPHandler{Store: store, Creds: creds, Events: events}

	api := router.Group("/api")

	api.POST("/admin/login", h.Login)
	api.POST("/admin/logout", h.Logout)
	api.GET("/admin/check", h.CheckSession)

	api.POST("/visitor/increment", h.IncrementVisitor)
	api.GET("/visitor/count", h.GetVisitorCount)

	api.GET("/opportunities", h.ListOpportunities)
	api.GET("/opportunities/search", h.SearchOpportunities)
	api.GET("/opportunities/:id", h.GetOpportunity)

	admin := api.Group("/opportunities")
	admin.Use(RequireAdmin())
	admin.POST("", h.CreateOpportunity)
	admin.PATCH("/:id", h.UpdateOpportunity)
	admin.DELETE("/:id", h.DeleteOpportunity)
}

// Login sets the admin session flag after a successful password check.
func (h *HTTPHandler) Login(c *gin.Context) {
	var req struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.Creds.Verify(req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}

	session := sessions.Default(c)
	session.Set(sessionKeyIsAdmin, true)
	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout clears the session unconditionally.
func (h *HTTPHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{MaxAge: -1, Path: "/"})
	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to logout"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *HTTPHandler) CheckSession(c *gin.Context) {
	session := sessions.Default(c)
	isAdmin, _ := session.Get(sessionKeyIsAdmin).(bool)
	c.JSON(http.StatusOK, gin.H{"isAdmin": isAdmin})
}

func (h *HTTPHandler) IncrementVisitor(c *gin.Context) {
	count, err := h.Store.IncrementVisitorCount()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to increment visitor count"})
		return
	}
	visitorGauge.Set(float64(count))
	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (h *HTTPHandler) GetVisitorCount(c *gin.Context) {
	count, err := h.Store.GetVisitorCount()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get visitor count"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// ListOpportunities returns all listings narrowed by the per-field
// membership filters from the query string. Keys may repeat to select
// several values in one category.
func (h *HTTPHandler) ListOpportunities(c *gin.Context) {
	opps, err := h.Store.GetAllOpportunities()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch opportunities"})
		return
	}

	filter := domain.ListFilter{
		Funding:         c.QueryArray("funding"),
		Competitiveness: c.QueryArray("competitiveness"),
		Languages:       c.QueryArray("language"),
		Countries:       c.QueryArray("country"),
		CareerAreas:     c.QueryArray("careerArea"),
	}
	c.JSON(http.StatusOK, filter.Apply(opps))
}

// SearchOpportunities runs the full query engine: free-text search
// plus facet selections with display-label normalization.
func (h *HTTPHandler) SearchOpportunities(c *gin.Context) {
	opps, err := h.Store.GetAllOpportunities()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch opportunities"})
		return
	}

	query := domain.Query{
		Search:          c.Query("q"),
		Funding:         c.QueryArray("funding"),
		Competitiveness: c.QueryArray("competitiveness"),
		Languages:       c.QueryArray("language"),
		Countries:       c.QueryArray("country"),
		CareerAreas:     c.QueryArray("careerArea"),
	}
	c.JSON(http.StatusOK, query.Apply(opps))
}

func (h *HTTPHandler) GetOpportunity(c *gin.Context) {
	opp, err := h.Store.GetOpportunityByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch opportunity"})
		return
	}
	if opp == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Opportunity not found"})
		return
	}
	c.JSON(http.StatusOK, opp)
}

func (h *HTTPHandler) CreateOpportunity(c *gin.Context) {
	var req domain.InsertOpportunity
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid opportunity data"})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	opp, err := h.Store.CreateOpportunity(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create opportunity"})
		return
	}

	h.publishEvent("created", opp.ID, opp.Title)
	c.JSON(http.StatusCreated, opp)
}

func (h *HTTPHandler) UpdateOpportunity(c *gin.Context) {
	var req domain.UpdateOpportunity
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid opportunity data"})
		return
	}

	opp, err := h.Store.UpdateOpportunity(c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update opportunity"})
		return
	}
	if opp == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Opportunity not found"})
		return
	}

	h.publishEvent("updated", opp.ID, opp.Title)
	c.JSON(http.StatusOK, opp)
}

func (h *HTTPHandler) DeleteOpportunity(c *gin.Context) {
	id := c.Param("id")
	deleted, err := h.Store.DeleteOpportunity(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete opportunity"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Opportunity not found"})
		return
	}

	h.publishEvent("deleted", id, "")
	c.Status(http.StatusNoContent)
}

// publishEvent fans a listing change out to the broker when one is
// configured. Publish failures never fail the request.
func (h *HTTPHandler) publishEvent(action, id, title string) {
	event := infrastructure.ListingEvent{Action: action, ID: id, Title: title}
	if err := h.Events.PublishEvent(event); err != nil {
		logrus.WithError(err).WithField("action", action).Warn("failed to publish listing event")
	}
}
