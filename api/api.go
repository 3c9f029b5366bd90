// Package api serves a portfolio as a JSON HTTP API.
//
// Amounts are JSON numbers, dates are YYYY-MM-DD strings. Errors are
// answered as {"error": "..."}: 400 for invalid input and 404 for unknown
// ids. A failed write is logged by the store and the updated collection is
// still returned.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/etnz/estate"
	"github.com/etnz/estate/config"
	"github.com/etnz/estate/store"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// Handler serves the API routes on a Store.
type Handler struct {
	store *store.Store
	now   func() time.Time
}

// NewHandler creates a handler on s. A nil now means time.Now.
func NewHandler(s *store.Store, now func() time.Time) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{store: s, now: now}
}

// NewRouter returns the gin engine serving every route of h.
func NewRouter(h *Handler, cfg config.ServerConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	origins := cfg.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	corsConfig := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders: []string{"Origin", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}
	if len(origins) == 1 && origins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
	}
	r.Use(cors.New(corsConfig))

	r.GET("/health", h.health)

	api := r.Group("/api")
	{
		api.GET("/summary", h.GetSummary)
		api.GET("/dashboard", h.GetDashboard)

		api.GET("/properties", h.GetProperties)
		api.POST("/properties", h.CreateProperty)
		api.GET("/properties/:id", h.GetProperty)
		api.DELETE("/properties/:id", h.DeleteProperty)

		api.GET("/renovations", h.GetRenovations)
		api.POST("/renovations", h.CreateRenovation)
		api.GET("/renovations/filters", h.GetFilters)
		api.GET("/renovations/:id", h.GetRenovation)
		api.PUT("/renovations/:id/status", h.UpdateStatus)
		api.DELETE("/renovations/:id", h.DeleteRenovation)

		api.GET("/onboarded", h.GetOnboarded)
		api.PUT("/onboarded", h.SetOnboarded)
		api.DELETE("/onboarded", h.ResetOnboarding)
		api.DELETE("/data", h.ClearData)
	}
	return r
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) load(c *gin.Context) (estate.Properties, estate.Renovations) {
	ctx := c.Request.Context()
	return h.store.LoadProperties(ctx).Value, h.store.LoadRenovations(ctx).Value
}

// GetSummary returns every portfolio figure.
func (h *Handler) GetSummary(c *gin.Context) {
	ps, rs := h.load(c)
	c.JSON(http.StatusOK, estate.NewSummary(ps, rs))
}

// GetDashboard returns the summary with the greeting, the attention list and
// a row per property.
func (h *Handler) GetDashboard(c *gin.Context) {
	ps, rs := h.load(c)
	c.JSON(http.StatusOK, estate.NewDashboard(ps, rs, h.now()))
}

// GetProperties returns the properties in order.
func (h *Handler) GetProperties(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.LoadProperties(c.Request.Context()).Value)
}

// GetProperty returns a property with its open renovations.
func (h *Handler) GetProperty(c *gin.Context) {
	ps, rs := h.load(c)
	p, ok := ps.Find(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"property":    p,
		"renovations": rs.ForProperty(p.ID),
	})
}

// field is a form value posted either as a JSON string or as a bare number.
// Numbers are rounded to whole units.
type field string

func (f *field) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = field(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("want a string or a number, got %s", b)
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return err
	}
	*f = field(d.Round(0).String())
	return nil
}

// propertyRequest is the JSON form of estate.PropertyForm.
type propertyRequest struct {
	Name            string `json:"name"`
	Address         string `json:"address"`
	Type            string `json:"type"`
	PurchasePrice   field  `json:"purchasePrice"`
	CurrentValue    field  `json:"currentValue"`
	MonthlyRent     field  `json:"monthlyRent"`
	MonthlyExpenses field  `json:"monthlyExpenses"`
	Sqft            field  `json:"sqft"`
	Units           field  `json:"units"`
}

func (r propertyRequest) form() estate.PropertyForm {
	return estate.PropertyForm{
		Name:            r.Name,
		Address:         r.Address,
		Type:            r.Type,
		PurchasePrice:   string(r.PurchasePrice),
		CurrentValue:    string(r.CurrentValue),
		MonthlyRent:     string(r.MonthlyRent),
		MonthlyExpenses: string(r.MonthlyExpenses),
		Sqft:            string(r.Sqft),
		Units:           string(r.Units),
	}
}

// CreateProperty validates a property form and appends the property.
func (h *Handler) CreateProperty(c *gin.Context) {
	var req propertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := req.form().Property(h.now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ps, _ := h.store.AddProperty(c.Request.Context(), p)
	c.JSON(http.StatusCreated, gin.H{"property": p, "properties": ps})
}

// DeleteProperty removes a property, its renovations are kept.
func (h *Handler) DeleteProperty(c *gin.Context) {
	ps, _, err := h.store.RemoveProperty(c.Request.Context(), c.Param("id"))
	if errors.Is(err, estate.ErrUnknownProperty) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ps)
}

// GetRenovations returns the renovations selected by the filter and property
// query parameters.
func (h *Handler) GetRenovations(c *gin.Context) {
	k, err := estate.ParseFilterKey(c.Query("filter"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rs := h.store.LoadRenovations(c.Request.Context()).Value
	if id := c.Query("property"); id != "" {
		rs = rs.ForProperty(id)
	}
	c.JSON(http.StatusOK, rs.Filter(k))
}

// GetFilters returns the filter chips with their counts.
func (h *Handler) GetFilters(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.LoadRenovations(c.Request.Context()).Value.FilterChips())
}

// GetRenovation returns a renovation.
func (h *Handler) GetRenovation(c *gin.Context) {
	ps, rs := h.load(c)
	r, ok := rs.Find(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Renovation not found"})
		return
	}
	c.JSON(http.StatusOK, estate.Attention{Renovation: r, PropertyName: ps.NameOf(r.PropertyID)})
}

// renovationRequest is the JSON form of estate.RenovationForm.
type renovationRequest struct {
	PropertyID    string `json:"propertyId"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	EstimatedCost field  `json:"estimatedCost"`
	Priority      string `json:"priority"`
	Category      string `json:"category"`
	DueDate       string `json:"dueDate"`
	Notes         string `json:"notes"`
}

func (r renovationRequest) form() estate.RenovationForm {
	return estate.RenovationForm{
		PropertyID:    r.PropertyID,
		Title:         r.Title,
		Description:   r.Description,
		EstimatedCost: string(r.EstimatedCost),
		Priority:      r.Priority,
		Category:      r.Category,
		DueDate:       r.DueDate,
		Notes:         r.Notes,
	}
}

// CreateRenovation validates a renovation form and appends the renovation.
func (h *Handler) CreateRenovation(c *gin.Context) {
	var req renovationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	r, err := req.form().Renovation(h.now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rs, _ := h.store.AddRenovation(c.Request.Context(), r)
	c.JSON(http.StatusCreated, gin.H{"renovation": r, "renovations": rs})
}

type statusRequest struct {
	Status     estate.Status `json:"status" binding:"required"`
	ActualCost *estate.Money `json:"actualCost"`
}

// UpdateStatus moves a renovation to another status.
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rs, _, err := h.store.ChangeStatus(c.Request.Context(), c.Param("id"), req.Status, req.ActualCost)
	if errors.Is(err, estate.ErrUnknownRenovation) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	r, _ := rs.Find(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"renovation": r, "renovations": rs})
}

// DeleteRenovation removes a renovation.
func (h *Handler) DeleteRenovation(c *gin.Context) {
	rs, _, err := h.store.RemoveRenovation(c.Request.Context(), c.Param("id"))
	if errors.Is(err, estate.ErrUnknownRenovation) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rs)
}

// GetOnboarded reports whether the onboarding was completed.
func (h *Handler) GetOnboarded(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"onboarded": h.store.Onboarded(c.Request.Context())})
}

// SetOnboarded records that the onboarding was completed.
func (h *Handler) SetOnboarded(c *gin.Context) {
	o := h.store.SetOnboarded(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"onboarded": true, "saved": o == store.Saved})
}

// ResetOnboarding forgets that the onboarding was completed.
func (h *Handler) ResetOnboarding(c *gin.Context) {
	o := h.store.ResetOnboarding(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"onboarded": false, "saved": o == store.Saved})
}

// ClearData removes every entry.
func (h *Handler) ClearData(c *gin.Context) {
	o := h.store.Clear(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"cleared": true, "saved": o == store.Saved})
}
