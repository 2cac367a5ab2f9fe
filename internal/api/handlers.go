package api

import (
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/papparazzi76/casa-con-avatar-3d-sub000/internal/database"
	"github.com/papparazzi76/casa-con-avatar-3d-sub000/internal/listings"
	"github.com/papparazzi76/casa-con-avatar-3d-sub000/internal/models"
	"github.com/papparazzi76/casa-con-avatar-3d-sub000/internal/postal"
	"github.com/papparazzi76/casa-con-avatar-3d-sub000/internal/queue"
	"github.com/papparazzi76/casa-con-avatar-3d-sub000/internal/valuation"
)

type Handler struct {
	db       *database.Database
	logger   *logrus.Logger
	valuator *valuation.Valuator
	queue    *queue.ListingQueue
}

type IngestRequest struct {
	Anuncios []models.RawListing `json:"anuncios" binding:"required"`
}

func NewHandler(db *database.Database, valuator *valuation.Valuator, ingestQueue *queue.ListingQueue, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	return &Handler{
		db:       db,
		logger:   logger,
		valuator: valuator,
		queue:    ingestQueue,
	}
}

// GetValuation runs the postal-code valuation pipeline. The pipeline never
// fails outright: callers branch on the result's status fields.
func (h *Handler) GetValuation(c *gin.Context) {
	var target models.PropertyInfo
	if err := c.ShouldBindJSON(&target); err != nil {
		h.logger.WithError(err).Error("Failed to parse valuation request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request parameters"})
		return
	}

	result := h.valuator.GetPropertyValuation(c.Request.Context(), target)
	c.JSON(http.StatusOK, result)
}

// GetZoneValuation runs the named-zone valuation pipeline over stored
// adverts.
func (h *Handler) GetZoneValuation(c *gin.Context) {
	var target models.PropertyInfo
	if err := c.ShouldBindJSON(&target); err != nil {
		h.logger.WithError(err).Error("Failed to parse zone valuation request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request parameters"})
		return
	}

	result := h.valuator.GetZoneValuation(c.Request.Context(), target)
	c.JSON(http.StatusOK, result)
}

// GetPostalCodeInfo looks up directory data for one postal code.
func (h *Handler) GetPostalCodeInfo(c *gin.Context) {
	code := c.Param("codigo")
	info := postal.GetPostalCodeInfo(code)
	if info == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown postal code"})
		return
	}

	response := gin.H{"info": info}
	if base, ok := postal.BasePriceM2(code); ok {
		response["precio_base_m2"] = base
	}
	c.JSON(http.StatusOK, response)
}

// GetZones returns the zone directory.
func (h *Handler) GetZones(c *gin.Context) {
	c.JSON(http.StatusOK, postal.AllZones())
}

// GetZoneStats aggregates price-per-m2 statistics over the stored adverts
// of one zone. Stats are computed from parsed rows because the store keeps
// prices as free text.
func (h *Handler) GetZoneStats(c *gin.Context) {
	zone := postal.FindZoneByName(c.Param("zona"))
	if zone == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown zone"})
		return
	}

	rows, err := h.db.GetListingsByZone(zone)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get zone listings")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get zone listings"})
		return
	}

	parsed := listings.ParseAll(rows)
	c.JSON(http.StatusOK, gin.H{
		"zona":         zone,
		"anuncios":     len(rows),
		"estadisticas": valuation.ComputeStats(parsed),
	})
}

// GetListings returns stored adverts, optionally filtered by zone.
func (h *Handler) GetListings(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "50")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		limit = 50
	}

	zone := c.Query("zona")
	rows, err := h.db.GetAllListings(zone, limit)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get listings")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get listings"})
		return
	}

	c.JSON(http.StatusOK, rows)
}

// GetListing returns one stored advert by id.
func (h *Handler) GetListing(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing id"})
		return
	}

	listing, err := h.db.GetListing(id)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get listing")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get listing"})
		return
	}
	if listing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return
	}

	c.JSON(http.StatusOK, listing)
}

// IngestListings queues a batch of advert rows for the batch processor.
func (h *Handler) IngestListings(c *gin.Context) {
	var req IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Failed to parse ingest request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request parameters"})
		return
	}

	batch := make([]*models.RawListing, 0, len(req.Anuncios))
	for i := range req.Anuncios {
		batch = append(batch, &req.Anuncios[i])
	}

	if err := h.queue.Push(batch); err != nil {
		h.logger.WithError(err).Error("Failed to queue listings batch")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Ingest queue unavailable"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"status":  "success",
		"message": "Listings batch queued",
		"queued":  len(batch),
	})
}

// DeleteListing removes a stored advert.
func (h *Handler) DeleteListing(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing id"})
		return
	}

	if err := h.db.DeleteListing(id); err != nil {
		h.logger.WithError(err).Error("Failed to delete listing")
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "Listing deleted"})
}
