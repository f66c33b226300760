package handlers

import (
	"errors"
	"net/http"

	"commune-cms/models"
	"commune-cms/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SiteHandler struct {
	siteService services.SiteService
}

func NewSiteHandler(siteService services.SiteService) *SiteHandler {
	return &SiteHandler{siteService: siteService}
}

func (h *SiteHandler) GetSites(c *gin.Context) {
	sites, err := h.siteService.GetSites()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, sites)
}

// GetSite resolves by UUID or subdomain.
func (h *SiteHandler) GetSite(c *gin.Context) {
	identifier := c.Param("siteId")
	if identifier == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Site identifier required"})
		return
	}

	site, err := h.siteService.GetSite(identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Site not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, site)
}

func (h *SiteHandler) CreateSite(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	var req models.CreateSiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	site, err := h.siteService.CreateSite(req, userID)
	if err != nil {
		if errors.Is(err, services.ErrSubdomainTaken) {
			c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, site)
}

func (h *SiteHandler) CreateSpace(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	siteID, err := uuid.Parse(c.Param("siteId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid site ID"})
		return
	}

	var req models.CreateSpaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	space, err := h.siteService.CreateSpace(siteID, req, userID)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Site not found"})
		case errors.Is(err, services.ErrInvalidSlug):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		case errors.Is(err, services.ErrSlugTaken):
			c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, space)
}

// ReconcileSpaces rebuilds the denormalized space_ids array from the spaces
// table and returns the refreshed site.
func (h *SiteHandler) ReconcileSpaces(c *gin.Context) {
	siteID, err := uuid.Parse(c.Param("siteId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid site ID"})
		return
	}

	site, err := h.siteService.ReconcileSpaces(siteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Site not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, site)
}

func (h *SiteHandler) GetSpaces(c *gin.Context) {
	siteID, err := uuid.Parse(c.Param("siteId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid site ID"})
		return
	}

	spaces, err := h.siteService.GetSpaces(siteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Site not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, spaces)
}
