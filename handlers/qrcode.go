package handlers

import (
	"errors"
	"net/http"

	businessRepo "salonpro/database/repository/business"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
)

// QRCodeHandler serves the per-business booking-link QR image.
type QRCodeHandler struct {
	Businesses businessRepo.BusinessRepository
}

// NewQRCodeHandler creates a QRCodeHandler.
func NewQRCodeHandler(repo businessRepo.BusinessRepository) *QRCodeHandler {
	return &QRCodeHandler{Businesses: repo}
}

// GetQRCodeHandler handles GET /api/qr-code/:businessId. It renders the
// business's stored booking URL as a PNG.
func (h *QRCodeHandler) GetQRCodeHandler(c *gin.Context) {
	businessID := c.Param("businessId")

	biz, err := h.Businesses.GetByID(businessID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load business"})
		return
	}

	png, err := qrcode.Encode(biz.QRCodeData, qrcode.Medium, 256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate QR code"})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
