package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"booklisting-backend/internal/auth"
	"booklisting-backend/internal/domains/listing/model"
	"booklisting-backend/internal/domains/listing/service"
	"booklisting-backend/internal/shared/middleware"
	"booklisting-backend/internal/shared/response"
)

const imageCacheControl = "public, max-age=31536000"

// Handler - HTTP Handler
type Handler struct {
	service service.ServiceInterface
	gate    *auth.Gate
}

// NewHandler - Constructor with DI
func NewHandler(service service.ServiceInterface, gate *auth.Gate) *Handler {
	return &Handler{
		service: service,
		gate:    gate,
	}
}

// ========================================
// PUBLIC READS
// ========================================

// Catalog - GET /
// With ?id= it returns that single listing in full, otherwise the public
// catalog without images or seller codes.
func (h *Handler) Catalog(c *gin.Context) {
	if id := c.Query("id"); id != "" {
		view, err := h.service.GetListing(c.Request.Context(), id)
		if handleError(c, err) {
			return
		}
		response.JSON(c, http.StatusOK, view)
		return
	}

	views, err := h.service.ListCatalog(c.Request.Context())
	if handleError(c, err) {
		return
	}
	response.JSON(c, http.StatusOK, views)
}

// Image - GET /image?id=
func (h *Handler) Image(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		response.BadRequest(c, "Missing ID")
		return
	}

	img, err := h.service.GetImage(c.Request.Context(), id)
	if handleError(c, err) {
		return
	}

	c.Header("Cache-Control", imageCacheControl)
	c.Data(http.StatusOK, img.MIMEType, img.Data)
}

// Stats - GET /stats
func (h *Handler) Stats(c *gin.Context) {
	summary, err := h.service.GetStats(c.Request.Context())
	if handleError(c, err) {
		return
	}
	response.JSON(c, http.StatusOK, summary)
}

// SellerLogin - POST /seller/login
// The code is the only credential; a wrong code simply matches nothing.
func (h *Handler) SellerLogin(c *gin.Context) {
	var req model.SellerLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid code")
		return
	}
	if err := req.Validate(); err != nil {
		handleError(c, model.ErrInvalidCode)
		return
	}

	views, err := h.service.ListBySellerCode(c.Request.Context(), req.Code)
	if handleError(c, err) {
		return
	}
	response.JSON(c, http.StatusOK, views)
}

// ========================================
// ADMIN
// ========================================

// Sellers - GET /sellers (admin)
func (h *Handler) Sellers(c *gin.Context) {
	reg, err := h.service.GetSellers(c.Request.Context())
	if handleError(c, err) {
		return
	}
	response.JSON(c, http.StatusOK, reg)
}

// Create - POST / (admin)
func (h *Handler) Create(c *gin.Context) {
	var req model.ListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("[Handler] Invalid create listing request")
		response.BadRequest(c, "Invalid request data")
		return
	}

	res, err := h.service.CreateListing(c.Request.Context(), req)
	if handleError(c, err) {
		return
	}

	response.JSON(c, http.StatusOK, model.CreateListingResponse{
		Success: true,
		ID:      res.ID,
		Message: "Book added successfully",
		Code:    res.Code,
	})
}

// Update - PUT /?id= (admin)
func (h *Handler) Update(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		handleError(c, model.ErrMissingID)
		return
	}

	var req model.ListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("[Handler] Invalid update listing request")
		response.BadRequest(c, "Invalid request data")
		return
	}

	if handleError(c, h.service.UpdateListing(c.Request.Context(), id, req)) {
		return
	}

	response.JSON(c, http.StatusOK, model.MessageResponse{
		Success: true,
		Message: "Book updated successfully",
	})
}

// Migrate - POST /admin/migrate (admin)
func (h *Handler) Migrate(c *gin.Context) {
	res, err := h.service.Migrate(c.Request.Context())
	if handleError(c, err) {
		return
	}
	response.JSON(c, http.StatusOK, res)
}

// ========================================
// DELETE (admin or seller)
// ========================================

// Delete - DELETE /?id=
// Either the admin secret or the listing's own seller code authorizes it.
func (h *Handler) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		handleError(c, model.ErrMissingID)
		return
	}

	grant, err := h.gate.AuthorizeDelete(c.Request.Context(), id, auth.Credentials{
		AdminSecret: c.GetHeader(auth.HeaderAdminSecret),
		SellerCode:  c.GetHeader(auth.HeaderSellerCode),
	})
	if handleError(c, err) {
		return
	}
	c.Set(middleware.ContextKeyGrant, grant)

	if handleError(c, h.service.DeleteListing(c.Request.Context(), id)) {
		return
	}

	response.JSON(c, http.StatusOK, model.MessageResponse{
		Success: true,
		Message: "Book deleted",
	})
}
