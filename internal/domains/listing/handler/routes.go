package handler

import (
	"github.com/gin-gonic/gin"

	"booklisting-backend/internal/shared/middleware"
)

// RegisterRoutes mounts every listing endpoint at the root of r.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	admin := middleware.AdminOnly(h.gate)

	r.GET("/", h.Catalog)
	r.GET("/image", h.Image)
	r.GET("/stats", h.Stats)
	r.GET("/sellers", admin, h.Sellers)

	r.POST("/", admin, h.Create)
	r.POST("/seller/login", h.SellerLogin)
	r.POST("/admin/migrate", admin, h.Migrate)

	r.PUT("/", admin, h.Update)
	r.DELETE("/", h.Delete)
}
