package routes

import (
	"pannel_pintura/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathRates           = "/rates"
	PathContact         = "/contact"
	PathContactRequests = "/contact-requests"
)

func addQuoteRoutes(rg *gin.RouterGroup, h *handlers.QuoteHandler) {
	rg.GET(PathRates, h.GetRates)
	rg.GET(PathContact+"/whatsapp", h.GetWhatsAppLink)
}

func addContactRequestRoutes(rg *gin.RouterGroup, h *handlers.ContactRequestHandler, rateLimit, adminAuth gin.HandlerFunc) {
	contact := rg.Group(PathContactRequests)
	{
		// Public form submission.
		contact.POST("", rateLimit, h.Submit)
	}

	admin := rg.Group(PathContactRequests, adminAuth)
	{
		admin.GET("", h.List)
		admin.GET("/export", h.Export)
		admin.GET("/:id", h.GetByID)
		admin.PATCH("/:id/contacted", h.MarkContacted)
		admin.PATCH("/:id/discard", h.Discard)
	}
}
