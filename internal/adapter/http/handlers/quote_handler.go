package handlers

import (
	"net/http"

	response "pannel_pintura/internal/adapter/http/dto/response"
	"pannel_pintura/internal/usecase"

	"github.com/gin-gonic/gin"
)

// QuoteHandler publishes what clients need to price quotes themselves. The
// server never computes quotes on behalf of visitors.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// GetRates godoc
// @Summary      Active rate table
// @Tags         quotes
// @Produce      json
// @Success      200  {object}  response.RatesResponse
// @Router       /rates [get]
func (h *QuoteHandler) GetRates(c *gin.Context) {
	c.Header("Cache-Control", "public, max-age=300")
	c.JSON(http.StatusOK, response.FromRateTable(h.usecase.Rates()))
}

// GetWhatsAppLink godoc
// @Summary      Generic WhatsApp contact link
// @Tags         quotes
// @Produce      json
// @Success      200  {object}  response.LinkResponse
// @Router       /contact/whatsapp [get]
func (h *QuoteHandler) GetWhatsAppLink(c *gin.Context) {
	c.JSON(http.StatusOK, response.LinkResponse{URL: h.usecase.GreetingLink()})
}
