package handlers

import (
	"mime"
	"net/http"

	"busstation/internal/http/middleware"
	"busstation/internal/services"

	"github.com/gin-gonic/gin"
)

type DocsHandler struct {
	Docs services.DocsService
}

// GET /ticket/:id/pdf
func (h *DocsHandler) TicketPDF(c *gin.Context) {
	id, err := parseID(c, "Ticket")
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	svc := h.Docs.WithRequestID(middleware.GetRequestID(c))
	pdf, filename, err := svc.GenerateETicket(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", mime.FormatMediaType("inline", map[string]string{"filename": filename}))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
