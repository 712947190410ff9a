// README: Country catalog handler.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tollwise/internal/rules"
)

type CountryHandler struct {
	table *rules.Table
}

func NewCountryHandler(table *rules.Table) *CountryHandler {
	return &CountryHandler{table: table}
}

// List handles GET /api/countries.
func (h *CountryHandler) List(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"countries": h.table.Countries()})
}

// Get handles GET /api/countries/:code.
func (h *CountryHandler) Get(c *gin.Context) {
	rule, ok := h.table.Get(strings.ToUpper(c.Param("code")))
	if !ok {
		writeError(c, http.StatusNotFound, "unknown country")
		return
	}
	writeJSON(c, http.StatusOK, rule)
}
