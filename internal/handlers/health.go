package handlers

import (
	"net/http"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// NewHealthHandler reports that the converter is up.
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.HealthResponse{
			Status:  "healthy",
			Service: "currency-converter",
		})
	}
}
