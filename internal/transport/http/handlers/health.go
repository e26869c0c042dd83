package handlers

import (
	"net/http"

	"github.com/baechuer/real-time-ressys/services/resource-service/internal/transport/http/dto"
	"github.com/baechuer/real-time-ressys/services/resource-service/internal/transport/http/response"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler { return &HealthHandler{} }

func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, dto.Health())
}
