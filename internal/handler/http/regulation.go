package http

import (
	"encoding/json"
	"net/http"

	"github.com/palmahr/payroll-engine-go/internal/domain/regulation"
	"github.com/palmahr/payroll-engine-go/internal/handler/http/response"
	regulationService "github.com/palmahr/payroll-engine-go/internal/service/regulation"
)

type RegulationHandler interface {
	ListRegulations(w http.ResponseWriter, r *http.Request)
	CreateRegulation(w http.ResponseWriter, r *http.Request)
}

type regulationHandlerImpl struct {
	regulationService *regulationService.Service
}

func NewRegulationHandler(svc *regulationService.Service) RegulationHandler {
	return &regulationHandlerImpl{regulationService: svc}
}

func (h *regulationHandlerImpl) ListRegulations(w http.ResponseWriter, r *http.Request) {
	result, err := h.regulationService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *regulationHandlerImpl) CreateRegulation(w http.ResponseWriter, r *http.Request) {
	var req regulation.CreateRegulationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.regulationService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary regulation created", result)
}
