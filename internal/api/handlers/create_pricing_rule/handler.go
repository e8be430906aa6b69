package create_pricing_rule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtPricingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtPricingService/internal/service/pricingrules"
)

const (
	msgInvalidCompanyID   = "некорректный ID компании"
	msgInvalidBranchID    = "некорректный ID филиала"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные правила"
	msgBranchNotFound     = "филиал не найден"
	msgCourtNotFound      = "корт не найден"
)

type Handler struct {
	service RuleService
	logger  Logger
}

func NewHandler(service RuleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/companies/{companyId}/branches/{branchId}/pricing-rules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	companyID, err := strconv.ParseInt(vars["companyId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /pricing-rules - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	branchID, err := strconv.ParseInt(vars["branchId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /pricing-rules - Invalid branch ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBranchID)
		return
	}

	// Декодируем body
	var req CreatePricingRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /pricing-rules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest(companyID, branchID))
	if err != nil {
		switch {
		case errors.Is(err, pricingrules.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput+": "+err.Error())

		case errors.Is(err, pricingrules.ErrBranchNotFound):
			handlers.RespondNotFound(w, msgBranchNotFound)

		case errors.Is(err, pricingrules.ErrCourtNotFound):
			handlers.RespondNotFound(w, msgCourtNotFound)

		default:
			h.logger.Error("POST /pricing-rules - Failed to create rule: company_id=%d, branch_id=%d, error=%v",
				companyID, branchID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /pricing-rules - Rule created: rule_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
