package list_pricing_rules

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtPricingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtPricingService/internal/service/pricingrules"
)

const (
	msgInvalidCompanyID = "некорректный ID компании"
	msgInvalidBranchID  = "некорректный ID филиала"
	msgInvalidCourtID   = "некорректный ID корта"
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

// Handle GET /api/v1/companies/{companyId}/branches/{branchId}/pricing-rules
// Query params: courtId (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	companyID, err := strconv.ParseInt(vars["companyId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /pricing-rules - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	branchID, err := strconv.ParseInt(vars["branchId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /pricing-rules - Invalid branch ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBranchID)
		return
	}

	courtID, err := parseCourtID(r.URL.Query().Get("courtId"))
	if err != nil {
		h.logger.Warn("GET /pricing-rules - Invalid court ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	result, err := h.service.ListByBranch(r.Context(), companyID, branchID, courtID)
	if err != nil {
		if errors.Is(err, pricingrules.ErrInvalidInput) {
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("GET /pricing-rules - Failed to list rules: company_id=%d, branch_id=%d, error=%v",
			companyID, branchID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
