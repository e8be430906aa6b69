package get_pricing_rule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtPricingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtPricingService/internal/service/pricingrules"
)

const (
	msgInvalidRuleID = "некорректный ID правила"
	msgNotFound      = "правило не найдено"
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

// Handle GET /api/v1/pricing-rules/{ruleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ruleID, err := strconv.ParseInt(mux.Vars(r)["ruleId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /pricing-rules/{id} - Invalid rule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRuleID)
		return
	}

	result, err := h.service.GetByID(r.Context(), ruleID)
	if err != nil {
		if errors.Is(err, pricingrules.ErrRuleNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /pricing-rules/{id} - Failed to get rule: rule_id=%d, error=%v", ruleID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
