package delete_pricing_rule

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

// Handle DELETE /api/v1/pricing-rules/{ruleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ruleID, err := strconv.ParseInt(mux.Vars(r)["ruleId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /pricing-rules/{id} - Invalid rule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRuleID)
		return
	}

	if err := h.service.Delete(r.Context(), ruleID); err != nil {
		if errors.Is(err, pricingrules.ErrRuleNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /pricing-rules/{id} - Failed to delete rule: rule_id=%d, error=%v", ruleID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /pricing-rules/{id} - Rule deleted: rule_id=%d", ruleID)
	handlers.RespondNoContent(w)
}
