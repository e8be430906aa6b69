package get_court_price

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtPricingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtPricingService/internal/usecase/price_court_slot"
)

const (
	msgInvalidCompanyID = "некорректный ID компании"
	msgInvalidBranchID  = "некорректный ID филиала"
	msgInvalidCourtID   = "некорректный ID корта"
	msgInvalidParams    = "некорректные параметры запроса: start и end в формате RFC3339"
	msgInvalidInput     = "некорректные входные данные"
	msgInvalidTimeRange = "начало слота должно быть раньше конца"
	msgSpansMidnight    = "слот должен начинаться и заканчиваться в один день"
	msgNoPricingRule    = "для слота не найдено правило цены"
)

type Handler struct {
	useCase PriceUseCase
	logger  Logger
}

func NewHandler(useCase PriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/companies/{companyId}/branches/{branchId}/courts/{courtId}/price
// Query params: start, end (RFC3339)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	companyID, err := strconv.ParseInt(vars["companyId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /courts/{id}/price - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	branchID, err := strconv.ParseInt(vars["branchId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /courts/{id}/price - Invalid branch ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBranchID)
		return
	}

	courtID, err := strconv.ParseInt(vars["courtId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /courts/{id}/price - Invalid court ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	query := r.URL.Query()
	ucReq, err := ToUseCaseRequest(companyID, branchID, courtID, query.Get("start"), query.Get("end"))
	if err != nil {
		h.logger.Warn("GET /courts/{id}/price - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), ucReq)
	if err != nil {
		switch {
		case errors.Is(err, price_court_slot.ErrInvalidTimeRange):
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, price_court_slot.ErrSlotSpansMidnight):
			handlers.RespondBadRequest(w, msgSpansMidnight)

		case errors.Is(err, price_court_slot.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, price_court_slot.ErrNoPricingRule):
			h.logger.Warn("GET /courts/{id}/price - No pricing rule: court_id=%d", courtID)
			handlers.RespondUnprocessableEntity(w, msgNoPricingRule)

		default:
			h.logger.Error("GET /courts/{id}/price - Failed to price slot: court_id=%d, error=%v", courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
