package handler

import (
	"encoding/json"
	"net/http"
	"oft-transacts/common"
	"oft-transacts/model"
	"oft-transacts/service"
	"strconv"
)

// TransactionHandler holds dependencies for transaction-related handlers.
type TransactionHandler struct {
	service *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler with its dependencies.
func NewTransactionHandler(s *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{service: s}
}

// ListTransacts godoc
// @Summary      Page through an account's ledger
// @Description  Returns one page of the account's transaction history, most recent first, including soft-deleted audit rows.
// @Tags         transacts
// @Produce      json
// @Security     BearerAuth
// @Param        accountId  path   int  true   "The ID of the account"
// @Param        page       query  int  false  "Page number, starting at 1"
// @Param        page_size  query  int  false  "Items per page (capped by server configuration)"
// @Success      200  {object}  model.TransactsPage
// @Failure      400  {object}  common.AppError "Invalid account ID in URL path"
// @Failure      401  {object}  common.AppError "Unauthorized: Invalid or missing token"
// @Failure      403  {object}  common.AppError "Forbidden: account not accessible"
// @Failure      500  {object}  common.AppError "Internal server error while retrieving transactions"
// @Router       /accounts/{accountId}/transacts [get]
func (h *TransactionHandler) ListTransacts(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, ok := r.Context().Value(UserIDKey).(int)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user in request context", nil)
	}

	accountID, err := strconv.Atoi(r.PathValue("accountId"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid account ID in URL path", err)
	}

	page := queryInt(r, "page", 1)
	pageSize := queryInt(r, "page_size", 0)

	pageResult, err := h.service.ListTransactions(r.Context(), userID, accountID, page, pageSize)
	if err != nil {
		switch err {
		case service.ErrAccountAccessDenied:
			return common.NewAppError(http.StatusForbidden, err.Error(), nil)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not retrieve transactions", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(pageResult)
	return nil
}

// CreateTransact godoc
// @Summary      Append a transaction to an account
// @Description  Validates and records a new posted ledger entry on an account owned by the authenticated user.
// @Tags         transacts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        accountId  path  int                          true  "The ID of the account"
// @Param        transact   body  model.CreateTransactRequest  true  "The ledger entry to append"
// @Success      201  {object}  model.Transaction
// @Failure      400  {object}  common.AppError "Bad Request (non-positive amount or unknown direction)"
// @Failure      401  {object}  common.AppError "Unauthorized: Invalid or missing token"
// @Failure      403  {object}  common.AppError "Forbidden: account not accessible"
// @Failure      500  {object}  common.AppError "Internal server error while recording the transaction"
// @Router       /accounts/{accountId}/transacts [post]
func (h *TransactionHandler) CreateTransact(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, ok := r.Context().Value(UserIDKey).(int)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user in request context", nil)
	}

	accountID, err := strconv.Atoi(r.PathValue("accountId"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid account ID in URL path", err)
	}

	var req model.CreateTransactRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	transaction, err := h.service.CreateTransaction(r.Context(), userID, accountID, req)
	if err != nil {
		switch err {
		case service.ErrAccountAccessDenied:
			return common.NewAppError(http.StatusForbidden, err.Error(), nil)
		case service.ErrInvalidAmount, service.ErrInvalidDirection:
			return common.NewAppError(http.StatusBadRequest, err.Error(), nil)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not record transaction", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(transaction)
	return nil
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
