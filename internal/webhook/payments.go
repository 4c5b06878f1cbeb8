// Package webhook receives settlement callbacks from payment gateways.
package webhook

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	apperrors "github.com/nebaware/temariware/internal/errors"
	"github.com/nebaware/temariware/internal/models"
)

// PaymentsPath is where gateways post settlement callbacks.
const PaymentsPath = "/callbacks/payments"

// StatusSuccess is the gateway status that confirms a deposit.
const StatusSuccess = "success"

// maxBody bounds callback payloads.
const maxBody = 64 << 10

// DepositConfirmer settles a pending deposit.
type DepositConfirmer interface {
	ConfirmDeposit(ctx context.Context, reference string, amount decimal.Decimal) (*models.Transaction, error)
}

type callbackRequest struct {
	Reference string          `json:"reference"`
	Status    string          `json:"status"`
	Amount    decimal.Decimal `json:"amount"`
}

type callbackResponse struct {
	Reference string `json:"reference"`
	Result    string `json:"result"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// PaymentsHandler handles POST /callbacks/payments. Gateways authenticate
// with "Authorization: Bearer <secret>".
type PaymentsHandler struct {
	deposits DepositConfirmer
	secret   []byte
}

// NewPaymentsHandler creates a callback handler. An empty secret rejects
// every request.
func NewPaymentsHandler(deposits DepositConfirmer, secret string) *PaymentsHandler {
	return &PaymentsHandler{deposits: deposits, secret: []byte(secret)}
}

func (h *PaymentsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed")
		return
	}
	if !h.authorized(r.Header.Get("Authorization")) {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req callbackRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if req.Reference == "" {
		writeError(w, http.StatusBadRequest, "missing_reference")
		return
	}

	if !strings.EqualFold(req.Status, StatusSuccess) {
		slog.Info("Payment callback acknowledged", "reference", req.Reference, "status", req.Status)
		writeJSON(w, http.StatusOK, callbackResponse{Reference: req.Reference, Result: "ignored"})
		return
	}

	txn, err := h.deposits.ConfirmDeposit(r.Context(), req.Reference, req.Amount)
	if err != nil {
		code := apperrors.GetCode(err)
		slog.Warn("Payment callback failed", "reference", req.Reference, "code", code, "error", err)
		switch code {
		case apperrors.CodeNotFound:
			writeError(w, http.StatusNotFound, "unknown_reference")
		case apperrors.CodeDepositMismatch:
			writeError(w, http.StatusConflict, "amount_mismatch")
		case apperrors.CodeInvalidAmount:
			writeError(w, http.StatusBadRequest, "invalid_amount")
		default:
			writeError(w, http.StatusInternalServerError, "internal_error")
		}
		return
	}

	slog.Info("Payment callback confirmed",
		"reference", req.Reference,
		"user_id", txn.UserID,
		"amount", txn.Amount.StringFixed(2),
	)
	writeJSON(w, http.StatusOK, callbackResponse{Reference: req.Reference, Result: "confirmed"})
}

func (h *PaymentsHandler) authorized(header string) bool {
	if len(h.secret) == 0 {
		return false
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(strings.TrimSpace(token)), h.secret) == 1
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, errorResponse{Error: code})
}
