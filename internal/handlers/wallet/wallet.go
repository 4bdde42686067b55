package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/korpor/fundledger/internal/attestation"
	"github.com/korpor/fundledger/internal/domain"
	"github.com/korpor/fundledger/internal/dto"
	"github.com/korpor/fundledger/internal/service/ledgerservice"
	"github.com/korpor/fundledger/pkg/auth"
	"github.com/korpor/fundledger/pkg/utils"
	"github.com/korpor/fundledger/pkg/validate"
	"github.com/shopspring/decimal"
)

type Service interface {
	GetWallet(ctx context.Context, userID int) (*domain.Wallet, error)
	Deposit(ctx context.Context, userID int, amount decimal.Decimal, description, reference string) (*domain.Transaction, error)
	Withdraw(ctx context.Context, userID int, amount decimal.Decimal, description, reference string) (*domain.Transaction, error)
	GetTransactions(ctx context.Context, userID int, kind domain.TransactionKind, status domain.TransactionStatus, limit, offset int) ([]domain.Transaction, error)
	Reconcile(ctx context.Context, userID int) (*ledgerservice.Reconciliation, error)
	VerifyAttestation(ctx context.Context, hash string) (*attestation.Verification, error)
}

type WalletHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *WalletHandler {
	return &WalletHandler{
		ledgerService: ledgerService,
	}
}

// GetWallet godoc
//
//	@Summary		Get current user wallet
//	@Description	Retrieve cash and rewards balances. The wallet is created on first access.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.WalletResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/wallet [get]
func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	wallet, err := h.ledgerService.GetWallet(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WalletResponseDTO{
		CashBalance:       wallet.CashBalance,
		RewardsBalance:    wallet.RewardsBalance,
		Currency:          string(wallet.Currency),
		LastTransactionAt: wallet.LastTransactionAt,
	})
}

// Deposit godoc
//
//	@Summary		Deposit cash
//	@Description	Credit the cash balance and record a signed ledger transaction with its attestation receipt.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DepositRequestDTO	true	"Deposit request payload"
//	@Success		200		{object}	dto.TransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body or amount"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		422		{object}	utils.Response	"Invalid reference number"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/wallet/deposit [post]
func (h *WalletHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.DepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Reference != "" && !validate.IsChecksummedReference(req.Reference) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid reference number")
		return
	}
	t, err := h.ledgerService.Deposit(r.Context(), userID, req.Amount, req.Description, req.Reference)
	if err != nil {
		if errors.Is(err, ledgerservice.ErrInvalidAmount) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toTransactionDTO(t))
}

// Withdraw godoc
//
//	@Summary		Withdraw cash
//	@Description	Debit the cash balance. The debit and its ledger record commit together; an insufficient balance rejects the whole operation.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawRequestDTO	true	"Withdrawal request payload"
//	@Success		200		{object}	dto.TransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body or amount"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		422		{object}	utils.Response	"Invalid reference number"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/wallet/withdraw [post]
func (h *WalletHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.WithdrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Reference != "" && !validate.IsChecksummedReference(req.Reference) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid reference number")
		return
	}
	t, err := h.ledgerService.Withdraw(r.Context(), userID, req.Amount, req.Description, req.Reference)
	if err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, ledgerservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toTransactionDTO(t))
}

// GetTransactions godoc
//
//	@Summary		List ledger transactions
//	@Description	Return the user's ledger records, newest first, with optional kind and status filters.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Param			kind	query		string	false	"Filter by kind"
//	@Param			status	query		string	false	"Filter by status"
//	@Param			limit	query		int		false	"Page size"
//	@Param			offset	query		int		false	"Page offset"
//	@Success		200		{array}		dto.TransactionResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/transactions [get]
func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	kind := domain.TransactionKind(r.URL.Query().Get("kind"))
	status := domain.TransactionStatus(r.URL.Query().Get("status"))

	transactions, err := h.ledgerService.GetTransactions(r.Context(), userID, kind, status, limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.TransactionResponseDTO, 0, len(transactions))
	for i := range transactions {
		response = append(response, toTransactionDTO(&transactions[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Reconcile godoc
//
//	@Summary		Reconcile wallet balances
//	@Description	Recompute both balances from the completed ledger records and compare with the stored wallet.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ReconciliationResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/wallet/reconcile [get]
func (h *WalletHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	rec, err := h.ledgerService.Reconcile(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ReconciliationResponseDTO{
		CashBalance:    rec.CashBalance,
		CashLedger:     rec.CashLedger,
		RewardsBalance: rec.RewardsBalance,
		RewardsLedger:  rec.RewardsLedger,
		Consistent:     rec.Consistent,
	})
}

// VerifyAttestation godoc
//
//	@Summary		Verify an attestation receipt
//	@Description	Ask the chain gateway for the audit view of a previously issued receipt.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Param			hash	path		string	true	"Attestation hash"
//	@Success		200		{object}	dto.VerifyAttestationResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Receipt not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/attestations/{hash} [get]
func (h *WalletHandler) VerifyAttestation(w http.ResponseWriter, r *http.Request) {
	hash := chi.URLParam(r, "hash")
	if hash == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing attestation hash")
		return
	}
	v, err := h.ledgerService.VerifyAttestation(r.Context(), hash)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Receipt not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.VerifyAttestationResponseDTO{
		Hash:          v.Hash,
		Status:        v.ChainStatus,
		Confirmations: v.Confirmations,
		IsMock:        v.IsMock,
	})
}

func toTransactionDTO(t *domain.Transaction) dto.TransactionResponseDTO {
	return dto.TransactionResponseDTO{
		ID:          t.ID,
		Kind:        string(t.Kind),
		Amount:      t.Amount,
		Currency:    string(t.Currency),
		Status:      string(t.Status),
		Lane:        string(t.Lane),
		Description: t.Description,
		Reference:   t.Reference,
		Attestation: dto.AttestationDTO{
			Hash:        t.Attestation.Hash,
			BlockNumber: t.Attestation.BlockNumber,
			ChainStatus: t.Attestation.ChainStatus,
			IsMock:      t.Attestation.IsMock,
		},
		ProcessedAt: t.ProcessedAt,
		CreatedAt:   t.CreatedAt,
	}
}
