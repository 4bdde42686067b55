package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/korpor/fundledger/internal/attestation"
	"github.com/korpor/fundledger/internal/domain"
	"github.com/korpor/fundledger/internal/dto"
	"github.com/korpor/fundledger/internal/service/ledgerservice"
	"github.com/korpor/fundledger/pkg/auth"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*WalletHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authedRequest(method, target, body string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, bytes.NewBufferString(body))
	}
	return r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, 1))
}

func TestGetWalletHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.WalletResponseDTO
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().GetWallet(gomock.Any(), 1).
					Return(&domain.Wallet{
						CashBalance:    decimal.NewFromInt(1500),
						RewardsBalance: decimal.NewFromInt(25),
						Currency:       domain.CurrencyTND,
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.WalletResponseDTO{
				CashBalance:    decimal.NewFromInt(1500),
				RewardsBalance: decimal.NewFromInt(25),
				Currency:       "TND",
			},
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().GetWallet(gomock.Any(), 1).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			w := httptest.NewRecorder()
			handler.GetWallet(w, authedRequest(http.MethodGet, "/wallet", ""))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.WalletResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.True(t, tt.expectedBody.CashBalance.Equal(body.CashBalance))
				assert.True(t, tt.expectedBody.RewardsBalance.Equal(body.RewardsBalance))
				assert.Equal(t, tt.expectedBody.Currency, body.Currency)
			}
		})
	}
}

func TestDepositHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful deposit",
			body: `{"amount":"500","description":"Bank transfer","reference":"79927398713"}`,
			prepareMock: func() {
				service.EXPECT().
					Deposit(gomock.Any(), 1, decimal.NewFromInt(500), "Bank transfer", "79927398713").
					Return(&domain.Transaction{
						ID:     101,
						Kind:   domain.KindDeposit,
						Amount: decimal.NewFromInt(500),
						Status: domain.TransactionCompleted,
						Lane:   domain.LaneCash,
						Attestation: domain.Attestation{
							Hash:   "0xdeadbeef",
							IsMock: true,
						},
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid request body",
			body:          `{"amount":invalid}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Invalid reference number",
			body:          `{"amount":"500","reference":"79927398710"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "Invalid reference number",
		},
		{
			name: "Invalid amount",
			body: `{"amount":"-5"}`,
			prepareMock: func() {
				service.EXPECT().
					Deposit(gomock.Any(), 1, decimal.NewFromInt(-5), "", "").
					Return(nil, ledgerservice.ErrInvalidAmount)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid amount",
		},
		{
			name: "Internal server error",
			body: `{"amount":"500"}`,
			prepareMock: func() {
				service.EXPECT().
					Deposit(gomock.Any(), 1, decimal.NewFromInt(500), "", "").
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			w := httptest.NewRecorder()
			handler.Deposit(w, authedRequest(http.MethodPost, "/wallet/deposit", tt.body))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.TransactionResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, 101, body.ID)
				assert.Equal(t, "0xdeadbeef", body.Attestation.Hash)
			}
		})
	}
}

func TestWithdrawHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful withdrawal",
			body: `{"amount":"200","reference":"79927398713"}`,
			prepareMock: func() {
				service.EXPECT().
					Withdraw(gomock.Any(), 1, decimal.NewFromInt(200), "", "79927398713").
					Return(&domain.Transaction{
						ID:     102,
						Kind:   domain.KindWithdrawal,
						Amount: decimal.NewFromInt(-200),
						Status: domain.TransactionCompleted,
						Lane:   domain.LaneCash,
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Insufficient balance",
			body: `{"amount":"5000"}`,
			prepareMock: func() {
				service.EXPECT().
					Withdraw(gomock.Any(), 1, decimal.NewFromInt(5000), "", "").
					Return(nil, ledgerservice.ErrInsufficientBalance)
			},
			expectedCode:  http.StatusPaymentRequired,
			expectedError: "insufficient balance",
		},
		{
			name:          "Invalid reference number",
			body:          `{"amount":"200","reference":"123"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "Invalid reference number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			w := httptest.NewRecorder()
			handler.Withdraw(w, authedRequest(http.MethodPost, "/wallet/withdraw", tt.body))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestGetTransactionsHandler(t *testing.T) {
	handler, service := NewMock(t)

	now := time.Now()
	service.EXPECT().
		GetTransactions(gomock.Any(), 1, domain.KindDeposit, domain.TransactionStatus(""), 10, 0).
		Return([]domain.Transaction{
			{ID: 101, Kind: domain.KindDeposit, Amount: decimal.NewFromInt(500), CreatedAt: now},
		}, nil)

	w := httptest.NewRecorder()
	handler.GetTransactions(w, authedRequest(http.MethodGet, "/transactions?kind=deposit&limit=10", ""))

	assert.Equal(t, http.StatusOK, w.Code)
	var body []dto.TransactionResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Len(t, body, 1)
	assert.Equal(t, "deposit", body[0].Kind)
}

func TestReconcileHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Reconcile(gomock.Any(), 1).
		Return(&ledgerservice.Reconciliation{
			CashBalance:    decimal.NewFromInt(1500),
			CashLedger:     decimal.NewFromInt(1500),
			RewardsBalance: decimal.NewFromInt(25),
			RewardsLedger:  decimal.NewFromInt(25),
			Consistent:     true,
		}, nil)

	w := httptest.NewRecorder()
	handler.Reconcile(w, authedRequest(http.MethodGet, "/wallet/reconcile", ""))

	assert.Equal(t, http.StatusOK, w.Code)
	var body dto.ReconciliationResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.True(t, body.Consistent)
}

func TestVerifyAttestationHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		hash          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Known receipt",
			hash: "0xdeadbeef",
			prepareMock: func() {
				service.EXPECT().VerifyAttestation(gomock.Any(), "0xdeadbeef").
					Return(&attestation.Verification{
						Hash:          "0xdeadbeef",
						ChainStatus:   "confirmed",
						Confirmations: 6,
						IsMock:        true,
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Unknown receipt",
			hash: "0xmissing",
			prepareMock: func() {
				service.EXPECT().VerifyAttestation(gomock.Any(), "0xmissing").
					Return(nil, errors.New("not found"))
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Receipt not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := authedRequest(http.MethodGet, "/attestations/"+tt.hash, "")
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("hash", tt.hash)
			r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
			w := httptest.NewRecorder()

			handler.VerifyAttestation(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.VerifyAttestationResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, "confirmed", body.Status)
				assert.Equal(t, 6, body.Confirmations)
			}
		})
	}
}
