package investments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/korpor/fundledger/internal/domain"
	"github.com/korpor/fundledger/internal/dto"
	"github.com/korpor/fundledger/internal/service/investmentservice"
	"github.com/korpor/fundledger/pkg/auth"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*InvestmentHandler, *MockService) {
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

func TestInvestHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Wallet payment settles immediately",
			body: `{"project_id":7,"amount":"3000"}`,
			prepareMock: func() {
				service.EXPECT().
					Invest(gomock.Any(), 1, 7, decimal.NewFromInt(3000)).
					Return(&domain.Investment{
						ID:            5,
						ProjectID:     7,
						Amount:        decimal.NewFromInt(3000),
						PaymentMethod: "wallet",
						Status:        domain.InvestmentConfirmed,
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "External payment goes through the gateway path",
			body: `{"project_id":7,"amount":"3000","payment_method":"card"}`,
			prepareMock: func() {
				service.EXPECT().
					InvestWithExternalPayment(gomock.Any(), 1, 7, decimal.NewFromInt(3000), "card", "").
					Return(&domain.Investment{
						ID:            6,
						ProjectID:     7,
						PaymentMethod: "card",
						Status:        domain.InvestmentAwaitingPayment,
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
			name: "Insufficient balance",
			body: `{"project_id":7,"amount":"3000"}`,
			prepareMock: func() {
				service.EXPECT().
					Invest(gomock.Any(), 1, 7, decimal.NewFromInt(3000)).
					Return(nil, investmentservice.ErrInsufficientBalance)
			},
			expectedCode:  http.StatusPaymentRequired,
			expectedError: "insufficient balance",
		},
		{
			name: "Project not found",
			body: `{"project_id":99,"amount":"3000"}`,
			prepareMock: func() {
				service.EXPECT().
					Invest(gomock.Any(), 1, 99, decimal.NewFromInt(3000)).
					Return(nil, investmentservice.ErrProjectNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "project not found",
		},
		{
			name: "Project sold out",
			body: `{"project_id":8,"amount":"3000"}`,
			prepareMock: func() {
				service.EXPECT().
					Invest(gomock.Any(), 1, 8, decimal.NewFromInt(3000)).
					Return(nil, investmentservice.ErrProjectNotOpen)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "not open",
		},
		{
			name: "Amount below project minimum",
			body: `{"project_id":7,"amount":"100"}`,
			prepareMock: func() {
				service.EXPECT().
					Invest(gomock.Any(), 1, 7, decimal.NewFromInt(100)).
					Return(nil, investmentservice.ErrBelowMinimum)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "below the minimum",
		},
		{
			name: "Internal server error",
			body: `{"project_id":7,"amount":"3000"}`,
			prepareMock: func() {
				service.EXPECT().
					Invest(gomock.Any(), 1, 7, decimal.NewFromInt(3000)).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			w := httptest.NewRecorder()
			handler.Invest(w, authedRequest(http.MethodPost, "/investments", tt.body))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestValidateHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.ValidateInvestmentResponseDTO
	}{
		{
			name: "Valid request",
			body: `{"project_id":7,"amount":"3000","payment_method":"wallet"}`,
			prepareMock: func() {
				service.EXPECT().
					Validate(gomock.Any(), 1, 7, decimal.NewFromInt(3000), "wallet").
					Return(&domain.Project{ID: 7}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.ValidateInvestmentResponseDTO{Valid: true},
		},
		{
			name: "Known precondition failure reads as invalid",
			body: `{"project_id":7,"amount":"100","payment_method":"wallet"}`,
			prepareMock: func() {
				service.EXPECT().
					Validate(gomock.Any(), 1, 7, decimal.NewFromInt(100), "wallet").
					Return(nil, investmentservice.ErrBelowMinimum)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.ValidateInvestmentResponseDTO{
				Valid:   false,
				Message: "amount is below the minimum investment",
			},
		},
		{
			name: "Internal server error",
			body: `{"project_id":7,"amount":"3000"}`,
			prepareMock: func() {
				service.EXPECT().
					Validate(gomock.Any(), 1, 7, decimal.NewFromInt(3000), "").
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			w := httptest.NewRecorder()
			handler.Validate(w, authedRequest(http.MethodPost, "/investments/validate", tt.body))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.ValidateInvestmentResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestPaymentWebhookHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful settlement",
			body: `{"investment_id":6,"success":true}`,
			prepareMock: func() {
				service.EXPECT().MarkSettled(gomock.Any(), 6, true).
					Return(&domain.Investment{ID: 6, Status: domain.InvestmentConfirmed}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Failed payment",
			body: `{"investment_id":6,"success":false}`,
			prepareMock: func() {
				service.EXPECT().MarkSettled(gomock.Any(), 6, false).
					Return(&domain.Investment{ID: 6, Status: domain.InvestmentFailed}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Unknown investment",
			body: `{"investment_id":99,"success":true}`,
			prepareMock: func() {
				service.EXPECT().MarkSettled(gomock.Any(), 99, true).
					Return(nil, investmentservice.ErrInvestmentNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "investment not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/payments/webhook", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.PaymentWebhook(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestGetProjectHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		projectID     string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:      "Existing project",
			projectID: "7",
			prepareMock: func() {
				service.EXPECT().GetProject(gomock.Any(), 7).
					Return(&domain.Project{
						ID:            7,
						Name:          "Marina Bay Residence",
						GoalAmount:    decimal.NewFromInt(250000),
						FundingStatus: domain.FundingOpen,
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid project id",
			projectID:     "abc",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid project id",
		},
		{
			name:      "Unknown project",
			projectID: "99",
			prepareMock: func() {
				service.EXPECT().GetProject(gomock.Any(), 99).
					Return(nil, investmentservice.ErrProjectNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "project not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := authedRequest(http.MethodGet, "/projects/"+tt.projectID, "")
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.projectID)
			r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
			w := httptest.NewRecorder()

			handler.GetProject(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestGetInvestmentsHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().GetUserInvestments(gomock.Any(), 1).
		Return([]domain.Investment{
			{ID: 5, ProjectID: 7, Amount: decimal.NewFromInt(3000), Status: domain.InvestmentConfirmed},
		}, nil)

	w := httptest.NewRecorder()
	handler.GetInvestments(w, authedRequest(http.MethodGet, "/investments", ""))

	assert.Equal(t, http.StatusOK, w.Code)
	var body []dto.InvestmentResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Len(t, body, 1)
	assert.Equal(t, "confirmed", body[0].Status)
}

func TestGetProjectsHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().GetProjects(gomock.Any()).
		Return([]domain.Project{
			{ID: 7, Name: "Marina Bay Residence", FundingStatus: domain.FundingOpen},
			{ID: 8, Name: "Les Jardins", FundingStatus: domain.FundingSoldOut},
		}, nil)

	w := httptest.NewRecorder()
	handler.GetProjects(w, authedRequest(http.MethodGet, "/projects", ""))

	assert.Equal(t, http.StatusOK, w.Code)
	var body []dto.ProjectResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Len(t, body, 2)
	assert.Equal(t, "sold_out", body[1].FundingStatus)
}
