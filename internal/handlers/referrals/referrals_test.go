package referrals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/korpor/fundledger/internal/domain"
	"github.com/korpor/fundledger/internal/dto"
	"github.com/korpor/fundledger/pkg/auth"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*ReferralHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestGetReferralsHandler(t *testing.T) {
	handler, service := NewMock(t)
	now := time.Now()

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().GetReferrals(gomock.Any(), 1).
					Return([]domain.Referral{
						{
							ID:             3,
							ReferrerID:     1,
							RefereeID:      2,
							Status:         domain.ReferralRewarded,
							RefereeReward:  decimal.NewFromInt(25),
							ReferrerReward: decimal.NewFromInt(25),
							Currency:       domain.CurrencyTND,
							QualifiedAt:    &now,
							RewardedAt:     &now,
							CreatedAt:      now,
						},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name: "No referrals",
			prepareMock: func() {
				service.EXPECT().GetReferrals(gomock.Any(), 1).Return(nil, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  0,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().GetReferrals(gomock.Any(), 1).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/referrals", nil)
			r = r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, 1))
			w := httptest.NewRecorder()

			handler.GetReferrals(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.ReferralResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body, tt.expectedLen)
			}
		})
	}
}
