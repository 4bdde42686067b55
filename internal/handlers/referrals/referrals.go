package referrals

import (
	"context"
	"net/http"

	"github.com/korpor/fundledger/internal/domain"
	"github.com/korpor/fundledger/internal/dto"
	"github.com/korpor/fundledger/pkg/auth"
	"github.com/korpor/fundledger/pkg/utils"
)

type Service interface {
	GetReferrals(ctx context.Context, referrerID int) ([]domain.Referral, error)
}

type ReferralHandler struct {
	referralService Service
}

func New(referralService Service) *ReferralHandler {
	return &ReferralHandler{
		referralService: referralService,
	}
}

// GetReferrals godoc
//
//	@Summary		List referrals made by the current user
//	@Description	Return the user's referrals with their status and reward amounts.
//	@Tags			Referrals
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.ReferralResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/referrals [get]
func (h *ReferralHandler) GetReferrals(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	referrals, err := h.referralService.GetReferrals(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.ReferralResponseDTO, 0, len(referrals))
	for _, ref := range referrals {
		response = append(response, dto.ReferralResponseDTO{
			ID:             ref.ID,
			RefereeID:      ref.RefereeID,
			Status:         string(ref.Status),
			RefereeReward:  ref.RefereeReward,
			ReferrerReward: ref.ReferrerReward,
			Currency:       string(ref.Currency),
			QualifiedAt:    ref.QualifiedAt,
			RewardedAt:     ref.RewardedAt,
			CreatedAt:      ref.CreatedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
