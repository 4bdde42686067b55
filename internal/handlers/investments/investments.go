package investments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/korpor/fundledger/internal/domain"
	"github.com/korpor/fundledger/internal/dto"
	"github.com/korpor/fundledger/internal/service/investmentservice"
	"github.com/korpor/fundledger/pkg/auth"
	"github.com/korpor/fundledger/pkg/utils"
	"github.com/shopspring/decimal"
)

type Service interface {
	Validate(ctx context.Context, userID, projectID int, amount decimal.Decimal, paymentMethod string) (*domain.Project, error)
	Invest(ctx context.Context, userID, projectID int, amount decimal.Decimal) (*domain.Investment, error)
	InvestWithExternalPayment(ctx context.Context, userID, projectID int, amount decimal.Decimal, paymentMethod, externalRef string) (*domain.Investment, error)
	MarkSettled(ctx context.Context, investmentID int, success bool) (*domain.Investment, error)
	GetProjects(ctx context.Context) ([]domain.Project, error)
	GetProject(ctx context.Context, projectID int) (*domain.Project, error)
	GetUserInvestments(ctx context.Context, userID int) ([]domain.Investment, error)
}

type InvestmentHandler struct {
	investmentService Service
}

func New(investmentService Service) *InvestmentHandler {
	return &InvestmentHandler{
		investmentService: investmentService,
	}
}

// Validate godoc
//
//	@Summary		Validate an investment request
//	@Description	Run the settlement preconditions without committing anything: project open, amount at or above the minimum, amount within remaining capacity, and for wallet payments a sufficient cash balance.
//	@Tags			Investments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ValidateInvestmentRequestDTO	true	"Validation request payload"
//	@Success		200		{object}	dto.ValidateInvestmentResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/investments/validate [post]
func (h *InvestmentHandler) Validate(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.ValidateInvestmentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	_, err := h.investmentService.Validate(r.Context(), userID, req.ProjectID, req.Amount, req.PaymentMethod)
	if err != nil {
		if msg, ok := validationMessage(err); ok {
			utils.RespondWithJSON(w, http.StatusOK, dto.ValidateInvestmentResponseDTO{Valid: false, Message: msg})
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ValidateInvestmentResponseDTO{Valid: true})
}

// Invest godoc
//
//	@Summary		Invest in a project
//	@Description	Settle an investment. Wallet payments debit the cash balance and confirm immediately in one atomic unit; external payments create a record awaiting the gateway's webhook.
//	@Tags			Investments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.InvestRequestDTO	true	"Investment request payload"
//	@Success		200		{object}	dto.InvestmentResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body or amount"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		404		{object}	utils.Response	"Project not found"
//	@Failure		409		{object}	utils.Response	"Project not open"
//	@Failure		422		{object}	utils.Response	"Amount outside project limits"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/investments [post]
func (h *InvestmentHandler) Invest(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.InvestRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var (
		investment *domain.Investment
		err        error
	)
	if req.PaymentMethod == "" || req.PaymentMethod == investmentservice.PaymentMethodWallet {
		investment, err = h.investmentService.Invest(r.Context(), userID, req.ProjectID, req.Amount)
	} else {
		investment, err = h.investmentService.InvestWithExternalPayment(r.Context(), userID, req.ProjectID, req.Amount, req.PaymentMethod, req.ExternalRef)
	}
	if err != nil {
		respondInvestmentError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toInvestmentDTO(investment))
}

// GetInvestments godoc
//
//	@Summary		List user investments
//	@Tags			Investments
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.InvestmentResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/investments [get]
func (h *InvestmentHandler) GetInvestments(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	investments, err := h.investmentService.GetUserInvestments(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.InvestmentResponseDTO, 0, len(investments))
	for i := range investments {
		response = append(response, toInvestmentDTO(&investments[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetProjects godoc
//
//	@Summary		List projects
//	@Tags			Projects
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.ProjectResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/projects [get]
func (h *InvestmentHandler) GetProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.investmentService.GetProjects(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.ProjectResponseDTO, 0, len(projects))
	for i := range projects {
		response = append(response, toProjectDTO(&projects[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetProject godoc
//
//	@Summary		Get a project
//	@Tags			Projects
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Project ID"
//	@Success		200	{object}	dto.ProjectResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Project not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/projects/{id} [get]
func (h *InvestmentHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	projectID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid project id")
		return
	}
	project, err := h.investmentService.GetProject(r.Context(), projectID)
	if err != nil {
		if errors.Is(err, investmentservice.ErrProjectNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toProjectDTO(project))
}

// PaymentWebhook godoc
//
//	@Summary		External payment notification
//	@Description	Settle or fail an investment awaiting external payment. The transition is idempotent: replays of the same notification change nothing and still return 200.
//	@Tags			Investments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PaymentWebhookDTO	true	"Gateway notification payload"
//	@Success		200		{object}	dto.InvestmentResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Investment not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/payments/webhook [post]
func (h *InvestmentHandler) PaymentWebhook(w http.ResponseWriter, r *http.Request) {
	var req dto.PaymentWebhookDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	investment, err := h.investmentService.MarkSettled(r.Context(), req.InvestmentID, req.Success)
	if err != nil {
		if errors.Is(err, investmentservice.ErrInvestmentNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toInvestmentDTO(investment))
}

func respondInvestmentError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, investmentservice.ErrInvalidAmount):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, investmentservice.ErrInsufficientBalance):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, investmentservice.ErrProjectNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, investmentservice.ErrProjectNotOpen):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, investmentservice.ErrBelowMinimum), errors.Is(err, investmentservice.ErrExceedsCapacity):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func validationMessage(err error) (string, bool) {
	for _, sentinel := range []error{
		investmentservice.ErrInvalidAmount,
		investmentservice.ErrInsufficientBalance,
		investmentservice.ErrProjectNotFound,
		investmentservice.ErrProjectNotOpen,
		investmentservice.ErrBelowMinimum,
		investmentservice.ErrExceedsCapacity,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error(), true
		}
	}
	return "", false
}

func toInvestmentDTO(inv *domain.Investment) dto.InvestmentResponseDTO {
	return dto.InvestmentResponseDTO{
		ID:            inv.ID,
		ProjectID:     inv.ProjectID,
		Amount:        inv.Amount,
		Currency:      string(inv.Currency),
		PaymentMethod: inv.PaymentMethod,
		Status:        string(inv.Status),
		TransactionID: inv.TransactionID,
		InvestedAt:    inv.InvestedAt,
		CreatedAt:     inv.CreatedAt,
	}
}

func toProjectDTO(p *domain.Project) dto.ProjectResponseDTO {
	return dto.ProjectResponseDTO{
		ID:                p.ID,
		Name:              p.Name,
		GoalAmount:        p.GoalAmount,
		CurrentAmount:     p.CurrentAmount,
		MinimumInvestment: p.MinimumInvestment,
		Currency:          string(p.Currency),
		FundingStatus:     string(p.FundingStatus),
	}
}
