// Package authservice handles account registration, login and the admin
// approval step that releases referral welcome bonuses.
package authservice

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/korpor/fundledger/internal/domain"
	"github.com/korpor/fundledger/pkg/auth"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=authservice.go -destination=mock.go -package=authservice

type UserRepo interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindByReferralCode(ctx context.Context, code string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	MarkVerified(ctx context.Context, userID int) (bool, error)
}

// Referrals is the slice of the referral cascade registration and approval
// need: recording the pending referral and releasing the welcome bonus.
type Referrals interface {
	Create(ctx context.Context, referrerID, refereeID int, currency domain.Currency) (*domain.Referral, error)
	OnApproval(ctx context.Context, userID int) (bool, error)
}

var (
	ErrLoginTaken          = errors.New("username already taken")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUnknownReferralCode = errors.New("unknown referral code")
	ErrUserNotFound        = errors.New("user not found")
)

const tokenTTL = 15 * time.Minute

type Service struct {
	userRepo    UserRepo
	referrals   Referrals
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(userRepo UserRepo, referrals Referrals, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    userRepo,
		referrals:   referrals,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

// Register creates an investor account. When a referral code is supplied it
// must resolve to an existing user; the referral is recorded as pending and
// pays nothing until the account is approved.
func (s *Service) Register(ctx context.Context, login, password, referralCode string, currency domain.Currency) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("login", login))
		return nil, ErrLoginTaken
	}

	var referrer *domain.User
	if referralCode != "" {
		referrer, err = s.userRepo.FindByReferralCode(ctx, referralCode)
		if err != nil {
			return nil, err
		}
		if referrer == nil {
			return nil, ErrUnknownReferralCode
		}
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}

	if currency == "" {
		currency = domain.CurrencyTND
	}
	user := &domain.User{
		Login:         login,
		PasswordHash:  hashedPassword,
		Role:          domain.RoleInvestor,
		Currency:      currency,
		ReferralCode:  newReferralCode(),
		InvestedTotal: decimal.Zero,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user", zap.Error(err))
		return nil, err
	}

	if referrer != nil {
		if _, err := s.referrals.Create(ctx, referrer.ID, newUser.ID, currency); err != nil {
			zap.L().Error("can't record referral", zap.Error(err))
			return nil, err
		}
	}

	zap.L().Info("user successfully registered", zap.String("login", login))
	return newUser, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil || user == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("login", login))
	return user, nil
}

func (s *Service) GenerateToken(userID int, role domain.Role) (string, error) {
	token, err := s.jwtService.GenerateJWT(userID, role, time.Now().Add(tokenTTL))
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", err
	}
	return token, nil
}

// Approve marks an account verified and fires the referral welcome bonus.
// Re-approving a verified account is a no-op, so the bonus trigger runs at
// most once per account.
func (s *Service) Approve(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	flipped, err := s.userRepo.MarkVerified(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Verified = true

	if flipped {
		if _, err := s.referrals.OnApproval(ctx, userID); err != nil {
			// The account stays approved; the bonus is retried by the
			// cascade worker.
			zap.L().Error("referral approval trigger failed", zap.Int("user_id", userID), zap.Error(err))
		}
	}
	return user, nil
}

func newReferralCode() string {
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		return hex.EncodeToString([]byte(time.Now().String()))[:12]
	}
	return hex.EncodeToString(b)
}
