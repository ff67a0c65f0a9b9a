package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"travelhub/internal/domain"
	pkgvalidator "travelhub/internal/pkg/validator"
)

type jwtService interface {
	GenerateToken(userID int64, role string) (string, error)
	TTL() time.Duration
}

type Service struct {
	users       UserRepository
	resetTokens ResetTokenRepository
	jwt         jwtService
	mailer      Mailer
	revoker     TokenRevoker

	resetTokenTTL time.Duration
	frontendURL   string
	now           func() time.Time
	onRegister    func(user *domain.User)
}

// OnRegister installs a hook fired after a successful registration,
// used to greet the new account in the notification center.
func (s *Service) OnRegister(fn func(user *domain.User)) { s.onRegister = fn }

func NewService(users UserRepository, resetTokens ResetTokenRepository, jwt jwtService, mailer Mailer, revoker TokenRevoker, resetTokenTTL time.Duration, frontendURL string) *Service {
	return &Service{
		users:         users,
		resetTokens:   resetTokens,
		jwt:           jwt,
		mailer:        mailer,
		revoker:       revoker,
		resetTokenTTL: resetTokenTTL,
		frontendURL:   strings.TrimRight(frontendURL, "/"),
		now:           time.Now,
	}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	taken, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if taken {
		return nil, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Phone:        req.Phone,
		Role:         domain.RoleUser,
		Preferences:  domain.DefaultPreferences(),
	}
	if err := pkgvalidator.Check(user); err != nil {
		return nil, "", err
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, "", err
	}

	if s.onRegister != nil {
		s.onRegister(user)
	}
	return user, token, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*domain.User, string, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Logout revokes the presented token until its natural expiry. Logging
// out is idempotent: revoking an already-revoked or unknown token still
// succeeds, so the client can always drop its session.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" || s.revoker == nil {
		return nil
	}
	return s.revoker.Revoke(ctx, token, s.jwt.TTL())
}

func (s *Service) Me(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *Service) UpdateDetails(ctx context.Context, userID int64, req UpdateDetailsRequest) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Preferences != nil {
		user.Preferences = *req.Preferences
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) UpdatePassword(ctx context.Context, userID int64, req UpdatePasswordRequest) (string, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return "", ErrUserNotFound
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)) != nil {
		return "", ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	if err := s.users.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return "", err
	}

	// fresh token so the client does not have to log in again
	return s.jwt.GenerateToken(user.ID, string(user.Role))
}

// ForgotPassword issues a reset token and mails the link. An unknown
// email reports success all the same; the endpoint must not leak which
// addresses have accounts.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	token, err := randomToken()
	if err != nil {
		return err
	}

	reset := &domain.PasswordResetToken{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: s.now().Add(s.resetTokenTTL),
	}
	if err := s.resetTokens.Create(ctx, reset); err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/reset-password/%s", s.frontendURL, token)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := s.mailer.SendPasswordReset(ctx, user.Email, user.Name, resetURL); err != nil {
			log.Printf("password reset mail to %s: %v", user.Email, err)
		}
	}()
	return nil
}

func (s *Service) ResetPassword(ctx context.Context, token, newPassword string) (*domain.User, string, error) {
	reset, err := s.resetTokens.GetByToken(ctx, token)
	if err != nil {
		return nil, "", ErrInvalidResetToken
	}
	if !reset.Valid(s.now()) {
		return nil, "", ErrInvalidResetToken
	}

	user, err := s.users.GetByID(ctx, reset.UserID)
	if err != nil {
		return nil, "", ErrUserNotFound
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}
	if err := s.users.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		return nil, "", err
	}
	if err := s.resetTokens.MarkUsed(ctx, reset.ID, s.now()); err != nil {
		return nil, "", err
	}

	jwtToken, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, "", err
	}
	return user, jwtToken, nil
}

func (s *Service) SetProfileImage(ctx context.Context, userID int64, imageURL string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	user.ProfileImage = imageURL
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func randomToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
