package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/carebridge/enrollment-api/internal/api/metrics"
	"github.com/carebridge/enrollment-api/internal/core/domain"
	"github.com/carebridge/enrollment-api/internal/core/ports"
)

const (
	verificationTokenTTL = 12 * time.Hour
	resetTokenTTL        = time.Hour
)

// LoginThrottle abstracts the failed-attempt counter (Redis). A nil throttle
// disables throttling.
type LoginThrottle interface {
	TooManyAttempts(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// AuthConfig carries the settings the credential workflow depends on. It is
// constructed once at startup and passed in explicitly.
type AuthConfig struct {
	JWTSecret   string
	TokenTTL    time.Duration
	FrontendURL string
}

// AuthService implements the credential lifecycle: registration, email
// verification, login, password reset, and role upgrade.
type AuthService struct {
	users    ports.UserRepository
	mailer   ports.Mailer
	throttle LoginThrottle
	cfg      AuthConfig
	log      zerolog.Logger
}

func NewAuthService(users ports.UserRepository, mailer ports.Mailer, throttle LoginThrottle, cfg AuthConfig, log zerolog.Logger) *AuthService {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	return &AuthService{users: users, mailer: mailer, throttle: throttle, cfg: cfg, log: log}
}

// Register provisions a client-role account, its profile row, and dispatches
// the verification email. Account and profile are written in one transaction.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (string, error) {
	if _, err := s.users.FindByEmail(ctx, in.Email); err == nil {
		return "", domain.ErrEmailExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	token, err := newSecureToken()
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	expiresAt := now.Add(verificationTokenTTL)
	user := &domain.User{
		ID:                    newUserID(),
		Email:                 in.Email,
		PasswordHash:          string(hash),
		Role:                  domain.RoleClient,
		ImageURL:              in.ImageURL,
		IsActive:              true,
		VerificationToken:     token,
		VerificationExpiresAt: &expiresAt,
		CreatedAt:             now,
	}
	profile := &domain.ClientProfile{
		UserID:      user.ID,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Gender:      in.Gender,
		DateOfBirth: in.DateOfBirth,
		Phone:       in.Phone,
		Address:     in.Address,
	}

	if err := s.users.CreateWithClientProfile(ctx, user, profile); err != nil {
		return "", err
	}

	metrics.RegistrationsTotal.Inc()
	s.log.Info().Str("user_id", user.ID).Msg("user registered")

	s.sendVerificationEmail(ctx, user.Email, token)
	return user.ID, nil
}

// VerifyAccount consumes a verification token. Tokens are single-use: the
// token pair is cleared when the verified flag flips.
func (s *AuthService) VerifyAccount(ctx context.Context, token string) error {
	user, err := s.users.FindByVerificationToken(ctx, token, time.Now().UTC())
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrInvalidToken
		}
		return err
	}

	if user.IsVerified {
		return nil
	}

	user.IsVerified = true
	user.VerificationToken = ""
	user.VerificationExpiresAt = nil
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	s.log.Info().Str("user_id", user.ID).Msg("account verified")
	return nil
}

// Login authenticates the credentials and issues a signed token. Absent
// accounts and password mismatches return the same error so callers cannot
// enumerate registered emails.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		blocked, err := s.throttle.TooManyAttempts(ctx, email)
		if err != nil {
			s.log.Warn().Err(err).Msg("login throttle check failed, proceeding")
		} else if blocked {
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
			return nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailedLogin(ctx, email)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsVerified {
		return nil, domain.ErrNotVerified
	}
	if !user.IsActive {
		return nil, domain.ErrAccountDeactivated
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.recordFailedLogin(ctx, email)
		return nil, domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, email); err != nil {
			s.log.Warn().Err(err).Msg("login throttle reset failed")
		}
	}

	view, err := s.view(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("user logged in")

	return &ports.LoginResult{Token: token, User: view}, nil
}

// RequestPasswordReset stores a one-hour reset token and emails the link.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	token, err := newSecureToken()
	if err != nil {
		return err
	}

	expiresAt := time.Now().UTC().Add(resetTokenTTL)
	user.ResetToken = token
	user.ResetExpiresAt = &expiresAt
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.cfg.FrontendURL, token)
	body := fmt.Sprintf(`<p>A password reset was requested for your account.</p>
<p>Set a new password here: <a href="%s">Reset Password</a></p>
<p>This link expires in 1 hour. If you did not request it, ignore this email.</p>`, resetURL)
	if err := s.mailer.Send(ctx, user.Email, "Password Reset Request", body); err != nil {
		s.log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to dispatch reset email")
	}

	s.log.Info().Str("user_id", user.ID).Msg("password reset requested")
	return nil
}

// ResetPassword consumes a reset token and stores the new password hash.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	user, err := s.users.FindByResetToken(ctx, token, time.Now().UTC())
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrInvalidToken
		}
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hash)
	user.ResetToken = ""
	user.ResetExpiresAt = nil
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	s.log.Info().Str("user_id", user.ID).Msg("password reset completed")
	return nil
}

// ResendVerification rotates the verification token for an unverified account
// and re-sends the email.
func (s *AuthService) ResendVerification(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user.IsVerified {
		return domain.ErrAlreadyVerified
	}

	token, err := newSecureToken()
	if err != nil {
		return err
	}

	expiresAt := time.Now().UTC().Add(verificationTokenTTL)
	user.VerificationToken = token
	user.VerificationExpiresAt = &expiresAt
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	s.sendVerificationEmail(ctx, user.Email, token)
	return nil
}

// ChangePassword verifies the current password before storing the new hash.
func (s *AuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hash)
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	s.log.Info().Str("user_id", userID).Msg("password changed")
	return nil
}

// UpgradeToDoctor flips a client-role account to doctor and inserts the doctor
// profile in one transaction. The client profile row is retained: it holds the
// person's name and contact details, which the doctor profile does not.
func (s *AuthService) UpgradeToDoctor(ctx context.Context, userID, licenseNumber, specialization string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.Role != domain.RoleClient {
		return domain.ErrNotClient
	}

	profile := &domain.DoctorProfile{
		UserID:         userID,
		LicenseNumber:  licenseNumber,
		Specialization: specialization,
	}
	if err := s.users.PromoteToDoctor(ctx, userID, profile); err != nil {
		return err
	}

	s.log.Info().Str("user_id", userID).Msg("user upgraded to doctor")
	return nil
}

// GetProfile returns the account enriched with its role profile.
func (s *AuthService) GetProfile(ctx context.Context, userID string) (*ports.UserView, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, user)
}

// UpdateProfile applies field-level updates to the account and its role
// profile. Nil input fields are left untouched.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, in ports.UpdateProfileInput) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if in.Email != nil || in.ImageURL != nil {
		if in.Email != nil {
			user.Email = *in.Email
		}
		if in.ImageURL != nil {
			user.ImageURL = *in.ImageURL
		}
		if err := s.users.Update(ctx, user); err != nil {
			return err
		}
	}

	switch user.Role {
	case domain.RoleClient:
		profile, err := s.users.ClientProfile(ctx, userID)
		if err != nil {
			return err
		}
		if in.FirstName != nil {
			profile.FirstName = *in.FirstName
		}
		if in.LastName != nil {
			profile.LastName = *in.LastName
		}
		if in.Phone != nil {
			profile.Phone = *in.Phone
		}
		if in.Address != nil {
			profile.Address = *in.Address
		}
		if err := s.users.UpdateClientProfile(ctx, profile); err != nil {
			return err
		}
	case domain.RoleDoctor:
		profile, err := s.users.DoctorProfile(ctx, userID)
		if err != nil {
			return err
		}
		if in.LicenseNumber != nil {
			profile.LicenseNumber = *in.LicenseNumber
		}
		if in.Specialization != nil {
			profile.Specialization = *in.Specialization
		}
		if err := s.users.UpdateDoctorProfile(ctx, profile); err != nil {
			return err
		}
	}

	return nil
}

// SearchUsers pattern-matches accounts by email or id, optionally narrowed by
// role, and enriches each hit with its profile.
func (s *AuthService) SearchUsers(ctx context.Context, query, role string) ([]*ports.UserView, error) {
	users, err := s.users.Search(ctx, query, role)
	if err != nil {
		return nil, err
	}
	return s.views(ctx, users)
}

// ListUsers returns up to limit accounts with their profiles.
func (s *AuthService) ListUsers(ctx context.Context, limit int) ([]*ports.UserView, error) {
	if limit <= 0 {
		limit = 10
	}
	users, err := s.users.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	return s.views(ctx, users)
}

func (s *AuthService) sendVerificationEmail(ctx context.Context, to, token string) {
	verifyURL := fmt.Sprintf("%s/verify-account?token=%s", s.cfg.FrontendURL, token)
	body := fmt.Sprintf(`<p>Hello!</p>
<p>Please verify your email by clicking this link: <a href="%s">Verify Email</a></p>
<p>This link will expire in 12 hours.</p>`, verifyURL)
	if err := s.mailer.Send(ctx, to, "Email Verification Required", body); err != nil {
		s.log.Warn().Err(err).Msg("failed to dispatch verification email")
	}
}

func (s *AuthService) recordFailedLogin(ctx context.Context, email string) {
	metrics.LoginsTotal.WithLabelValues("failure").Inc()
	if s.throttle == nil {
		return
	}
	if err := s.throttle.RecordFailure(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("login throttle record failed")
	}
}

func (s *AuthService) view(ctx context.Context, user *domain.User) (*ports.UserView, error) {
	v := &ports.UserView{User: user}
	switch user.Role {
	case domain.RoleClient:
		profile, err := s.users.ClientProfile(ctx, user.ID)
		if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		v.ClientProfile = profile
	case domain.RoleDoctor:
		profile, err := s.users.DoctorProfile(ctx, user.ID)
		if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		v.DoctorProfile = profile
	}
	return v, nil
}

func (s *AuthService) views(ctx context.Context, users []*domain.User) ([]*ports.UserView, error) {
	out := make([]*ports.UserView, 0, len(users))
	for _, u := range users {
		v, err := s.view(ctx, u)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"exp":     time.Now().Add(s.cfg.TokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.cfg.JWTSecret))
}

// newSecureToken returns 32 random bytes hex-encoded, the format used for both
// verification and reset tokens.
func newSecureToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func newUserID() string {
	return "USER-" + uuid.NewString()
}
