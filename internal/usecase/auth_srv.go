package usecase

import (
	"context"
	"fmt"
	"time"

	"umkm-marketplace/internal/data/entity"
	"umkm-marketplace/internal/data/repository"
	"umkm-marketplace/internal/dto/request"
	"umkm-marketplace/internal/dto/response"
	"umkm-marketplace/pkg/apperror"
	"umkm-marketplace/pkg/mailer"
	"umkm-marketplace/pkg/metrics"
	"umkm-marketplace/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Pesan yang dikembalikan ke client. Pesan kredensial sengaja seragam.
const (
	MsgInvalidCredentials   = "Invalid email or password"
	MsgEmailNotVerified     = "Email not verified. Please verify your email before logging in"
	MsgEmailRegistered      = "Email already registered"
	MsgUsernameExhausted    = "Unable to allocate a unique username, please try again"
	MsgVerificationSendFail = "Account created but the verification email could not be sent"
	MsgEmailVerified        = "Email verified successfully. You can now log in"
	MsgAlreadyVerified      = "Email already verified"
	MsgInvalidVerifyToken   = "Invalid or already used verification token"
	MsgExpiredVerifyToken   = "Verification token has expired, please request a new one"
	MsgVerificationResent   = "If the email is registered and not yet verified, a new verification link has been sent"
	MsgResetLinkSent        = "If the email is registered, a password reset link has been sent"
	MsgInvalidResetToken    = "Invalid reset token"
	MsgExpiredResetToken    = "Reset token has expired, please request a new one"
	MsgCurrentPasswordWrong = "Current password is incorrect"
	MsgPasswordUnchanged    = "New password must be different from the current password"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
	VerifyEmail(ctx context.Context, req *request.VerifyEmailRequest) (string, error)
	ResendVerification(ctx context.Context, req *request.ResendVerificationRequest) (string, error)
	ForgotPassword(ctx context.Context, req *request.ForgotPasswordRequest) (string, error)
	ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error
	UpdatePassword(ctx context.Context, userID uuid.UUID, req *request.UpdatePasswordRequest) error
}

type authService struct {
	repo     *repository.Repository
	config   *utils.Config
	jwt      *utils.JWTManager
	notifier mailer.Notifier
	log      *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	jwt *utils.JWTManager,
	notifier mailer.Notifier,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:     repo,
		config:   config,
		jwt:      jwt,
		notifier: notifier,
		log:      log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (resp *response.RegisterResponse, err error) {
	defer func() { metrics.RecordAuth(metrics.EventRegister, err) }()

	// 1. Validasi input
	req.Email = normalizeEmail(req.Email)
	errs := utils.ValidateStruct(req)

	// 2. Cek email sudah terdaftar, menang atas error field lain
	if _, badEmail := errs["email"]; !badEmail {
		existingUser, err := s.repo.User.FindByEmail(ctx, req.Email)
		if err != nil {
			s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
			return nil, internalError(err)
		}
		if existingUser != nil {
			return nil, apperror.Conflict(MsgEmailRegistered)
		}
	}

	if len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	// 3. Generate username unik dari nama perusahaan
	username, err := s.allocateUsername(ctx, req.CompanyName)
	if err != nil {
		return nil, err
	}

	// 4. Hash password
	hashedPassword, err := utils.HashPassword(req.Password, s.config.Security.BcryptCost)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, internalError(err)
	}

	// 5. Create user (belum terverifikasi)
	token, expiresAt := utils.GenerateExpiringToken(s.config.Token.VerificationTTL())
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:                      req.Email,
		PasswordHash:               hashedPassword,
		IsVerified:                 false,
		VerificationToken:          &token,
		VerificationTokenExpiresAt: &expiresAt,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperror.Conflict(MsgEmailRegistered)
		}
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, internalError(err)
	}

	// 6. Create profil UMKM, rollback user kalau gagal
	umkm := &entity.Umkm{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:       user.ID,
		OwnerName:    req.OwnerName,
		CompanyName:  req.CompanyName,
		Username:     username,
		PhoneNumber:  req.PhoneNumber,
		BannerImages: []string{},
	}

	if err := s.repo.Umkm.Create(ctx, umkm); err != nil {
		s.log.Error("Failed to create umkm profile, rolling back user",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
			zap.String("username", username),
		)
		if delErr := s.repo.User.Delete(ctx, user.ID); delErr != nil {
			s.log.Error("Rollback failed, orphaned user requires manual cleanup",
				zap.Error(delErr),
				zap.String("user_id", user.ID.String()),
				zap.String("email", user.Email),
			)
		}
		return nil, internalError(err)
	}

	// 7. Kirim email verifikasi (ditunggu)
	if err := s.notifier.SendVerification(ctx, user.Email, s.verificationLink(token)); err != nil {
		s.log.Error("Failed to send verification email",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
			zap.String("email", user.Email),
		)
		return nil, apperror.Internal(err, MsgVerificationSendFail)
	}

	s.log.Info("UMKM registered",
		zap.String("user_id", user.ID.String()),
		zap.String("umkm_id", umkm.ID.String()),
		zap.String("username", username),
	)

	return &response.RegisterResponse{
		User: response.UserToResponse(user),
		Umkm: response.UmkmToResponse(umkm),
	}, nil
}

// allocateUsername mencoba slug dulu, lalu slug + suffix acak sampai batas percobaan
func (s *authService) allocateUsername(ctx context.Context, companyName string) (string, error) {
	attempts := s.config.Security.UsernameAttempts
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 0; attempt < attempts; attempt++ {
		candidate := utils.UsernameCandidate(companyName, attempt)

		existing, err := s.repo.Umkm.FindByUsername(ctx, candidate)
		if err != nil {
			s.log.Error("Failed to check username", zap.Error(err), zap.String("username", candidate))
			return "", internalError(err)
		}
		if existing == nil {
			return candidate, nil
		}

		s.log.Debug("Username taken, retrying",
			zap.String("username", candidate),
			zap.Int("attempt", attempt+1),
		)
	}

	s.log.Error("Username attempts exhausted",
		zap.String("company_name", companyName),
		zap.Int("attempts", attempts),
	)
	return "", apperror.Internal(fmt.Errorf("no free username after %d attempts", attempts), MsgUsernameExhausted)
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (resp *response.LoginResponse, err error) {
	defer func() { metrics.RecordAuth(metrics.EventLogin, err) }()

	// 1. Validasi
	req.Email = normalizeEmail(req.Email)
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	// 2. Find user by email
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", req.Email))
		return nil, internalError(err)
	}

	// 3. User not found, pesan sama dengan password salah
	if user == nil {
		s.log.Warn("User not found for login", zap.String("email", req.Email))
		return nil, apperror.Unauthorized(MsgInvalidCredentials)
	}

	// 4. Check password
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, apperror.Unauthorized(MsgInvalidCredentials)
	}

	// 5. Email harus sudah diverifikasi
	if !user.IsVerified {
		s.log.Warn("Unverified user tried to login", zap.String("user_id", user.ID.String()))
		return nil, apperror.Forbidden(MsgEmailNotVerified)
	}

	// 6. Load profil UMKM (wajib ada satu)
	umkm, err := s.repo.Umkm.FindByUserID(ctx, user.ID)
	if err != nil {
		s.log.Error("Failed to find umkm for login", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, internalError(err)
	}
	if umkm == nil {
		s.log.Error("Verified user has no umkm profile", zap.String("user_id", user.ID.String()))
		return nil, internalError(errUmkmMissing)
	}

	// 7. Issue session token
	token, expiresAt, err := s.jwt.Generate(utils.Identity{
		UserID:     user.ID,
		Email:      user.Email,
		UmkmID:     umkm.ID,
		Username:   umkm.Username,
		IsVerified: user.IsVerified,
	})
	if err != nil {
		s.log.Error("Failed to sign session token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, internalError(err)
	}

	s.log.Info("UMKM logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("username", umkm.Username),
	)

	return &response.LoginResponse{
		Token:       token,
		ExpiresAt:   expiresAt,
		UmkmProfile: response.UmkmToSummary(umkm),
	}, nil
}

func (s *authService) VerifyEmail(ctx context.Context, req *request.VerifyEmailRequest) (msg string, err error) {
	defer func() { metrics.RecordAuth(metrics.EventVerifyEmail, err) }()

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Verify email validation failed", zap.Any("errors", errs))
		return "", apperror.BadRequest(MsgInvalidVerifyToken)
	}

	user, err := s.repo.User.FindByVerificationToken(ctx, req.Token)
	if err != nil {
		s.log.Error("Failed to find user by verification token", zap.Error(err))
		return "", internalError(err)
	}
	if user == nil {
		return "", apperror.BadRequest(MsgInvalidVerifyToken)
	}

	if user.IsVerified {
		return MsgAlreadyVerified, nil
	}

	if user.VerificationExpired(time.Now()) {
		s.log.Warn("Expired verification token used", zap.String("user_id", user.ID.String()))
		return "", apperror.BadRequest(MsgExpiredVerifyToken)
	}

	user.MarkVerified()
	user.UpdatedAt = time.Now()
	if err := s.repo.User.Update(ctx, user); err != nil {
		s.log.Error("Failed to mark user verified", zap.Error(err), zap.String("user_id", user.ID.String()))
		return "", internalError(err)
	}

	s.log.Info("Email verified", zap.String("user_id", user.ID.String()))
	return MsgEmailVerified, nil
}

// ResendVerification memakai respons generik yang sama untuk email tidak terdaftar
// maupun sudah terverifikasi.
func (s *authService) ResendVerification(ctx context.Context, req *request.ResendVerificationRequest) (msg string, err error) {
	defer func() { metrics.RecordAuth(metrics.EventResend, err) }()

	req.Email = normalizeEmail(req.Email)
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return "", validationError(errs)
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user for resend", zap.Error(err), zap.String("email", req.Email))
		return "", internalError(err)
	}
	if user == nil || user.IsVerified {
		s.log.Info("Resend verification skipped", zap.String("email", req.Email), zap.Bool("found", user != nil))
		return MsgVerificationResent, nil
	}

	token, expiresAt := utils.GenerateExpiringToken(s.config.Token.VerificationTTL())
	user.VerificationToken = &token
	user.VerificationTokenExpiresAt = &expiresAt
	user.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.log.Error("Failed to store new verification token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return "", internalError(err)
	}

	if err := s.notifier.SendVerification(ctx, user.Email, s.verificationLink(token)); err != nil {
		s.log.Error("Failed to resend verification email", zap.Error(err), zap.String("user_id", user.ID.String()))
		return "", internalError(err)
	}

	s.log.Info("Verification email resent", zap.String("user_id", user.ID.String()))
	return MsgVerificationResent, nil
}

func (s *authService) ForgotPassword(ctx context.Context, req *request.ForgotPasswordRequest) (msg string, err error) {
	defer func() { metrics.RecordAuth(metrics.EventForgotPassword, err) }()

	req.Email = normalizeEmail(req.Email)
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return "", validationError(errs)
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user for password reset", zap.Error(err), zap.String("email", req.Email))
		return "", internalError(err)
	}
	if user == nil {
		s.log.Info("Password reset requested for unknown email", zap.String("email", req.Email))
		return MsgResetLinkSent, nil
	}

	// 1 token aktif per user; gagal hapus token lama tidak fatal
	if err := s.repo.ResetToken.DeleteByUserID(ctx, user.ID); err != nil {
		s.log.Warn("Failed to delete previous reset tokens", zap.Error(err), zap.String("user_id", user.ID.String()))
	}

	token, expiresAt := utils.GenerateExpiringToken(s.config.Token.ResetTTL())
	resetToken := &entity.PasswordResetToken{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: expiresAt,
	}

	if err := s.repo.ResetToken.Create(ctx, resetToken); err != nil {
		s.log.Error("Failed to create reset token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return "", internalError(err)
	}

	if err := s.notifier.SendPasswordReset(ctx, user.Email, s.resetLink(token)); err != nil {
		s.log.Error("Failed to send reset email", zap.Error(err), zap.String("user_id", user.ID.String()))
		return "", internalError(err)
	}

	s.log.Info("Password reset link sent", zap.String("user_id", user.ID.String()))
	return MsgResetLinkSent, nil
}

func (s *authService) ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) (err error) {
	defer func() { metrics.RecordAuth(metrics.EventResetPassword, err) }()

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return validationError(errs)
	}

	resetToken, err := s.repo.ResetToken.FindByToken(ctx, req.Token)
	if err != nil {
		s.log.Error("Failed to find reset token", zap.Error(err))
		return internalError(err)
	}
	if resetToken == nil {
		return apperror.BadRequest(MsgInvalidResetToken)
	}
	if resetToken.IsExpired(time.Now()) {
		s.log.Warn("Expired reset token used", zap.String("user_id", resetToken.UserID.String()))
		return apperror.BadRequest(MsgExpiredResetToken)
	}

	user, err := s.repo.User.FindByID(ctx, resetToken.UserID)
	if err != nil {
		s.log.Error("Failed to find user for reset", zap.Error(err), zap.String("user_id", resetToken.UserID.String()))
		return internalError(err)
	}
	if user == nil {
		return apperror.BadRequest(MsgInvalidResetToken)
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword, s.config.Security.BcryptCost)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return internalError(err)
	}

	user.PasswordHash = hashedPassword
	user.UpdatedAt = time.Now()
	if err := s.repo.User.Update(ctx, user); err != nil {
		s.log.Error("Failed to update password", zap.Error(err), zap.String("user_id", user.ID.String()))
		return internalError(err)
	}

	// password sudah berubah, gagal hapus token cukup di-log
	if err := s.repo.ResetToken.Delete(ctx, resetToken.ID); err != nil {
		s.log.Warn("Failed to delete used reset token", zap.Error(err), zap.String("user_id", user.ID.String()))
	}

	s.log.Info("Password reset", zap.String("user_id", user.ID.String()))
	return nil
}

func (s *authService) UpdatePassword(ctx context.Context, userID uuid.UUID, req *request.UpdatePasswordRequest) (err error) {
	defer func() { metrics.RecordAuth(metrics.EventUpdatePassword, err) }()

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return validationError(errs)
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID.String()))
		return internalError(err)
	}
	if user == nil {
		return apperror.NotFound("User not found")
	}

	if !utils.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		s.log.Warn("Wrong current password", zap.String("user_id", userID.String()))
		return apperror.Unauthorized(MsgCurrentPasswordWrong)
	}

	if !utils.IsStrongPassword(req.NewPassword) {
		return validationError(map[string]string{"new_password": utils.PasswordRuleMessage})
	}

	if req.CurrentPassword == req.NewPassword {
		return apperror.BadRequest(MsgPasswordUnchanged)
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword, s.config.Security.BcryptCost)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return internalError(err)
	}

	user.PasswordHash = hashedPassword
	user.UpdatedAt = time.Now()
	if err := s.repo.User.Update(ctx, user); err != nil {
		s.log.Error("Failed to update password", zap.Error(err), zap.String("user_id", userID.String()))
		return internalError(err)
	}

	s.log.Info("Password updated", zap.String("user_id", userID.String()))
	return nil
}

func (s *authService) verificationLink(token string) string {
	return s.config.App.BaseURL + "/api/v1/auth/verify-email?token=" + token
}

func (s *authService) resetLink(token string) string {
	return s.config.App.FrontendURL + "/reset-password?token=" + token
}
