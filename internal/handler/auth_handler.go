package handler

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/yusufkecer/fitness-crm-backend/internal/domain"
	"github.com/yusufkecer/fitness-crm-backend/internal/middleware"
	"github.com/yusufkecer/fitness-crm-backend/internal/repository"
)

//go:generate mockgen -source=$GOFILE -destination=auth_handler_mocks_test.go -package=handler_test

const (
	resetTokenTTL     = 15 * time.Minute
	minPasswordLength = 6
	forgotPasswordMsg = "if the email exists, a code has been sent"
)

type TrainerStore interface {
	Create(ctx context.Context, email, passwordHash string) (int64, error)
	GetByEmail(ctx context.Context, email string) (*domain.Trainer, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

type ResetTokenStore interface {
	Create(ctx context.Context, trainerID int64, token string, expiresAt time.Time) error
	GetValidByEmailAndToken(ctx context.Context, email, token string) (*domain.PasswordResetToken, error)
	MarkUsed(ctx context.Context, id int64) error
	DeleteByTrainerID(ctx context.Context, trainerID int64) error
}

type PasswordResetMailer interface {
	SendPasswordReset(ctx context.Context, to, token string) error
}

type AuthHandler struct {
	jwtSecret      string
	trainers       TrainerStore
	resetTokenRepo ResetTokenStore
	mailer         PasswordResetMailer
	bcryptCost     int

	// pending forgot-password deliveries
	wg sync.WaitGroup
}

func NewAuthHandler(
	jwtSecret string,
	trainers TrainerStore,
	resetTokenRepo ResetTokenStore,
	mailer PasswordResetMailer,
) *AuthHandler {
	return &AuthHandler{
		jwtSecret:      jwtSecret,
		trainers:       trainers,
		resetTokenRepo: resetTokenRepo,
		mailer:         mailer,
		bcryptCost:     bcrypt.DefaultCost,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	email, msg := normalizeEmail(req.Email)
	if msg != "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, firstNonEmpty(msg, "email and password are required"))
		return
	}
	if len(req.Password) < minPasswordLength {
		writeError(w, http.StatusBadRequest, "password must be at least 6 characters")
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), h.bcryptCost)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to hash password")
		return
	}

	trainerID, err := h.trainers.Create(r.Context(), email, string(passwordHash))
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			writeError(w, http.StatusConflict, "email already exists")
			return
		}
		log.Errorf("failed to create trainer: %s", err)
		writeError(w, http.StatusInternalServerError, "failed to create account")
		return
	}

	token, err := middleware.GenerateToken(trainerID, email, h.jwtSecret)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	writeJSON(w, http.StatusCreated, domain.TokenResponse{Token: token})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	email, msg := normalizeEmail(req.Email)
	if msg != "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, firstNonEmpty(msg, "email and password are required"))
		return
	}

	trainer, err := h.trainers.GetByEmail(r.Context(), email)
	if err != nil {
		log.Errorf("login lookup for %s: %s", email, err)
		writeError(w, http.StatusInternalServerError, "failed to login")
		return
	}
	if trainer == nil {
		writeError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(trainer.PasswordHash), []byte(req.Password)); err != nil {
		writeError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	token, err := middleware.GenerateToken(trainer.ID, trainer.Email, h.jwtSecret)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	writeJSON(w, http.StatusOK, domain.TokenResponse{Token: token})
}

// ForgotPassword always answers 200 so callers cannot learn which e-mails exist.
// The code is generated and sent in the background.
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req domain.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusOK, map[string]string{"message": forgotPasswordMsg})
		return
	}

	email, msg := normalizeEmail(req.Email)
	if msg == "" {
		h.wg.Add(1)
		go func() {
			defer h.wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			h.sendResetCode(ctx, email)
		}()
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": forgotPasswordMsg})
}

// Wait blocks until background reset e-mails are done.
func (h *AuthHandler) Wait() {
	h.wg.Wait()
}

func (h *AuthHandler) sendResetCode(ctx context.Context, email string) {
	trainer, err := h.trainers.GetByEmail(ctx, email)
	if err != nil {
		log.Errorf("[forgot-password] db error looking up %s: %s", email, err)
		return
	}
	if trainer == nil {
		return
	}

	if err := h.resetTokenRepo.DeleteByTrainerID(ctx, trainer.ID); err != nil {
		log.Warnf("[forgot-password] failed to delete old tokens for trainer %d: %s", trainer.ID, err)
	}

	otp, err := generateOTP()
	if err != nil {
		log.Errorf("[forgot-password] failed to generate OTP: %s", err)
		return
	}

	if err := h.resetTokenRepo.Create(ctx, trainer.ID, otp, time.Now().Add(resetTokenTTL)); err != nil {
		log.Errorf("[forgot-password] failed to save reset token for trainer %d: %s", trainer.ID, err)
		return
	}

	if err := h.mailer.SendPasswordReset(ctx, email, otp); err != nil {
		log.Errorf("[forgot-password] failed to send reset email to %s: %s", email, err)
		return
	}
	log.Infof("[forgot-password] reset email sent to %s", email)
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req domain.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || req.Token == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email, token and password are required")
		return
	}
	if len(req.Password) < minPasswordLength {
		writeError(w, http.StatusBadRequest, "password must be at least 6 characters")
		return
	}

	resetToken, err := h.resetTokenRepo.GetValidByEmailAndToken(r.Context(), email, req.Token)
	if err != nil {
		log.Errorf("verify reset token for %s: %s", email, err)
		writeError(w, http.StatusInternalServerError, "failed to verify token")
		return
	}
	if resetToken == nil {
		writeError(w, http.StatusUnauthorized, "invalid or expired token")
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), h.bcryptCost)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to hash password")
		return
	}

	if err := h.trainers.UpdatePassword(r.Context(), resetToken.TrainerID, string(passwordHash)); err != nil {
		log.Errorf("update password for trainer %d: %s", resetToken.TrainerID, err)
		writeError(w, http.StatusInternalServerError, "failed to update password")
		return
	}

	if err := h.resetTokenRepo.MarkUsed(r.Context(), resetToken.ID); err != nil {
		log.Warnf("failed to mark reset token %d as used: %s", resetToken.ID, err)
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "password reset successful"})
}

// normalizeEmail lowercases and trims; msg is non-empty when the address is
// missing or malformed.
func normalizeEmail(raw string) (email, msg string) {
	email = strings.TrimSpace(strings.ToLower(raw))
	if email == "" {
		return "", "email and password are required"
	}
	at := strings.Index(email, "@")
	if at <= 0 || !strings.Contains(email[at:], ".") {
		return "", "invalid email format"
	}
	return email, ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func generateOTP() (string, error) {
	b := make([]byte, 3)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	n := int(b[0])<<16 | int(b[1])<<8 | int(b[2])
	return fmt.Sprintf("%06d", n%1000000), nil
}
