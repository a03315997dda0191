package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const TrainerIDKey contextKey = "trainer_id"

const tokenTTL = 30 * 24 * time.Hour

type Claims struct {
	TrainerID int64  `json:"trainer_id"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

func GenerateToken(trainerID int64, email, secret string) (string, error) {
	now := time.Now()
	claims := Claims{
		TrainerID: trainerID,
		Email:     email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseToken(tokenStr, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.TrainerID <= 0 {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

func AuthMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				writeError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			tokenStr := strings.TrimPrefix(header, "Bearer ")
			if tokenStr == header {
				writeError(w, http.StatusUnauthorized, "invalid authorization format")
				return
			}

			claims, err := ParseToken(tokenStr, secret)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx := WithTrainerID(r.Context(), claims.TrainerID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func WithTrainerID(ctx context.Context, trainerID int64) context.Context {
	return context.WithValue(ctx, TrainerIDKey, trainerID)
}

func TrainerIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(TrainerIDKey).(int64)
	return id, ok && id > 0
}
