package middleware

import (
	"errors"
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/api"
	"github.com/RoyceAzure/lab/shopcenter/internal/token"
)

// AuthMiddleware 驗證ctx是否有token payload
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := r.Context().Value(constants.AuthorizationPayloadKey).(*token.Payload)
		if !ok {
			api.ErrorJSON(w, http.StatusUnauthorized, errors.New("unauthenticated"), "unauthenticated")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole 角色授權，掛在 AuthMiddleware 之後
func RequireRole(roles ...model.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			payload, ok := r.Context().Value(constants.AuthorizationPayloadKey).(*token.Payload)
			if !ok {
				api.ErrorJSON(w, http.StatusUnauthorized, errors.New("unauthenticated"), "unauthenticated")
				return
			}
			for _, role := range roles {
				if payload.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			api.ErrorJSON(w, http.StatusForbidden, errors.New("insufficient permissions"), "forbidden")
		})
	}
}
