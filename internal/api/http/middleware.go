package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"damone-orders/internal/i18n"
)

type contextKey string

const (
	ctxSessionID contextKey = "sessionID"
	ctxUserID    contextKey = "userID"
	ctxIsAdmin   contextKey = "isAdmin"
)

const sessionCookie = "damone_session"

// withSession guarantees a session id for the request, minting a cookie on
// first touch so the cart survives reloads.
func withSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid := ""
		if cookie, err := r.Cookie(sessionCookie); err == nil && cookie.Value != "" {
			sid = cookie.Value
		} else {
			sid = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookie,
				Value:    sid,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		ctx := context.WithValue(r.Context(), ctxSessionID, sid)
		next(w, r.WithContext(ctx))
	}
}

func (h *Handler) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "missing authorization header", http.StatusUnauthorized)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			http.Error(w, "invalid authorization format, use 'Bearer <token>'", http.StatusUnauthorized)
			return
		}

		uid, admin, err := h.Auth.ValidateToken(parts[1])
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), ctxUserID, uid)
		ctx = context.WithValue(ctx, ctxIsAdmin, admin)
		next(w, r.WithContext(ctx))
	}
}

func (h *Handler) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return h.requireAuth(func(w http.ResponseWriter, r *http.Request) {
		if !isAdmin(r) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		next(w, r)
	})
}

func sessionID(r *http.Request) string {
	if sid, ok := r.Context().Value(ctxSessionID).(string); ok {
		return sid
	}
	return ""
}

func userID(r *http.Request) string {
	if uid, ok := r.Context().Value(ctxUserID).(string); ok {
		return uid
	}
	return ""
}

func isAdmin(r *http.Request) bool {
	admin, _ := r.Context().Value(ctxIsAdmin).(bool)
	return admin
}

func language(r *http.Request) string {
	if lang := r.URL.Query().Get("lang"); lang != "" {
		return lang
	}
	return i18n.DefaultLanguage
}
