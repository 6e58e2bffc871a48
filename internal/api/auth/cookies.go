package auth

import (
	"net/http"
	"time"

	"civic_backend/internal/guard"
)

// setAuthCookies - access_token, refresh_token and user_id in one shot.
// The cookie names are part of the contract the edge guard reads.
func (h *Handler) setAuthCookies(w http.ResponseWriter, accessToken string, refreshToken string, userID string) {
	h.setAccessTokenCookie(w, accessToken)

	http.SetCookie(w, &http.Cookie{
		Name:     guard.CookieRefreshToken,
		Value:    refreshToken,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(h.jwtCfg.RefreshTokenDuration() / time.Second),
	})

	http.SetCookie(w, &http.Cookie{
		Name:     guard.CookieUserID,
		Value:    userID,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(h.jwtCfg.RefreshTokenDuration() / time.Second),
	})
}

func (h *Handler) setAccessTokenCookie(w http.ResponseWriter, accessToken string) {
	http.SetCookie(w, &http.Cookie{
		Name:     guard.CookieAccessToken,
		Value:    accessToken,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(h.jwtCfg.RefreshTokenDuration() / time.Second),
	})
}

// clearAuthCookies - drops the whole cookie contract on logout or a dead
// refresh token.
func (h *Handler) clearAuthCookies(w http.ResponseWriter) {
	for _, name := range []string{
		guard.CookieAccessToken,
		guard.CookieRefreshToken,
		guard.CookieUserID,
		guard.CookieOrgID,
	} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			SameSite: http.SameSiteLaxMode,
		})
	}
}
