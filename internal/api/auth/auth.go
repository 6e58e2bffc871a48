package auth

import (
	"errors"
	"net/http"

	dto "civic_backend/internal/api/dto/auth"
	apimw "civic_backend/internal/api/middleware"
	"civic_backend/internal/config"
	"civic_backend/internal/converter"
	"civic_backend/internal/guard"
	"civic_backend/internal/model"
	"civic_backend/internal/service"
	"civic_backend/pkg/req"
	"civic_backend/pkg/resp"

	"github.com/rs/zerolog"
)

type HandlerDeps struct {
	Serv   service.AuthService
	JWTCfg config.JWTConfig
	Log    zerolog.Logger
}

type Handler struct {
	serv   service.AuthService
	jwtCfg config.JWTConfig
	log    zerolog.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv:   deps.Serv,
		jwtCfg: deps.JWTCfg,
		log:    deps.Log,
	}
}

// SendOTP - issues a one-time signup code for the phone number.
func (h *Handler) SendOTP(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.SendOTPRequest](r.Body)
	if err != nil || requestBody.Phone == "" {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	err = h.serv.SendOTP(r.Context(), requestBody.Phone)
	if err != nil {
		h.log.Error().Err(err).Msg("send otp")
		resp.WriteError(w, http.StatusInternalServerError, "send otp failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Register - creates the user, opens a session and sets the auth cookies.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.RegisterRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	data, err := h.serv.Register(
		r.Context(),
		converter.RegisterRequestToUserModel(&requestBody),
		requestBody.OTPCode,
	)
	if err != nil {
		h.log.Info().Err(err).Msg("register")
		switch {
		case errors.Is(err, model.ErrInvalidOTP):
			resp.WriteError(w, http.StatusBadRequest, model.ErrInvalidOTP.Error())
		case errors.Is(err, model.ErrAlreadyExists):
			resp.WriteError(w, http.StatusConflict, "register failed")
		default:
			resp.WriteError(w, http.StatusInternalServerError, "register failed")
		}
		return
	}

	h.setAuthCookies(w, data.AccessToken, data.RefreshToken, data.UserID.String())

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToAuthResponse(data))
}

// Login - opens a session for valid credentials and sets the auth cookies.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.LoginRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	data, err := h.serv.Login(r.Context(), requestBody.Login, requestBody.Password)
	if err != nil {
		h.log.Info().Err(err).Str("login", requestBody.Login).Msg("login")
		if errors.Is(err, model.ErrInvalidCredentials) {
			resp.WriteError(w, http.StatusUnauthorized, model.ErrInvalidCredentials.Error())
			return
		}
		resp.WriteError(w, http.StatusInternalServerError, "login failed")
		return
	}

	h.setAuthCookies(w, data.AccessToken, data.RefreshToken, data.UserID.String())

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToAuthResponse(data))
}

// Refresh - mints a new access token from the refresh_token cookie.
// A dead refresh token clears the whole cookie contract.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(guard.CookieRefreshToken)
	if err != nil || c.Value == "" {
		resp.WriteError(w, http.StatusUnauthorized, "no refresh_token cookie")
		return
	}

	accessToken, err := h.serv.Refresh(r.Context(), c.Value)
	if err != nil {
		h.log.Info().Err(err).Msg("refresh")
		if errors.Is(err, model.ErrExpiredOrInvalidRefreshToken) {
			h.clearAuthCookies(w)
			resp.WriteError(w, http.StatusUnauthorized, model.ErrExpiredOrInvalidRefreshToken.Error())
			return
		}
		resp.WriteError(w, http.StatusInternalServerError, "refresh failed")
		return
	}

	h.setAccessTokenCookie(w, accessToken)

	resp.WriteJSONResponse(w, http.StatusOK, dto.RefreshResponse{AccessToken: accessToken})
}

// Logout - closes the session and clears the cookie contract.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	refreshToken := ""
	if c, err := r.Cookie(guard.CookieRefreshToken); err == nil {
		refreshToken = c.Value
	}

	accessToken := ""
	if c, err := r.Cookie(guard.CookieAccessToken); err == nil {
		accessToken = c.Value
	}

	if refreshToken != "" {
		err := h.serv.Logout(r.Context(), refreshToken, accessToken)
		if err != nil {
			h.log.Error().Err(err).Msg("logout")
			resp.WriteError(w, http.StatusInternalServerError, "logout failed")
			return
		}
	}

	h.clearAuthCookies(w)

	w.WriteHeader(http.StatusNoContent)
}

// Me - profile of the authenticated caller.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := apimw.IdentityFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	user, err := h.serv.GetUser(r.Context(), identity.UserID)
	if err != nil {
		h.log.Error().Err(err).Msg("get user")
		resp.WriteError(w, http.StatusInternalServerError, "profile lookup failed")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToMeResponse(user, identity))
}
