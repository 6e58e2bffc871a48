package org

import (
	"errors"
	"net/http"

	dto "civic_backend/internal/api/dto/org"
	apimw "civic_backend/internal/api/middleware"
	"civic_backend/internal/converter"
	"civic_backend/internal/guard"
	"civic_backend/internal/model"
	"civic_backend/internal/service"
	"civic_backend/pkg/req"
	"civic_backend/pkg/resp"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type HandlerDeps struct {
	Serv service.OrgService
	Log  zerolog.Logger
}

type Handler struct {
	serv service.OrgService
	log  zerolog.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv: deps.Serv,
		log:  deps.Log,
	}
}

// Create - new organization with the caller as owner; becomes the active
// organization context. Responds with a fresh access token and sets the
// org_id cookie.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := apimw.IdentityFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	refreshToken, err := r.Cookie(guard.CookieRefreshToken)
	if err != nil || refreshToken.Value == "" {
		resp.WriteError(w, http.StatusUnauthorized, "no refresh_token cookie")
		return
	}

	requestBody, err := req.Decode[dto.CreateRequest](r.Body)
	if err != nil || requestBody.Name == "" {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	org, accessToken, err := h.serv.Create(
		r.Context(),
		identity.UserID,
		refreshToken.Value,
		converter.CreateRequestToOrgModel(&requestBody),
	)
	if err != nil {
		h.log.Error().Err(err).Msg("create organization")
		if errors.Is(err, model.ErrExpiredOrInvalidRefreshToken) {
			resp.WriteError(w, http.StatusUnauthorized, err.Error())
			return
		}
		resp.WriteError(w, http.StatusInternalServerError, "create organization failed")
		return
	}

	h.setOrgCookies(w, org.ID.String(), accessToken)

	resp.WriteJSONResponse(w, http.StatusCreated, dto.CreateResponse{
		Organization: converter.ToOrgResponse(org),
		AccessToken:  accessToken,
	})
}

// List - organizations the caller belongs to.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := apimw.IdentityFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	orgs, err := h.serv.ListForUser(r.Context(), identity.UserID)
	if err != nil {
		h.log.Error().Err(err).Msg("list organizations")
		resp.WriteError(w, http.StatusInternalServerError, "list organizations failed")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToOrgResponses(orgs))
}

// Switch - changes the caller's active organization context.
func (h *Handler) Switch(w http.ResponseWriter, r *http.Request) {
	identity, ok := apimw.IdentityFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	refreshToken, err := r.Cookie(guard.CookieRefreshToken)
	if err != nil || refreshToken.Value == "" {
		resp.WriteError(w, http.StatusUnauthorized, "no refresh_token cookie")
		return
	}

	requestBody, err := req.Decode[dto.SwitchRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	orgID, err := uuid.Parse(requestBody.OrgID)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid org_id")
		return
	}

	accessToken, err := h.serv.Switch(r.Context(), identity.UserID, refreshToken.Value, orgID)
	if err != nil {
		h.log.Info().Err(err).Str("org_id", requestBody.OrgID).Msg("switch organization")
		switch {
		case errors.Is(err, model.ErrNotMember):
			resp.WriteError(w, http.StatusForbidden, model.ErrNotMember.Error())
		case errors.Is(err, model.ErrExpiredOrInvalidRefreshToken):
			resp.WriteError(w, http.StatusUnauthorized, err.Error())
		default:
			resp.WriteError(w, http.StatusInternalServerError, "switch organization failed")
		}
		return
	}

	h.setOrgCookies(w, requestBody.OrgID, accessToken)

	resp.WriteJSONResponse(w, http.StatusOK, dto.SwitchResponse{AccessToken: accessToken})
}

func (h *Handler) setOrgCookies(w http.ResponseWriter, orgID string, accessToken string) {
	http.SetCookie(w, &http.Cookie{
		Name:     guard.CookieOrgID,
		Value:    orgID,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
		MaxAge:   60 * 60 * 24 * 30,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     guard.CookieAccessToken,
		Value:    accessToken,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   60 * 60 * 24 * 30,
	})
}
