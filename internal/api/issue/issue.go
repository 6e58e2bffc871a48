package issue

import (
	"errors"
	"net/http"
	"strconv"

	dto "civic_backend/internal/api/dto/issue"
	apimw "civic_backend/internal/api/middleware"
	"civic_backend/internal/converter"
	"civic_backend/internal/model"
	"civic_backend/internal/service"
	"civic_backend/pkg/req"
	"civic_backend/pkg/resp"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type HandlerDeps struct {
	Serv service.IssueService
	Log  zerolog.Logger
}

type Handler struct {
	serv service.IssueService
	log  zerolog.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv: deps.Serv,
		log:  deps.Log,
	}
}

// Create - reports a new issue under the caller's organization context.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := apimw.IdentityFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	requestBody, err := req.Decode[dto.CreateRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	issue, err := h.serv.Report(r.Context(), converter.CreateRequestToIssueModel(&requestBody, identity))
	if err != nil {
		h.log.Info().Err(err).Msg("report issue")
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToIssueResponse(issue))
}

// List - filtered issue listing.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := model.IssueFilter{
		State:    query.Get("state"),
		District: query.Get("district"),
		Status:   model.IssueStatus(query.Get("status")),
		Category: query.Get("category"),
	}
	if raw := query.Get("limit"); raw != "" {
		filter.Limit, _ = strconv.Atoi(raw)
	}
	if raw := query.Get("offset"); raw != "" {
		filter.Offset, _ = strconv.Atoi(raw)
	}

	issues, err := h.serv.List(r.Context(), filter)
	if err != nil {
		h.log.Error().Err(err).Msg("list issues")
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToListResponse(issues))
}

// Get - single issue by ID.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid issue id")
		return
	}

	issue, err := h.serv.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			resp.WriteError(w, http.StatusNotFound, "issue not found")
			return
		}
		h.log.Error().Err(err).Msg("get issue")
		resp.WriteError(w, http.StatusInternalServerError, "get issue failed")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToIssueResponse(issue))
}

// Update - partial edit of an issue by its reporter.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := apimw.IdentityFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid issue id")
		return
	}

	requestBody, err := req.Decode[dto.UpdateRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	issue, err := h.serv.Update(r.Context(), identity.UserID, id, converter.UpdateRequestToIssueUpdate(&requestBody))
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNotFound):
			resp.WriteError(w, http.StatusNotFound, "issue not found")
		case errors.Is(err, model.ErrNotReporter):
			resp.WriteError(w, http.StatusForbidden, model.ErrNotReporter.Error())
		default:
			h.log.Info().Err(err).Msg("update issue")
			resp.WriteError(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToIssueResponse(issue))
}

// Delete - removes an issue; reporter only.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := apimw.IdentityFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid issue id")
		return
	}

	err = h.serv.Delete(r.Context(), identity.UserID, id)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNotFound):
			resp.WriteError(w, http.StatusNotFound, "issue not found")
		case errors.Is(err, model.ErrNotReporter):
			resp.WriteError(w, http.StatusForbidden, model.ErrNotReporter.Error())
		default:
			h.log.Error().Err(err).Msg("delete issue")
			resp.WriteError(w, http.StatusInternalServerError, "delete issue failed")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Vote - upvotes an issue; one vote per user per issue.
func (h *Handler) Vote(w http.ResponseWriter, r *http.Request) {
	identity, ok := apimw.IdentityFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid issue id")
		return
	}

	err = h.serv.Vote(r.Context(), identity.UserID, id)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrAlreadyVoted):
			resp.WriteError(w, http.StatusConflict, model.ErrAlreadyVoted.Error())
		case errors.Is(err, model.ErrNotFound):
			resp.WriteError(w, http.StatusNotFound, "issue not found")
		default:
			h.log.Error().Err(err).Msg("vote issue")
			resp.WriteError(w, http.StatusInternalServerError, "vote failed")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpdateStatus - moves an issue through its lifecycle.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid issue id")
		return
	}

	requestBody, err := req.Decode[dto.UpdateStatusRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	err = h.serv.UpdateStatus(r.Context(), id, model.IssueStatus(requestBody.Status))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			resp.WriteError(w, http.StatusNotFound, "issue not found")
			return
		}
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
