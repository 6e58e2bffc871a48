package location

import (
	"net/http"
	"strconv"

	dto "civic_backend/internal/api/dto/location"
	"civic_backend/internal/converter"
	"civic_backend/internal/service"
	"civic_backend/pkg/resp"

	"github.com/rs/zerolog"
)

type HandlerDeps struct {
	Serv service.LocationService
	Log  zerolog.Logger
}

type Handler struct {
	serv service.LocationService
	log  zerolog.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv: deps.Serv,
		log:  deps.Log,
	}
}

// States - all states with their districts.
func (h *Handler) States(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStateInfos(h.serv.States()))
}

// Districts - districts for one state. Unknown states answer with an
// empty list, not an error.
func (h *Handler) Districts(w http.ResponseWriter, r *http.Request) {
	state := r.URL.Query().Get("state")
	if state == "" {
		resp.WriteError(w, http.StatusBadRequest, "state is required")
		return
	}

	districts := h.serv.Districts(state)
	if districts == nil {
		districts = []string{}
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.DistrictsResponse{
		State:     state,
		Districts: districts,
	})
}

// LocalBodies - local bodies seen in reported issues for a district.
func (h *Handler) LocalBodies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	state := query.Get("state")
	district := query.Get("district")
	if state == "" || district == "" {
		resp.WriteError(w, http.StatusBadRequest, "state and district are required")
		return
	}

	localBodies, err := h.serv.LocalBodies(r.Context(), state, district)
	if err != nil {
		h.log.Error().Err(err).Msg("list local bodies")
		resp.WriteError(w, http.StatusInternalServerError, "list local bodies failed")
		return
	}
	if localBodies == nil {
		localBodies = []string{}
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.LocalBodiesResponse{
		State:       state,
		District:    district,
		LocalBodies: localBodies,
	})
}

// Stats - aggregated issue statistics for a location.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	state := query.Get("state")
	if state == "" {
		resp.WriteError(w, http.StatusBadRequest, "state is required")
		return
	}

	stats, err := h.serv.Stats(r.Context(), state, query.Get("district"), query.Get("local_body"))
	if err != nil {
		h.log.Error().Err(err).Msg("location stats")
		resp.WriteError(w, http.StatusInternalServerError, "location stats failed")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(stats))
}

// Trending - locations with the most reported issues.
func (h *Handler) Trending(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, _ = strconv.Atoi(raw)
	}

	locations, err := h.serv.Trending(r.Context(), limit)
	if err != nil {
		h.log.Error().Err(err).Msg("trending locations")
		resp.WriteError(w, http.StatusInternalServerError, "trending locations failed")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToTrendingLocations(locations))
}
