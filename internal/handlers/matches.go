package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/basketmanager/stats-api/internal/models"
)

// ============================================================================
// MATCH ENDPOINTS
// ============================================================================

// GetCatalog returns the shot catalog and game constants
// @Summary Catalog
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.Catalog
// @Router /catalog [get]
func (h *Handler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, models.DefaultCatalog())
}

// OpenMatch handles POST /api/v1/matches/{matchId}/open
// @Summary Open Match
// @Description Loads the match from the directory and starts an empty log. Opening twice returns the live state.
// @Tags Matches
// @Accept json
// @Produce json
// @Param matchId path string true "Match ID"
// @Param body body models.OpenMatchRequest false "Options"
// @Success 200 {object} logic.MatchState
// @Failure 404 {object} map[string]string "Not Found"
// @Router /matches/{matchId}/open [post]
func (h *Handler) OpenMatch(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "matchId")

	var req models.OpenMatchRequest
	if err := decodeBody(w, r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	state, err := h.tracker.OpenMatch(r.Context(), matchID, req.EnforceRoster)
	if err != nil {
		h.serviceError(w, err, "Failed to open match", "match", matchID)
		return
	}
	h.jsonResponse(w, http.StatusOK, state)
}

// GetMatch returns the live state of an open match
// @Summary Match State
// @Tags Matches
// @Produce json
// @Param matchId path string true "Match ID"
// @Success 200 {object} logic.MatchState
// @Failure 404 {object} map[string]string "Not Found"
// @Router /matches/{matchId} [get]
func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "matchId")
	state, err := h.tracker.State(r.Context(), matchID)
	if err != nil {
		h.serviceError(w, err, "Failed to get match", "match", matchID)
		return
	}
	h.jsonResponse(w, http.StatusOK, state)
}

// SetPeriod changes the period stamped on new events
// @Summary Set Period
// @Tags Matches
// @Accept json
// @Produce json
// @Param matchId path string true "Match ID"
// @Param body body models.SetPeriodRequest true "Period"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /matches/{matchId}/period [put]
func (h *Handler) SetPeriod(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "matchId")

	var req models.SetPeriodRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.tracker.SetPeriod(r.Context(), matchID, req.Period); err != nil {
		h.serviceError(w, err, "Failed to set period", "match", matchID)
		return
	}
	h.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// RecordShot appends a shot to the match log
// @Summary Record Shot
// @Tags Events
// @Accept json
// @Produce json
// @Param matchId path string true "Match ID"
// @Param body body models.RecordShotRequest true "Shot"
// @Success 201 {object} models.EventRecord
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 409 {object} map[string]string "Player not convened"
// @Router /matches/{matchId}/shots [post]
func (h *Handler) RecordShot(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "matchId")

	var req models.RecordShotRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	rec, err := h.tracker.RecordShot(r.Context(), matchID, req)
	if err != nil {
		h.serviceError(w, err, "Failed to record shot", "match", matchID)
		return
	}
	h.jsonResponse(w, http.StatusCreated, rec)
}

// RecordFoul appends a foul to the match log
// @Summary Record Foul
// @Tags Events
// @Accept json
// @Produce json
// @Param matchId path string true "Match ID"
// @Param body body models.RecordFoulRequest true "Foul"
// @Success 201 {object} models.EventRecord
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 409 {object} map[string]string "Player not convened"
// @Router /matches/{matchId}/fouls [post]
func (h *Handler) RecordFoul(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "matchId")

	var req models.RecordFoulRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	rec, err := h.tracker.RecordFoul(r.Context(), matchID, req)
	if err != nil {
		h.serviceError(w, err, "Failed to record foul", "match", matchID)
		return
	}
	h.jsonResponse(w, http.StatusCreated, rec)
}

// DeleteEvent removes an event by id. Unknown ids are a no-op.
// @Summary Delete Event
// @Tags Events
// @Produce json
// @Param matchId path string true "Match ID"
// @Param eventId path string true "Event ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} map[string]string "Not Found"
// @Router /matches/{matchId}/events/{eventId} [delete]
func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "matchId")
	eventID := chi.URLParam(r, "eventId")

	removed, err := h.tracker.RemoveEvent(r.Context(), matchID, eventID)
	if err != nil {
		h.serviceError(w, err, "Failed to delete event", "match", matchID, "event", eventID)
		return
	}
	h.jsonResponse(w, http.StatusOK, map[string]bool{"removed": removed})
}

// DeleteEventAt removes the index-th row of the event list, counting only
// events of side when it is given.
// @Summary Delete Event By Row
// @Tags Events
// @Produce json
// @Param matchId path string true "Match ID"
// @Param side query string false "home or away"
// @Param index query int true "Zero-based row"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /matches/{matchId}/events [delete]
func (h *Handler) DeleteEventAt(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "matchId")
	side, err := sideParam(r)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	index, err := strconv.Atoi(r.URL.Query().Get("index"))
	if err != nil || index < 0 {
		h.errorResponse(w, http.StatusBadRequest, "index must be a non-negative integer")
		return
	}

	removed, err := h.tracker.RemoveEventAt(r.Context(), matchID, side, index)
	if err != nil {
		h.serviceError(w, err, "Failed to delete event", "match", matchID, "side", side, "index", index)
		return
	}
	h.jsonResponse(w, http.StatusOK, map[string]bool{"removed": removed})
}

// ListEvents returns the log in insertion order
// @Summary List Events
// @Tags Events
// @Produce json
// @Param matchId path string true "Match ID"
// @Param side query string false "home or away"
// @Success 200 {array} models.EventRecord
// @Router /matches/{matchId}/events [get]
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "matchId")
	side, err := sideParam(r)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	events, err := h.tracker.Events(r.Context(), matchID, side)
	if err != nil {
		h.serviceError(w, err, "Failed to list events", "match", matchID)
		return
	}
	h.jsonResponse(w, http.StatusOK, events)
}

// GetStats returns the per-player stats table
// @Summary Player Stats
// @Tags Stats
// @Produce json
// @Param matchId path string true "Match ID"
// @Param side query string false "home or away"
// @Success 200 {object} models.StatsTable
// @Router /matches/{matchId}/stats [get]
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "matchId")
	side, err := sideParam(r)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	stats, err := h.tracker.PlayerStats(r.Context(), matchID, side)
	if err != nil {
		h.serviceError(w, err, "Failed to get stats", "match", matchID)
		return
	}
	h.jsonResponse(w, http.StatusOK, stats)
}

// GetRanking returns the ranked stats view
// @Summary Ranking
// @Tags Stats
// @Produce json
// @Param matchId path string true "Match ID"
// @Param side query string false "home or away"
// @Param roster_only query bool false "Only convened athletes"
// @Success 200 {array} models.RankedPlayerRow
// @Router /matches/{matchId}/ranking [get]
func (h *Handler) GetRanking(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "matchId")
	side, err := sideParam(r)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	rows, err := h.tracker.Ranking(r.Context(), matchID, side, boolParam(r, "roster_only"))
	if err != nil {
		h.serviceError(w, err, "Failed to get ranking", "match", matchID)
		return
	}
	h.jsonResponse(w, http.StatusOK, rows)
}

// GetReport returns the box score and timeline
// @Summary Match Report
// @Tags Stats
// @Produce json
// @Param matchId path string true "Match ID"
// @Success 200 {object} models.MatchReport
// @Router /matches/{matchId}/report [get]
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "matchId")
	report, err := h.tracker.Report(r.Context(), matchID)
	if err != nil {
		h.serviceError(w, err, "Failed to build report", "match", matchID)
		return
	}
	h.jsonResponse(w, http.StatusOK, report)
}

// ToggleRoster convenes or releases an athlete
// @Summary Toggle Roster
// @Description At the cap the roster is unchanged and the outcome is "full".
// @Tags Roster
// @Accept json
// @Produce json
// @Param matchId path string true "Match ID"
// @Param side path string true "home or away"
// @Param body body models.ToggleRosterRequest true "Athlete"
// @Success 200 {object} models.RosterResponse
// @Failure 422 {object} map[string]string "Athlete not in team pool"
// @Router /matches/{matchId}/roster/{side}/toggle [post]
func (h *Handler) ToggleRoster(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "matchId")
	side := models.Side(chi.URLParam(r, "side"))

	var req models.ToggleRosterRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.tracker.ToggleRoster(r.Context(), matchID, side, req.AthleteID)
	if err != nil {
		h.serviceError(w, err, "Failed to toggle roster", "match", matchID, "side", side)
		return
	}
	h.jsonResponse(w, http.StatusOK, resp)
}

// GetRoster returns the convened athletes of one side
// @Summary Roster
// @Tags Roster
// @Produce json
// @Param matchId path string true "Match ID"
// @Param side path string true "home or away"
// @Success 200 {object} models.RosterResponse
// @Router /matches/{matchId}/roster/{side} [get]
func (h *Handler) GetRoster(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "matchId")
	side := models.Side(chi.URLParam(r, "side"))

	resp, err := h.tracker.Roster(r.Context(), matchID, side)
	if err != nil {
		h.serviceError(w, err, "Failed to get roster", "match", matchID, "side", side)
		return
	}
	h.jsonResponse(w, http.StatusOK, resp)
}

// GetSnapshot returns the ordered event log
// @Summary Log Snapshot
// @Tags Snapshots
// @Produce json
// @Param matchId path string true "Match ID"
// @Success 200 {object} models.LogSnapshot
// @Router /matches/{matchId}/snapshot [get]
func (h *Handler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "matchId")
	snap, err := h.tracker.Snapshot(r.Context(), matchID)
	if err != nil {
		h.serviceError(w, err, "Failed to snapshot match", "match", matchID)
		return
	}
	h.jsonResponse(w, http.StatusOK, snap)
}

// PutSnapshot replaces the log of an open match and recomputes its stats
// @Summary Restore Snapshot
// @Tags Snapshots
// @Accept json
// @Produce json
// @Param matchId path string true "Match ID"
// @Param body body models.LogSnapshot true "Snapshot"
// @Success 200 {object} logic.MatchState
// @Router /matches/{matchId}/snapshot [put]
func (h *Handler) PutSnapshot(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "matchId")

	var snap models.LogSnapshot
	if err := decodeBody(w, r, &snap); err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	snap.MatchID = matchID

	state, err := h.tracker.Restore(r.Context(), snap)
	if err != nil {
		h.serviceError(w, err, "Failed to restore match", "match", matchID)
		return
	}
	h.logger.Infow("Match restored", "match", matchID, "events", len(snap.Events), "skipped", len(state.Skipped))
	h.jsonResponse(w, http.StatusOK, state)
}
