package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/basketmanager/stats-api/internal/models"
)

// ImportEvents handles POST /api/v1/matches/{matchId}/events/import
// @Summary Import Events
// @Description Accepts newline-separated events, each a JSON record or a URL-encoded line. Unparseable and invalid lines are skipped.
// @Tags Events
// @Accept plain
// @Produce json
// @Param matchId path string true "Match ID"
// @Param body body []models.EventRecord true "Events"
// @Success 200 {object} models.ImportResponse
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 413 {object} map[string]string "Body too large"
// @Router /matches/{matchId}/events/import [post]
func (h *Handler) ImportEvents(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "matchId")

	// Limit request body to 1MB
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.errorResponse(w, http.StatusRequestEntityTooLarge, "Request body too large")
		return
	}
	defer r.Body.Close()

	records, skipped := h.parseImportLines(string(body))

	resp, err := h.tracker.ImportEvents(r.Context(), matchID, records)
	if err != nil {
		h.serviceError(w, err, "Failed to import events", "match", matchID)
		return
	}
	resp.Skipped += skipped

	h.logger.Infow("Events imported", "match", matchID, "processed", resp.Processed, "skipped", resp.Skipped)
	h.jsonResponse(w, http.StatusOK, resp)
}

// parseImportLines decodes one record per non-empty line and counts the lines
// it had to drop.
func (h *Handler) parseImportLines(body string) ([]models.EventRecord, int) {
	var (
		records []models.EventRecord
		skipped int
	)
	for i, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var rec models.EventRecord
		// Support both JSON (if line starts with {) and URL-encoded
		if strings.HasPrefix(line, "{") {
			if err := json.Unmarshal([]byte(line), &rec); err != nil {
				h.logger.Warnw("Failed to unmarshal JSON event", "error", err, "lineNum", i)
				skipped++
				continue
			}
		} else {
			values, err := url.ParseQuery(line)
			if err != nil {
				h.logger.Warnw("Failed to parse URL-encoded event", "error", err, "lineNum", i)
				skipped++
				continue
			}
			rec, err = parseFormToRecord(values)
			if err != nil {
				h.logger.Warnw("Failed to parse event fields", "error", err, "lineNum", i)
				skipped++
				continue
			}
		}

		if err := ValidateStruct(&rec); err != nil {
			h.logger.Warnw("Validation failed for event", "error", err, "lineNum", i, "type", rec.Type)
			skipped++
			continue
		}
		records = append(records, rec)
	}
	return records, skipped
}

// parseFormToRecord converts URL-encoded form data to an EventRecord
func parseFormToRecord(form url.Values) (models.EventRecord, error) {
	rec := models.EventRecord{
		Type:     models.EventKind(form.Get("type")),
		ID:       form.Get("id"),
		Side:     models.Side(strings.ToLower(form.Get("side"))),
		PlayerID: form.Get("player_id"),
		ShotType: models.ShotTypeKey(form.Get("shot_type")),
	}

	if p := form.Get("period"); p != "" {
		period, ok := models.ParsePeriod(p)
		if !ok {
			return rec, fmt.Errorf("invalid period %q", p)
		}
		rec.Period = period
	}

	if s := form.Get("seq"); s != "" {
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return rec, fmt.Errorf("invalid seq %q: %w", s, err)
		}
		rec.Seq = n
	}

	if ts := form.Get("timestamp"); ts != "" {
		t, ok := models.ParseTimestamp(ts)
		if !ok {
			return rec, fmt.Errorf("invalid timestamp %q", ts)
		}
		rec.Timestamp = t
	}

	result := form.Get("result")
	if result == "" {
		result = form.Get("made")
	}
	rec.Result = models.ParseResult(result)

	// Legacy tracker lines carry the shot type in "type"
	if _, err := models.LookupShotType(models.ShotTypeKey(rec.Type)); err == nil {
		if rec.ShotType == "" {
			rec.ShotType = models.ShotTypeKey(rec.Type)
		}
		rec.Type = models.EventShot
	}
	return rec, nil
}
