package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/basketmanager/stats-api/internal/config"
	"github.com/basketmanager/stats-api/internal/database"
	"github.com/basketmanager/stats-api/internal/directory"
	"github.com/basketmanager/stats-api/internal/models"
)

// Seeds a demo match into the directory and plays it through the HTTP API.
//
//	SEED_API_URL   API base (default http://localhost:8080/api/v1)
//	SEED_MATCH_ID  match to create (default demo-u15)
//	SEED_EVENTS    events per period (default 20)

func main() {
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()
	log := logger.Sugar()

	if err := run(log); err != nil {
		log.Errorw("Seeding failed", "error", err)
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	apiURL := envOr("SEED_API_URL", "http://localhost:8080/api/v1")
	matchID := envOr("SEED_MATCH_ID", "demo-u15")
	perPeriod := 20
	fmt.Sscanf(envOr("SEED_EVENTS", "20"), "%d", &perPeriod)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pg, err := database.ConnectPostgres(ctx, cfg.PostgresURL, log)
	if err != nil {
		return err
	}
	defer pg.Close()
	if err := database.MigratePostgres(pg, log); err != nil {
		return err
	}

	home, away, err := seedDirectory(ctx, directory.NewPostgresDirectory(pg), matchID)
	if err != nil {
		return err
	}
	log.Infow("Directory seeded", "match", matchID, "home_pool", len(home), "away_pool", len(away))

	c := &client{base: apiURL + "/matches/" + matchID, http: &http.Client{Timeout: 10 * time.Second}}

	if err := c.do(http.MethodPost, "/open", map[string]bool{"enforce_roster": true}, nil); err != nil {
		return err
	}

	convened := map[models.Side][]string{}
	for side, pool := range map[models.Side][]string{models.SideHome: home, models.SideAway: away} {
		for _, id := range pool {
			var resp models.RosterResponse
			if err := c.do(http.MethodPost, "/roster/"+string(side)+"/toggle", models.ToggleRosterRequest{AthleteID: id}, &resp); err != nil {
				return err
			}
			if resp.Outcome == "full" {
				log.Infow("Roster full", "side", side, "athlete", id)
				continue
			}
			convened[side] = resp.Members
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	shotTypes := models.ShotTypes()
	recorded := 0

	for _, period := range []models.Period{models.Period1, models.Period2, models.Period3, models.Period4} {
		if err := c.do(http.MethodPut, "/period", models.SetPeriodRequest{Period: string(period)}, nil); err != nil {
			return err
		}
		for i := 0; i < perPeriod; i++ {
			side := models.Sides()[rng.Intn(2)]
			roster := convened[side]
			player := roster[rng.Intn(len(roster))]

			if rng.Intn(5) == 0 {
				err = c.do(http.MethodPost, "/fouls", models.RecordFoulRequest{PlayerID: player, Side: side}, nil)
			} else {
				result := models.ResultMiss
				if rng.Intn(2) == 0 {
					result = models.ResultMade
				}
				err = c.do(http.MethodPost, "/shots", models.RecordShotRequest{
					PlayerID: player,
					Side:     side,
					ShotType: shotTypes[rng.Intn(len(shotTypes))].Key,
					Result:   result,
				}, nil)
			}
			if err != nil {
				return err
			}
			recorded++
		}
		log.Infow("Period played", "period", period, "events", recorded)
	}

	var report models.MatchReport
	if err := c.do(http.MethodGet, "/report", nil, &report); err != nil {
		return err
	}
	log.Infow("Final score",
		"home", report.Home, "home_points", report.Score.Home,
		"away", report.Away, "away_points", report.Score.Away,
		"events", len(report.Timeline),
	)
	if report.TopScorer != nil {
		log.Infow("Top scorer", "player", report.TopScorer.PlayerName, "points", report.TopScorer.Points)
	}
	return nil
}

// seedDirectory saves two teams and the match, returning both athlete pools.
func seedDirectory(ctx context.Context, dir *directory.PostgresDirectory, matchID string) ([]string, []string, error) {
	teams := []struct {
		id, name string
		size     int
	}{
		{"demo-lions", "Lions", 14},
		{"demo-tigers", "Tigers", 12},
	}

	pools := make([][]string, len(teams))
	for i, tm := range teams {
		if err := dir.SaveTeam(ctx, models.Team{ID: tm.id, Name: tm.name, Group: models.GroupU15}); err != nil {
			return nil, nil, err
		}
		for n := 1; n <= tm.size; n++ {
			number := n + 3
			a := models.Athlete{
				ID:     fmt.Sprintf("%s-%02d", tm.id, n),
				Name:   fmt.Sprintf("%s Player %d", tm.name, n),
				Number: &number,
				Group:  models.GroupU15,
			}
			if err := dir.SaveAthlete(ctx, a, tm.id); err != nil {
				return nil, nil, err
			}
			pools[i] = append(pools[i], a.ID)
		}
		if err := dir.SaveTeam(ctx, models.Team{ID: tm.id, Name: tm.name, Group: models.GroupU15, AthleteIDs: pools[i]}); err != nil {
			return nil, nil, err
		}
	}

	err := dir.SaveMatch(ctx, models.Match{
		ID:         matchID,
		Group:      models.GroupU15,
		Date:       time.Now().UTC().Truncate(24 * time.Hour),
		Home:       teams[0].name,
		Away:       teams[1].name,
		HomeTeamID: teams[0].id,
		AwayTeamID: teams[1].id,
	})
	return pools[0], pools[1], err
}

type client struct {
	base string
	http *http.Client
}

func (c *client) do(method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, c.base+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%s %s: %s: %s", method, path, resp.Status, bytes.TrimSpace(msg))
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
