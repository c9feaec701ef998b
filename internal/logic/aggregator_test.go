package logic

import (
	"errors"
	"reflect"
	"testing"

	"github.com/basketmanager/stats-api/internal/models"
)

func TestAggregate_Scenarios(t *testing.T) {
	tests := []struct {
		name   string
		events []models.GameEvent
		player string
		check  func(t *testing.T, ps models.PlayerStats)
	}{
		{
			name: "A: mixed shots",
			events: []models.GameEvent{
				shot("p1", models.ShotTwo, true),
				shot("p1", models.ShotTwo, false),
				shot("p1", models.ShotThree, true),
			},
			player: "p1",
			check: func(t *testing.T, ps models.PlayerStats) {
				if ps.Points != 5 || ps.Attempts != 3 || ps.Made != 2 {
					t.Errorf("points/attempts/made = %d/%d/%d, want 5/3/2", ps.Points, ps.Attempts, ps.Made)
				}
				if ps.Breakdown[models.ShotTwo] != (models.ShotLine{Attempts: 2, Made: 1}) {
					t.Errorf("two breakdown = %+v", ps.Breakdown[models.ShotTwo])
				}
			},
		},
		{
			name: "B: six fouls clamp at five",
			events: []models.GameEvent{
				foul("p1"), foul("p1"), foul("p1"), foul("p1"), foul("p1"), foul("p1"),
			},
			player: "p1",
			check: func(t *testing.T, ps models.PlayerStats) {
				if ps.Fouls != 5 {
					t.Errorf("fouls = %d, want 5", ps.Fouls)
				}
				if !ps.FouledOut() {
					t.Error("player should be fouled out")
				}
			},
		},
		{
			name: "E: free throws",
			events: []models.GameEvent{
				shot("p2", models.ShotFreeThrow, true),
				shot("p2", models.ShotFreeThrow, true),
			},
			player: "p2",
			check: func(t *testing.T, ps models.PlayerStats) {
				if ps.Points != 2 {
					t.Errorf("points = %d, want 2", ps.Points)
				}
				if ps.Breakdown[models.ShotFreeThrow] != (models.ShotLine{Attempts: 2, Made: 2}) {
					t.Errorf("freeThrow breakdown = %+v", ps.Breakdown[models.ShotFreeThrow])
				}
			},
		},
		{
			name:   "no attempts: zero rate",
			events: []models.GameEvent{foul("p3")},
			player: "p3",
			check: func(t *testing.T, ps models.PlayerStats) {
				if rate := ps.ShootingRate(); rate != 0 {
					t.Errorf("ShootingRate = %v, want 0", rate)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := Aggregate(tt.events)
			if len(agg.Skipped) != 0 {
				t.Fatalf("unexpected skipped events: %+v", agg.Skipped)
			}
			ps, ok := agg.Players[tt.player]
			if !ok {
				t.Fatalf("player %s missing from table", tt.player)
			}
			tt.check(t, ps)
			assertConsistent(t, tt.player, ps)
		})
	}
}

// assertConsistent checks that totals match the breakdown.
func assertConsistent(t *testing.T, id string, ps models.PlayerStats) {
	t.Helper()
	var attempts, made, points int
	for key, line := range ps.Breakdown {
		pts, err := models.PointsFor(key)
		if err != nil {
			t.Fatalf("%s: breakdown has unknown key %q", id, key)
		}
		attempts += line.Attempts
		made += line.Made
		points += line.Made * pts
	}
	if attempts != ps.Attempts || made != ps.Made || points != ps.Points {
		t.Errorf("%s: totals %d/%d/%d do not match breakdown %d/%d/%d",
			id, ps.Attempts, ps.Made, ps.Points, attempts, made, points)
	}
	if ps.Fouls < 0 || ps.Fouls > models.FoulCap {
		t.Errorf("%s: fouls %d outside [0,%d]", id, ps.Fouls, models.FoulCap)
	}
}

func TestAggregate_FoulCapNeverExceeded(t *testing.T) {
	var events []models.GameEvent
	for i := 0; i < 20; i++ {
		events = append(events, foul("p1"))
		if i%3 == 0 {
			events = append(events, shot("p1", models.ShotLayup, i%2 == 0))
		}
		ps := Aggregate(events).Players["p1"]
		want := min(i+1, models.FoulCap)
		if ps.Fouls != want {
			t.Fatalf("after %d fouls: fouls = %d, want %d", i+1, ps.Fouls, want)
		}
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	events := []models.GameEvent{
		shot("p1", models.ShotThree, true),
		foul("p2"),
		shot("p2", models.ShotLayup, false),
		shot("p1", models.ShotFreeThrow, true),
	}
	first := Aggregate(events)
	second := Aggregate(events)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Aggregate is not idempotent:\n%+v\n%+v", first, second)
	}
}

func TestAggregate_DeletionEqualsRecompute(t *testing.T) {
	events := []models.GameEvent{
		shot("p1", models.ShotTwo, true),
		foul("p1"), foul("p1"), foul("p1"),
		shot("p2", models.ShotThree, false),
		foul("p1"), foul("p1"), foul("p1"),
		shot("p1", models.ShotFreeThrow, true),
		foul("p2"),
	}

	for i := range events {
		rest := append(append([]models.GameEvent{}, events[:i]...), events[i+1:]...)
		got := Aggregate(rest)

		// Rebuild the remaining log one event at a time from an empty table
		want := Aggregation{Players: models.StatsTable{}}
		for _, ev := range rest {
			if err := apply(want.Players, ev); err != nil {
				t.Fatalf("apply: %v", err)
			}
		}
		if !reflect.DeepEqual(got.Players, want.Players) {
			t.Errorf("removing event %d: got %+v, want %+v", i, got.Players, want.Players)
		}
	}
}

func TestAggregate_RemoveThirdOfSixFouls(t *testing.T) {
	var events []models.GameEvent
	for i := 1; i <= 6; i++ {
		events = append(events, withID(foul("p1"), "f"+string(rune('0'+i))))
	}
	if got := Aggregate(events).Players["p1"].Fouls; got != 5 {
		t.Fatalf("six fouls: fouls = %d, want 5", got)
	}

	var rest []models.GameEvent
	for _, ev := range events {
		if ev.Header().ID != "f3" {
			rest = append(rest, ev)
		}
	}
	if len(rest) != 5 {
		t.Fatalf("expected 5 remaining events, got %d", len(rest))
	}
	if got := Aggregate(rest).Players["p1"].Fouls; got != 5 {
		t.Errorf("after removing f3: fouls = %d, want 5", got)
	}
}

func TestAggregate_SkipsMalformed(t *testing.T) {
	var nilShot *models.Shot
	events := []models.GameEvent{
		shot("p1", models.ShotTwo, true),
		withID(shot("p1", "dunk", true), "bad-type"),
		withID(shot("", models.ShotTwo, true), "no-player"),
		withID(models.Shot{EventHeader: models.EventHeader{PlayerID: "p1"}, ShotType: models.ShotTwo, Result: "maybe"}, "bad-result"),
		nilShot,
		nil,
		&models.Foul{EventHeader: models.EventHeader{PlayerID: "p1"}},
	}

	agg := Aggregate(events)
	ps := agg.Players["p1"]
	if ps.Points != 2 || ps.Attempts != 1 || ps.Fouls != 1 {
		t.Errorf("p1 = %+v, want 2 points, 1 attempt, 1 foul", ps)
	}
	if len(agg.Skipped) != 5 {
		t.Fatalf("skipped = %d, want 5: %+v", len(agg.Skipped), agg.Skipped)
	}
	if !errors.Is(agg.Skipped[0].Err, models.ErrUnknownShotType) {
		t.Errorf("bad-type err = %v, want ErrUnknownShotType", agg.Skipped[0].Err)
	}
	for _, s := range agg.Skipped[1:] {
		if !errors.Is(s.Err, models.ErrInvalidEvent) {
			t.Errorf("%s err = %v, want ErrInvalidEvent", s.EventID, s.Err)
		}
	}
	if _, ok := agg.Players[""]; ok {
		t.Error("empty player id must not create a row")
	}
	// A skipped shot must not create a row for its player either
	if len(agg.Players) != 1 {
		t.Errorf("players = %v, want only p1", agg.Players.PlayerIDs())
	}
}

func TestAggregateTeams(t *testing.T) {
	events := []models.GameEvent{
		models.Shot{EventHeader: models.EventHeader{PlayerID: "h1", Side: models.SideHome}, ShotType: models.ShotThree, Result: models.ResultMade},
		models.Shot{EventHeader: models.EventHeader{PlayerID: "a1", Side: models.SideAway}, ShotType: models.ShotTwo, Result: models.ResultMade},
		models.Shot{EventHeader: models.EventHeader{PlayerID: "a2", Side: models.SideAway}, ShotType: models.ShotTwo, Result: models.ResultMiss},
		models.Foul{EventHeader: models.EventHeader{PlayerID: "a1", Side: models.SideAway}},
	}

	teams := AggregateTeams(events)
	if len(teams) != 2 || teams[0].Side != models.SideHome || teams[1].Side != models.SideAway {
		t.Fatalf("teams = %+v", teams)
	}
	if teams[0].Points != 3 || teams[0].Attempts != 1 {
		t.Errorf("home = %+v", teams[0])
	}
	if teams[1].Points != 2 || teams[1].Attempts != 2 || teams[1].Fouls != 1 || teams[1].ShootingRate != 0.5 {
		t.Errorf("away = %+v", teams[1])
	}
}

func TestSeed_DoesNotMutate(t *testing.T) {
	table := Aggregate([]models.GameEvent{shot("p1", models.ShotTwo, true)}).Players
	seeded := Seed(table, []string{"p1", "p2", ""})

	if len(table) != 1 {
		t.Errorf("input table mutated: %v", table.PlayerIDs())
	}
	if !reflect.DeepEqual(seeded.PlayerIDs(), []string{"p1", "p2"}) {
		t.Errorf("seeded ids = %v", seeded.PlayerIDs())
	}
	if seeded["p1"].Points != 2 {
		t.Error("seeding overwrote an existing row")
	}
	if !reflect.DeepEqual(seeded["p2"], models.NewPlayerStats()) {
		t.Errorf("seeded row = %+v, want zero line", seeded["p2"])
	}
}
