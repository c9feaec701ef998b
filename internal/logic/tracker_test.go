package logic

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/basketmanager/stats-api/internal/directory"
	"github.com/basketmanager/stats-api/internal/models"
)

func newTestDirectory(t *testing.T) *directory.MemoryDirectory {
	t.Helper()
	d := directory.NewMemoryDirectory()

	var home, away []string
	for i := 1; i <= 14; i++ {
		id := fmt.Sprintf("h%d", i)
		home = append(home, id)
		if err := d.AddAthlete(models.Athlete{ID: id, Name: "Home " + id, Number: intp(i), Group: models.GroupU15}); err != nil {
			t.Fatal(err)
		}
	}
	for i := 1; i <= 3; i++ {
		id := fmt.Sprintf("a%d", i)
		away = append(away, id)
		if err := d.AddAthlete(models.Athlete{ID: id, Name: "Away " + id, Group: models.GroupU15}); err != nil {
			t.Fatal(err)
		}
	}

	mustNoErr(t, d.AddTeam(models.Team{ID: "t-home", Name: "Lions", Group: models.GroupU15, AthleteIDs: home}))
	mustNoErr(t, d.AddTeam(models.Team{ID: "t-away", Name: "Tigers", Group: models.GroupU15, AthleteIDs: away}))
	mustNoErr(t, d.AddMatch(models.Match{
		ID: "m1", Group: models.GroupU15, Date: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		Home: "Lions", Away: "Tigers", HomeTeamID: "t-home", AwayTeamID: "t-away",
	}))
	mustNoErr(t, d.AddMatch(models.Match{ID: "m2", Group: models.GroupU13, Home: "A", Away: "B", HomeTeamID: "t-missing"}))
	return d
}

func mustNoErr(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

func newTestTracker(t *testing.T, enforce bool) TrackerService {
	t.Helper()
	return NewTrackerService(newTestDirectory(t), newTestLog(nil), TrackerConfig{EnforceRoster: enforce})
}

func TestTracker_OpenMatch(t *testing.T) {
	ctx := context.Background()
	svc := newTestTracker(t, true)

	state, err := svc.OpenMatch(ctx, "m1", nil)
	if err != nil {
		t.Fatalf("OpenMatch: %v", err)
	}
	if !state.EnforceRoster || state.Match.Home != "Lions" {
		t.Errorf("state = %+v", state)
	}

	if _, err := svc.OpenMatch(ctx, "nope", nil); !errors.Is(err, directory.ErrNotFound) {
		t.Errorf("unknown match err = %v, want directory.ErrNotFound", err)
	}

	// Missing team: no pool, match still opens
	off := false
	state, err = svc.OpenMatch(ctx, "m2", &off)
	if err != nil {
		t.Fatalf("OpenMatch(m2): %v", err)
	}
	if state.EnforceRoster {
		t.Error("override ignored")
	}
	// U13 has no athletes in the directory: any id is accepted
	if _, err := svc.RecordFoul(ctx, "m2", models.RecordFoulRequest{PlayerID: "anyone"}); err != nil {
		t.Errorf("RecordFoul on unchecked match: %v", err)
	}
}

func TestTracker_ScorekeepingFlow(t *testing.T) {
	ctx := context.Background()
	svc := newTestTracker(t, true)
	if _, err := svc.OpenMatch(ctx, "m1", nil); err != nil {
		t.Fatal(err)
	}

	// Not convened yet
	_, err := svc.RecordShot(ctx, "m1", models.RecordShotRequest{PlayerID: "h1", ShotType: models.ShotTwo, Result: models.ResultMade})
	if !errors.Is(err, ErrNotConvened) {
		t.Fatalf("err = %v, want ErrNotConvened", err)
	}

	// Outside the home pool
	if _, err := svc.ToggleRoster(ctx, "m1", models.SideHome, "a1"); !errors.Is(err, ErrNotInPool) {
		t.Errorf("toggle a1 at home err = %v, want ErrNotInPool", err)
	}
	// Not an athlete of the group at all
	if _, err := svc.ToggleRoster(ctx, "m1", models.SideHome, "ghost"); !errors.Is(err, ErrUnknownAthlete) {
		t.Errorf("toggle ghost err = %v, want ErrUnknownAthlete", err)
	}

	// Fill the home roster to the cap, then one more
	var last models.RosterResponse
	for i := 1; i <= 13; i++ {
		last, err = svc.ToggleRoster(ctx, "m1", models.SideHome, fmt.Sprintf("h%d", i))
		if err != nil {
			t.Fatalf("toggle h%d: %v", i, err)
		}
	}
	if last.Outcome != string(ToggleFull) || last.Size != models.RosterCap {
		t.Errorf("13th toggle = %+v", last)
	}

	rec, err := svc.RecordShot(ctx, "m1", models.RecordShotRequest{PlayerID: "h1", Period: "2°", ShotType: models.ShotThree, Result: models.ResultMade})
	if err != nil {
		t.Fatalf("RecordShot: %v", err)
	}
	if rec.Period != models.Period2 || rec.Side != models.SideHome || rec.ID == "" {
		t.Errorf("record = %+v", rec)
	}
	if _, err := svc.RecordShot(ctx, "m1", models.RecordShotRequest{PlayerID: "h1", Period: "9", ShotType: models.ShotThree, Result: models.ResultMade}); !errors.Is(err, models.ErrInvalidEvent) {
		t.Errorf("bad period err = %v", err)
	}

	mustNoErr(t, svc.SetPeriod(ctx, "m1", "3"))
	foul, err := svc.RecordFoul(ctx, "m1", models.RecordFoulRequest{PlayerID: "h2"})
	if err != nil {
		t.Fatalf("RecordFoul: %v", err)
	}
	if foul.Period != models.Period3 {
		t.Errorf("foul period = %q, want 3", foul.Period)
	}

	ranking, err := svc.Ranking(ctx, "m1", models.SideHome, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(ranking) != models.RosterCap {
		t.Errorf("ranking rows = %d, want %d", len(ranking), models.RosterCap)
	}
	if ranking[0].PlayerID != "h1" || ranking[0].PlayerName != "Home h1" || ranking[0].Points != 3 {
		t.Errorf("top row = %+v", ranking[0])
	}

	removed, err := svc.RemoveEvent(ctx, "m1", foul.ID)
	if err != nil || !removed {
		t.Errorf("RemoveEvent = %v, %v", removed, err)
	}
	removed, err = svc.RemoveEvent(ctx, "m1", foul.ID)
	if err != nil || removed {
		t.Errorf("second RemoveEvent = %v, %v; want silent no-op", removed, err)
	}
	if _, err := svc.RemoveEvent(ctx, "nope", "x"); !errors.Is(err, ErrMatchNotFound) {
		t.Errorf("RemoveEvent on unknown match err = %v", err)
	}

	report, err := svc.Report(ctx, "m1")
	if err != nil {
		t.Fatal(err)
	}
	if report.Score.Home != 3 || report.Timeline[0].Player != "#1 Home h1" {
		t.Errorf("report = %+v", report)
	}
}

func TestTracker_ImportEvents(t *testing.T) {
	ctx := context.Background()
	svc := newTestTracker(t, false)
	if _, err := svc.OpenMatch(ctx, "m1", nil); err != nil {
		t.Fatal(err)
	}

	resp, err := svc.ImportEvents(ctx, "m1", []models.EventRecord{
		{Type: models.EventShot, PlayerID: "h1", ShotType: models.ShotTwo, Result: models.ResultMade},
		{Type: models.EventFoul, PlayerID: "a1", Side: models.SideAway},
		{Type: models.EventShot, PlayerID: "h1", ShotType: "hook", Result: models.ResultMade},
		{Type: "timeout", PlayerID: "h1"},
		{Type: models.EventFoul, PlayerID: "ghost"},
	})
	if err != nil {
		t.Fatalf("ImportEvents: %v", err)
	}
	if resp.Processed != 2 || resp.Skipped != 3 {
		t.Errorf("resp = %+v, want 2 processed, 3 skipped", resp)
	}

	events, _ := svc.Events(ctx, "m1", models.SideAway)
	if len(events) != 1 || events[0].PlayerID != "a1" {
		t.Errorf("away events = %+v", events)
	}

	if _, err := svc.ImportEvents(ctx, "nope", []models.EventRecord{{Type: models.EventFoul, PlayerID: "h1"}}); !errors.Is(err, ErrMatchNotFound) {
		t.Errorf("import into unknown match err = %v", err)
	}
}

func TestTracker_SnapshotRestore(t *testing.T) {
	ctx := context.Background()
	svc := newTestTracker(t, false)
	svc.OpenMatch(ctx, "m1", nil)
	svc.RecordShot(ctx, "m1", models.RecordShotRequest{PlayerID: "h3", ShotType: models.ShotLayup, Result: models.ResultMade})

	snap, err := svc.Snapshot(ctx, "m1")
	if err != nil || len(snap.Events) != 1 {
		t.Fatalf("Snapshot = %+v, %v", snap, err)
	}

	snap.Events = append(snap.Events, models.EventRecord{Type: models.EventFoul, PlayerID: "h3"})
	state, err := svc.Restore(ctx, snap)
	if err != nil {
		t.Fatal(err)
	}
	stats, _ := svc.PlayerStats(ctx, "m1", "")
	if len(state.Events) != 2 || stats["h3"].Fouls != 1 || stats["h3"].Points != 2 {
		t.Errorf("restored stats = %+v", stats["h3"])
	}
}

func TestTracker_RemoveEventAt(t *testing.T) {
	ctx := context.Background()
	svc := newTestTracker(t, false)
	if _, err := svc.OpenMatch(ctx, "m1", nil); err != nil {
		t.Fatal(err)
	}

	for _, req := range []models.RecordFoulRequest{
		{PlayerID: "h1", Side: models.SideHome},
		{PlayerID: "a1", Side: models.SideAway},
		{PlayerID: "h2", Side: models.SideHome},
	} {
		if _, err := svc.RecordFoul(ctx, "m1", req); err != nil {
			t.Fatalf("RecordFoul(%s): %v", req.PlayerID, err)
		}
	}

	removed, err := svc.RemoveEventAt(ctx, "m1", models.SideAway, 0)
	if err != nil || !removed {
		t.Fatalf("RemoveEventAt(away, 0) = %v, %v", removed, err)
	}
	if removed, err := svc.RemoveEventAt(ctx, "m1", models.SideAway, 0); err != nil || removed {
		t.Errorf("RemoveEventAt on empty side = %v, %v; want silent no-op", removed, err)
	}
	if removed, err := svc.RemoveEventAt(ctx, "m1", "", 1); err != nil || !removed {
		t.Errorf("RemoveEventAt(all, 1) = %v, %v", removed, err)
	}

	events, err := svc.Events(ctx, "m1", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 1 || events[0].PlayerID != "h1" {
		t.Errorf("events = %+v, want only h1", events)
	}

	if _, err := svc.RemoveEventAt(ctx, "nope", "", 0); !errors.Is(err, ErrMatchNotFound) {
		t.Errorf("RemoveEventAt on unknown match err = %v", err)
	}
}
