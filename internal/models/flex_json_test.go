package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestFlexUnmarshal_AllStrings(t *testing.T) {
	input := `[{"type": "shot", "id": "e1", "seq": "3", "timestamp": "1700000000000", "period": "2°", "side": "AWAY", "playerId": "a7", "shotType": "three", "made": "true"}]`

	var records []EventRecord
	if err := json.Unmarshal([]byte(input), &records); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}

	r := records[0]
	if r.Type != EventShot {
		t.Errorf("Type = %q, want shot", r.Type)
	}
	if r.Seq != 3 {
		t.Errorf("Seq = %d, want 3", r.Seq)
	}
	if want := time.UnixMilli(1700000000000).UTC(); !r.Timestamp.Equal(want) {
		t.Errorf("Timestamp = %v, want %v", r.Timestamp, want)
	}
	if r.Period != Period2 {
		t.Errorf("Period = %q, want 2", r.Period)
	}
	if r.Side != SideAway {
		t.Errorf("Side = %q, want away", r.Side)
	}
	if r.PlayerID != "a7" {
		t.Errorf("PlayerID = %q, want a7", r.PlayerID)
	}
	if r.ShotType != ShotThree || r.Result != ResultMade {
		t.Errorf("shot = %q/%q, want three/made", r.ShotType, r.Result)
	}
}

func TestFlexUnmarshal_NativeTypes(t *testing.T) {
	input := `{"type": "foul", "id": "f1", "seq": 9, "timestamp": "2024-03-02T10:00:00Z", "period": "OT", "side": "home", "player_id": "a1"}`

	var r EventRecord
	if err := json.Unmarshal([]byte(input), &r); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if r.Type != EventFoul || r.Seq != 9 || r.Period != PeriodOT || r.PlayerID != "a1" {
		t.Errorf("unexpected record %+v", r)
	}
	if r.Timestamp.IsZero() {
		t.Error("Timestamp not parsed")
	}
}

func TestFlexUnmarshal_LegacyShotType(t *testing.T) {
	// Old tracker export: the shot type is the event type, result a boolean
	input := `{"type": "freeThrow", "playerId": "p2", "made": false, "ts": 1700000000.5}`

	var r EventRecord
	if err := json.Unmarshal([]byte(input), &r); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if r.Type != EventShot {
		t.Errorf("Type = %q, want shot", r.Type)
	}
	if r.ShotType != ShotFreeThrow {
		t.Errorf("ShotType = %q, want freeThrow", r.ShotType)
	}
	if r.Result != ResultMiss {
		t.Errorf("Result = %q, want miss", r.Result)
	}
	if r.Timestamp.Unix() != 1700000000 {
		t.Errorf("Timestamp = %v, want unix 1700000000", r.Timestamp)
	}
}

func TestFlexUnmarshal_InvalidJSON(t *testing.T) {
	var r EventRecord
	if err := json.Unmarshal([]byte(`[1,2]`), &r); err == nil {
		t.Error("expected error for non-object input")
	}
}

func TestRecordRoundTrip(t *testing.T) {
	ts := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)
	shot := Shot{
		EventHeader: EventHeader{ID: "e1", Seq: 1, Timestamp: ts, Period: Period1, Side: SideHome, PlayerID: "p1"},
		ShotType:    ShotLayup,
		Result:      ResultMade,
	}

	data, err := json.Marshal(RecordOf(shot))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var rec EventRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	ev, err := rec.Event()
	if err != nil {
		t.Fatalf("Event: %v", err)
	}
	got, ok := ev.(Shot)
	if !ok {
		t.Fatalf("Event() = %T, want Shot", ev)
	}
	if got != shot {
		t.Errorf("round trip = %+v, want %+v", got, shot)
	}
}

func TestRecordEvent_UnknownType(t *testing.T) {
	_, err := EventRecord{Type: "timeout", PlayerID: "p1"}.Event()
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestFlexUnmarshal_MixedKeys(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantShot  ShotTypeKey
		wantRes   ShotResult
		wantActor string
	}{
		{"snake id with camel shotType", `{"type":"shot","player_id":"p1","shotType":"three","result":"made"}`, ShotThree, ResultMade, "p1"},
		{"snake id with made bool", `{"type":"shot","player_id":"p1","shot_type":"two","made":true}`, ShotTwo, ResultMade, "p1"},
		{"camel id with made bool", `{"type":"shot","playerId":"p1","shot_type":"two","made":true}`, ShotTwo, ResultMade, "p1"},
		{"snake id with made false", `{"type":"shot","player_id":"p2","shot_type":"freeThrow","made":"false"}`, ShotFreeThrow, ResultMiss, "p2"},
		{"canonical", `{"type":"shot","player_id":"p3","shot_type":"two","result":"miss"}`, ShotTwo, ResultMiss, "p3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r EventRecord
			if err := json.Unmarshal([]byte(tt.input), &r); err != nil {
				t.Fatalf("Failed to unmarshal: %v", err)
			}
			if r.Type != EventShot {
				t.Errorf("Type = %q, want shot", r.Type)
			}
			if r.PlayerID != tt.wantActor {
				t.Errorf("PlayerID = %q, want %q", r.PlayerID, tt.wantActor)
			}
			if r.ShotType != tt.wantShot || r.Result != tt.wantRes {
				t.Errorf("shot = %q/%q, want %q/%q", r.ShotType, r.Result, tt.wantShot, tt.wantRes)
			}
		})
	}
}
