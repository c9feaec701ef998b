// Package directory serves the reference data the stats engine consumes:
// athletes, teams and the match schedule. It is read-only from the engine's
// point of view.
package directory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/basketmanager/stats-api/internal/models"
)

// ErrNotFound is returned when a record does not exist
var ErrNotFound = errors.New("not found")

// Directory looks up reference data
type Directory interface {
	Match(ctx context.Context, id string) (models.Match, error)
	Team(ctx context.Context, id string) (models.Team, error)
	AthletesByGroup(ctx context.Context, group models.Group) ([]models.Athlete, error)
	Athletes(ctx context.Context, ids []string) ([]models.Athlete, error)
}

// MemoryDirectory is an in-memory Directory, used by tests and the demo
// seeder
type MemoryDirectory struct {
	mu       sync.RWMutex
	athletes map[string]models.Athlete
	teams    map[string]models.Team
	matches  map[string]models.Match
}

func NewMemoryDirectory() *MemoryDirectory {
	return &MemoryDirectory{
		athletes: make(map[string]models.Athlete),
		teams:    make(map[string]models.Team),
		matches:  make(map[string]models.Match),
	}
}

// AddAthlete stores a, replacing any athlete with the same id.
func (d *MemoryDirectory) AddAthlete(a models.Athlete) error {
	if a.ID == "" || strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("athlete id and name are required")
	}
	if !models.ValidGroup(a.Group) {
		return fmt.Errorf("athlete %s: unknown group %q", a.ID, a.Group)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.athletes[a.ID] = a
	return nil
}

// AddTeam stores t. Team names are unique within a group, ignoring case.
func (d *MemoryDirectory) AddTeam(t models.Team) error {
	if t.ID == "" || strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team id and name are required")
	}
	if !models.ValidGroup(t.Group) {
		return fmt.Errorf("team %s: unknown group %q", t.ID, t.Group)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	for id, other := range d.teams {
		if id != t.ID && other.Group == t.Group && strings.EqualFold(other.Name, t.Name) {
			return fmt.Errorf("team %q already exists in %s", t.Name, t.Group)
		}
	}
	t.AthleteIDs = append([]string(nil), t.AthleteIDs...)
	d.teams[t.ID] = t
	return nil
}

// AddMatch stores m.
func (d *MemoryDirectory) AddMatch(m models.Match) error {
	if m.ID == "" {
		return fmt.Errorf("match id is required")
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.matches[m.ID] = m
	return nil
}

func (d *MemoryDirectory) Match(ctx context.Context, id string) (models.Match, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	m, ok := d.matches[id]
	if !ok {
		return models.Match{}, fmt.Errorf("match %s: %w", id, ErrNotFound)
	}
	return m, nil
}

func (d *MemoryDirectory) Team(ctx context.Context, id string) (models.Team, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	t, ok := d.teams[id]
	if !ok {
		return models.Team{}, fmt.Errorf("team %s: %w", id, ErrNotFound)
	}
	t.AthleteIDs = append([]string(nil), t.AthleteIDs...)
	return t, nil
}

// AthletesByGroup returns the athletes of group ordered by jersey number,
// unnumbered athletes last, then by name.
func (d *MemoryDirectory) AthletesByGroup(ctx context.Context, group models.Group) ([]models.Athlete, error) {
	d.mu.RLock()
	out := make([]models.Athlete, 0)
	for _, a := range d.athletes {
		if a.Group == group {
			out = append(out, a)
		}
	}
	d.mu.RUnlock()

	SortAthletes(out)
	return out, nil
}

// Athletes returns the known athletes among ids, in the order of ids.
// Unknown ids are left out.
func (d *MemoryDirectory) Athletes(ctx context.Context, ids []string) ([]models.Athlete, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]models.Athlete, 0, len(ids))
	for _, id := range ids {
		if a, ok := d.athletes[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

// SortAthletes orders athletes by jersey number, unnumbered last, then name.
func SortAthletes(athletes []models.Athlete) {
	sort.SliceStable(athletes, func(i, j int) bool {
		a, b := athletes[i], athletes[j]
		switch {
		case a.Number != nil && b.Number != nil && *a.Number != *b.Number:
			return *a.Number < *b.Number
		case a.Number != nil && b.Number == nil:
			return true
		case a.Number == nil && b.Number != nil:
			return false
		}
		return a.Name < b.Name
	})
}
