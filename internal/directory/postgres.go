package directory

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/basketmanager/stats-api/internal/models"
)

// PgPool defines the interface for PostgreSQL connection pool
type PgPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresDirectory reads reference data from the directory schema
type PostgresDirectory struct {
	pool PgPool
}

func NewPostgresDirectory(pool PgPool) *PostgresDirectory {
	return &PostgresDirectory{pool: pool}
}

func (d *PostgresDirectory) Match(ctx context.Context, id string) (models.Match, error) {
	var (
		m                  models.Match
		group              string
		homeTeam, awayTeam *string
	)
	err := d.pool.QueryRow(ctx, `
		SELECT id, age_group, match_date, home_name, away_name, home_team_id, away_team_id
		FROM matches
		WHERE id = $1
	`, id).Scan(&m.ID, &group, &m.Date, &m.Home, &m.Away, &homeTeam, &awayTeam)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Match{}, fmt.Errorf("match %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return models.Match{}, fmt.Errorf("query match %s: %w", id, err)
	}

	m.Group = models.Group(group)
	if homeTeam != nil {
		m.HomeTeamID = *homeTeam
	}
	if awayTeam != nil {
		m.AwayTeamID = *awayTeam
	}
	return m, nil
}

func (d *PostgresDirectory) Team(ctx context.Context, id string) (models.Team, error) {
	var (
		t     models.Team
		group string
	)
	err := d.pool.QueryRow(ctx, `SELECT id, name, age_group FROM teams WHERE id = $1`, id).
		Scan(&t.ID, &t.Name, &group)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Team{}, fmt.Errorf("team %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return models.Team{}, fmt.Errorf("query team %s: %w", id, err)
	}
	t.Group = models.Group(group)

	rows, err := d.pool.Query(ctx, `
		SELECT athlete_id FROM team_athletes WHERE team_id = $1 ORDER BY position, athlete_id
	`, id)
	if err != nil {
		return models.Team{}, fmt.Errorf("query team %s athletes: %w", id, err)
	}
	defer rows.Close()

	t.AthleteIDs = []string{}
	for rows.Next() {
		var athleteID string
		if err := rows.Scan(&athleteID); err != nil {
			return models.Team{}, err
		}
		t.AthleteIDs = append(t.AthleteIDs, athleteID)
	}
	return t, rows.Err()
}

func (d *PostgresDirectory) AthletesByGroup(ctx context.Context, group models.Group) ([]models.Athlete, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT a.id, a.name, a.number, COALESCE(t.name, ''), a.age_group
		FROM athletes a
		LEFT JOIN teams t ON t.id = a.team_id
		WHERE a.age_group = $1
		ORDER BY a.number NULLS LAST, a.name
	`, string(group))
	if err != nil {
		return nil, fmt.Errorf("query athletes %s: %w", group, err)
	}
	return scanAthletes(rows)
}

func (d *PostgresDirectory) Athletes(ctx context.Context, ids []string) ([]models.Athlete, error) {
	if len(ids) == 0 {
		return []models.Athlete{}, nil
	}
	rows, err := d.pool.Query(ctx, `
		SELECT a.id, a.name, a.number, COALESCE(t.name, ''), a.age_group
		FROM athletes a
		LEFT JOIN teams t ON t.id = a.team_id
		WHERE a.id = ANY($1)
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("query athletes: %w", err)
	}
	found, err := scanAthletes(rows)
	if err != nil {
		return nil, err
	}

	// Keep the caller's order
	byID := make(map[string]models.Athlete, len(found))
	for _, a := range found {
		byID[a.ID] = a
	}
	out := make([]models.Athlete, 0, len(found))
	for _, id := range ids {
		if a, ok := byID[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func scanAthletes(rows pgx.Rows) ([]models.Athlete, error) {
	defer rows.Close()

	out := []models.Athlete{}
	for rows.Next() {
		var (
			a      models.Athlete
			number *int32
			group  string
		)
		if err := rows.Scan(&a.ID, &a.Name, &number, &a.Team, &group); err != nil {
			return nil, err
		}
		if number != nil {
			n := int(*number)
			a.Number = &n
		}
		a.Group = models.Group(group)
		out = append(out, a)
	}
	return out, rows.Err()
}

// SaveAthlete inserts or updates an athlete
func (d *PostgresDirectory) SaveAthlete(ctx context.Context, a models.Athlete, teamID string) error {
	if !models.ValidGroup(a.Group) {
		return fmt.Errorf("athlete %s: unknown group %q", a.ID, a.Group)
	}
	_, err := d.pool.Exec(ctx, `
		INSERT INTO athletes (id, name, number, age_group, team_id)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''))
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name, number = EXCLUDED.number,
		    age_group = EXCLUDED.age_group, team_id = EXCLUDED.team_id
	`, a.ID, a.Name, a.Number, string(a.Group), teamID)
	if err != nil {
		return fmt.Errorf("save athlete %s: %w", a.ID, err)
	}
	return nil
}

// SaveTeam inserts or updates a team and replaces its athlete pool, keeping
// the order of t.AthleteIDs.
func (d *PostgresDirectory) SaveTeam(ctx context.Context, t models.Team) error {
	if !models.ValidGroup(t.Group) {
		return fmt.Errorf("team %s: unknown group %q", t.ID, t.Group)
	}
	if _, err := d.pool.Exec(ctx, `
		INSERT INTO teams (id, name, age_group)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, age_group = EXCLUDED.age_group
	`, t.ID, t.Name, string(t.Group)); err != nil {
		return fmt.Errorf("save team %s: %w", t.ID, err)
	}

	if _, err := d.pool.Exec(ctx, `DELETE FROM team_athletes WHERE team_id = $1`, t.ID); err != nil {
		return fmt.Errorf("clear team %s athletes: %w", t.ID, err)
	}
	if len(t.AthleteIDs) == 0 {
		return nil
	}
	if _, err := d.pool.Exec(ctx, `
		INSERT INTO team_athletes (team_id, athlete_id, position)
		SELECT $1, athlete_id, position::int
		FROM unnest($2::text[]) WITH ORDINALITY AS p(athlete_id, position)
	`, t.ID, t.AthleteIDs); err != nil {
		return fmt.Errorf("save team %s athletes: %w", t.ID, err)
	}
	return nil
}

// SaveMatch inserts or updates a match
func (d *PostgresDirectory) SaveMatch(ctx context.Context, m models.Match) error {
	if m.ID == "" {
		return errors.New("match id is required")
	}
	_, err := d.pool.Exec(ctx, `
		INSERT INTO matches (id, age_group, match_date, home_name, away_name, home_team_id, away_team_id)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''))
		ON CONFLICT (id) DO UPDATE
		SET age_group = EXCLUDED.age_group, match_date = EXCLUDED.match_date,
		    home_name = EXCLUDED.home_name, away_name = EXCLUDED.away_name,
		    home_team_id = EXCLUDED.home_team_id, away_team_id = EXCLUDED.away_team_id
	`, m.ID, string(m.Group), m.Date, m.Home, m.Away, m.HomeTeamID, m.AwayTeamID)
	if err != nil {
		return fmt.Errorf("save match %s: %w", m.ID, err)
	}
	return nil
}
