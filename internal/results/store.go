// Package results persists plan results and trial records to SQLite for
// offline analysis. Paths and action sequences are stored as
// little-endian float32 blobs in schema field order.
package results

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/golang/geo/r2"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/armlab/ropeplan/internal/execute"
	"github.com/armlab/ropeplan/internal/planner"
	"github.com/armlab/ropeplan/internal/space"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS plans (
	plan_id          TEXT PRIMARY KEY,
	trial_id         TEXT NOT NULL,
	status           TEXT NOT NULL,
	goal_x           REAL NOT NULL,
	goal_y           REAL NOT NULL,
	planning_time_ms INTEGER NOT NULL,
	path             BLOB,
	actions          BLOB,
	action_dim       INTEGER NOT NULL,
	stats_json       TEXT,
	created_at       TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS trials (
	trial_id     TEXT PRIMARY KEY,
	scenario     TEXT NOT NULL,
	goal_x       REAL NOT NULL,
	goal_y       REAL NOT NULL,
	outcome      TEXT NOT NULL,
	attempts     INTEGER NOT NULL,
	replans      INTEGER NOT NULL,
	started_at   TEXT NOT NULL,
	finished_at  TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_plans_trial ON plans(trial_id);
`
// #endregion schema

// #region store-struct
// Store persists plans and trials in SQLite. The state schema is fixed
// per store so path blobs decode unambiguously.
type Store struct {
	db     *sql.DB
	schema *space.Schema
}
// #endregion store-struct

// #region records
// PlanRecord is one persisted planning episode.
type PlanRecord struct {
	PlanID         string
	TrialID        string
	Status         planner.Status
	Goal           r2.Point
	PlanningTimeMs int64
	Path           []space.State
	Actions        [][]float64
	Stats          planner.Stats
	CreatedAt      time.Time
}

// Summary aggregates persisted trials and plans for the results CLI.
type Summary struct {
	Trials         int
	GoalReached    int
	Plans          int
	ExactPlans     int
	SuccessRate    float64
	MeanPlanningMs float64
}
// #endregion records

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string, sc *space.Schema) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db, schema: sc}, nil
}
// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
// #endregion close

// #region save-plan
// SavePlan persists one planning episode under its trial.
func (s *Store) SavePlan(ctx context.Context, trialID string, goal r2.Point, res planner.Result) error {
	statsJSON, err := json.Marshal(res.Stats)
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}

	actionDim := 0
	if len(res.Actions) > 0 {
		actionDim = len(res.Actions[0])
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO plans (plan_id, trial_id, status, goal_x, goal_y, planning_time_ms, path, actions, action_dim, stats_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.New().String(), trialID, string(res.Status), goal.X, goal.Y,
		res.PlanningTime.Milliseconds(),
		s.encodePath(res.Path), encodeActions(res.Actions), actionDim,
		string(statsJSON), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert plan: %w", err)
	}
	return nil
}
// #endregion save-plan

// #region save-trial
// SaveTrial persists the trial summary record.
func (s *Store) SaveTrial(ctx context.Context, rec execute.TrialRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO trials (trial_id, scenario, goal_x, goal_y, outcome, attempts, replans, started_at, finished_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Scenario, rec.Goal.X, rec.Goal.Y, string(rec.Outcome),
		len(rec.Attempts), rec.Replans,
		rec.StartedAt.UTC().Format(time.RFC3339Nano),
		rec.FinishedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert trial: %w", err)
	}
	return nil
}
// #endregion save-trial

// #region list-plans
// ListPlans returns the persisted plans for one trial, oldest first.
func (s *Store) ListPlans(ctx context.Context, trialID string) ([]PlanRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT plan_id, trial_id, status, goal_x, goal_y, planning_time_ms, path, actions, action_dim, stats_json, created_at
		 FROM plans WHERE trial_id = ? ORDER BY created_at ASC`, trialID,
	)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()

	var records []PlanRecord
	for rows.Next() {
		var rec PlanRecord
		var status string
		var pathBlob, actionsBlob []byte
		var actionDim int
		var statsJSON sql.NullString
		var createdStr string

		if err := rows.Scan(&rec.PlanID, &rec.TrialID, &status, &rec.Goal.X, &rec.Goal.Y,
			&rec.PlanningTimeMs, &pathBlob, &actionsBlob, &actionDim, &statsJSON, &createdStr); err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		rec.Status = planner.Status(status)
		rec.Path = s.decodePath(pathBlob)
		rec.Actions = decodeActions(actionsBlob, actionDim)
		if statsJSON.Valid {
			if err := json.Unmarshal([]byte(statsJSON.String), &rec.Stats); err != nil {
				return nil, fmt.Errorf("unmarshal stats: %w", err)
			}
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		records = append(records, rec)
	}
	return records, rows.Err()
}
// #endregion list-plans

// #region summary
// Summarize aggregates all persisted trials and plans.
func (s *Store) Summarize(ctx context.Context) (Summary, error) {
	var sum Summary
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0) FROM trials`,
		string(execute.OutcomeGoalReached),
	).Scan(&sum.Trials, &sum.GoalReached)
	if err != nil {
		return Summary{}, fmt.Errorf("summarize trials: %w", err)
	}

	var meanMs sql.NullFloat64
	err = s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0), AVG(planning_time_ms) FROM plans`,
		string(planner.StatusExact),
	).Scan(&sum.Plans, &sum.ExactPlans, &meanMs)
	if err != nil {
		return Summary{}, fmt.Errorf("summarize plans: %w", err)
	}
	if meanMs.Valid {
		sum.MeanPlanningMs = meanMs.Float64
	}
	if sum.Trials > 0 {
		sum.SuccessRate = float64(sum.GoalReached) / float64(sum.Trials)
	}
	return sum, nil
}
// #endregion summary

// #region blob-encoding
// encodePath flattens each state through the schema and concatenates the
// float32 little-endian encodings. The blob length is a multiple of the
// schema's total width.
func (s *Store) encodePath(path []space.State) []byte {
	w := s.schema.TotalWidth()
	buf := make([]byte, 0, len(path)*w*4)
	for _, st := range path {
		buf = appendFloats(buf, s.schema.Encode(st))
	}
	return buf
}

func (s *Store) decodePath(b []byte) []space.State {
	w := s.schema.TotalWidth()
	n := len(b) / (w * 4)
	var path []space.State
	for i := 0; i < n; i++ {
		path = append(path, s.schema.Decode(readFloats(b[i*w*4:], w)))
	}
	return path
}

func encodeActions(actions [][]float64) []byte {
	var buf []byte
	for _, a := range actions {
		buf = appendFloats(buf, a)
	}
	return buf
}

func decodeActions(b []byte, dim int) [][]float64 {
	if dim == 0 {
		return nil
	}
	n := len(b) / (dim * 4)
	var actions [][]float64
	for i := 0; i < n; i++ {
		actions = append(actions, readFloats(b[i*dim*4:], dim))
	}
	return actions
}

func appendFloats(buf []byte, v []float64) []byte {
	for _, f := range v {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(float32(f)))
	}
	return buf
}

func readFloats(b []byte, n int) []float64 {
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = float64(math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:])))
	}
	return out
}
// #endregion blob-encoding
