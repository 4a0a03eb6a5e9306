package migration

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Step is one schema change, loaded from an embedded
// NNN_name.up.sql / NNN_name.down.sql pair.
type Step struct {
	Version  int
	Name     string
	UpSQL    string
	DownSQL  string
	Checksum string
}

// Status describes one step relative to the ledger table.
type Status struct {
	Version   int
	Name      string
	Applied   bool
	AppliedAt time.Time
}

// Runner applies the embedded migration set against Postgres. The set
// is fixed at build time, so a malformed or unpaired file is a load
// error, never a skip. Each step runs in one transaction together
// with its ledger row; a failed step leaves the schema at the
// previous version.
type Runner struct {
	db     *sql.DB
	fsys   fs.FS
	logger *slog.Logger
}

// NewRunner creates a migration runner over an embedded filesystem
func NewRunner(db *sql.DB, fsys fs.FS, logger *slog.Logger) *Runner {
	return &Runner{
		db:     db,
		fsys:   fsys,
		logger: logger.With("component", "migration_runner"),
	}
}

const ledgerDDL = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version INTEGER PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	checksum VARCHAR(64) NOT NULL,
	applied_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// Up applies every pending step in version order and returns how many
// ran. A previously applied step whose file content has since changed
// aborts the run: the embedded set is append-only.
func (r *Runner) Up(ctx context.Context) (int, error) {
	if _, err := r.db.ExecContext(ctx, ledgerDDL); err != nil {
		return 0, fmt.Errorf("failed to ensure migration ledger: %w", err)
	}

	steps, err := loadSteps(r.fsys)
	if err != nil {
		return 0, err
	}

	recorded, err := r.recordedChecksums(ctx)
	if err != nil {
		return 0, err
	}

	applied := 0
	for _, step := range steps {
		if sum, ok := recorded[step.Version]; ok {
			if sum != step.Checksum {
				return applied, fmt.Errorf("migration %03d_%s changed after it was applied", step.Version, step.Name)
			}
			continue
		}

		if err := r.runStep(ctx, step.UpSQL, func(tx *sql.Tx) error {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO schema_migrations (version, name, checksum) VALUES ($1, $2, $3)`,
				step.Version, step.Name, step.Checksum)
			return err
		}); err != nil {
			return applied, fmt.Errorf("migration %03d_%s: %w", step.Version, step.Name, err)
		}

		r.logger.Info("applied migration", "version", step.Version, "name", step.Name)
		applied++
	}

	return applied, nil
}

// Down rolls back up to n applied steps, newest first, and returns
// how many were undone.
func (r *Runner) Down(ctx context.Context, n int) (int, error) {
	if n <= 0 {
		n = 1
	}

	steps, err := loadSteps(r.fsys)
	if err != nil {
		return 0, err
	}
	byVersion := make(map[int]Step, len(steps))
	for _, step := range steps {
		byVersion[step.Version] = step
	}

	recorded, err := r.recordedChecksums(ctx)
	if err != nil {
		return 0, err
	}
	versions := make([]int, 0, len(recorded))
	for v := range recorded {
		versions = append(versions, v)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(versions)))

	rolledBack := 0
	for _, version := range versions {
		if rolledBack == n {
			break
		}

		step, ok := byVersion[version]
		if !ok {
			return rolledBack, fmt.Errorf("applied migration %d has no file in the embedded set", version)
		}

		if err := r.runStep(ctx, step.DownSQL, func(tx *sql.Tx) error {
			_, err := tx.ExecContext(ctx, `DELETE FROM schema_migrations WHERE version = $1`, step.Version)
			return err
		}); err != nil {
			return rolledBack, fmt.Errorf("rollback %03d_%s: %w", step.Version, step.Name, err)
		}

		r.logger.Info("rolled back migration", "version", step.Version, "name", step.Name)
		rolledBack++
	}

	return rolledBack, nil
}

// Statuses reports every step in the embedded set against the ledger
func (r *Runner) Statuses(ctx context.Context) ([]Status, error) {
	steps, err := loadSteps(r.fsys)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `SELECT version, applied_at FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("failed to read migration ledger: %w", err)
	}
	defer rows.Close()

	appliedAt := make(map[int]time.Time)
	for rows.Next() {
		var version int
		var at time.Time
		if err := rows.Scan(&version, &at); err != nil {
			return nil, fmt.Errorf("failed to scan ledger row: %w", err)
		}
		appliedAt[version] = at
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ledger rows: %w", err)
	}

	statuses := make([]Status, 0, len(steps))
	for _, step := range steps {
		at, applied := appliedAt[step.Version]
		statuses = append(statuses, Status{
			Version:   step.Version,
			Name:      step.Name,
			Applied:   applied,
			AppliedAt: at,
		})
	}

	return statuses, nil
}

// runStep executes one migration statement set plus its ledger write
// in a single transaction.
func (r *Runner) runStep(ctx context.Context, stmts string, ledger func(*sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, stmts); err != nil {
		return err
	}

	if err := ledger(tx); err != nil {
		return fmt.Errorf("failed to update migration ledger: %w", err)
	}

	return tx.Commit()
}

func (r *Runner) recordedChecksums(ctx context.Context) (map[int]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT version, checksum FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("failed to read migration ledger: %w", err)
	}
	defer rows.Close()

	recorded := make(map[int]string)
	for rows.Next() {
		var version int
		var checksum string
		if err := rows.Scan(&version, &checksum); err != nil {
			return nil, fmt.Errorf("failed to scan ledger row: %w", err)
		}
		recorded[version] = checksum
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ledger rows: %w", err)
	}

	return recorded, nil
}

// loadSteps reads every NNN_name.up.sql in the filesystem, pairs each
// with its NNN_name.down.sql, and returns the set sorted by version.
func loadSteps(fsys fs.FS) ([]Step, error) {
	var steps []Step
	seen := make(map[int]string)

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, ".up.sql") {
			return nil
		}

		base := path.Base(p)
		version, name, err := parseStepName(base)
		if err != nil {
			return err
		}
		if prev, dup := seen[version]; dup {
			return fmt.Errorf("duplicate migration version %d: %s and %s", version, prev, base)
		}
		seen[version] = base

		upSQL, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", p, err)
		}

		downPath := strings.TrimSuffix(p, ".up.sql") + ".down.sql"
		downSQL, err := fs.ReadFile(fsys, downPath)
		if err != nil {
			return fmt.Errorf("migration %s has no down file: %w", base, err)
		}

		sum := sha256.Sum256(upSQL)
		steps = append(steps, Step{
			Version:  version,
			Name:     name,
			UpSQL:    string(upSQL),
			DownSQL:  string(downSQL),
			Checksum: hex.EncodeToString(sum[:]),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(steps, func(i, j int) bool { return steps[i].Version < steps[j].Version })

	return steps, nil
}

func parseStepName(filename string) (int, string, error) {
	stem := strings.TrimSuffix(filename, ".up.sql")

	idx := strings.Index(stem, "_")
	if idx <= 0 || idx == len(stem)-1 {
		return 0, "", fmt.Errorf("migration filename %q is not NNN_name.up.sql", filename)
	}

	version, err := strconv.Atoi(stem[:idx])
	if err != nil {
		return 0, "", fmt.Errorf("migration filename %q has a non-numeric version: %w", filename, err)
	}

	return version, stem[idx+1:], nil
}
