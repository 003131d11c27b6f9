package buildreport

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// History persists a summary of each build report (id, fingerprint,
// module path, counts) across process lifetimes in a pure-Go, cgo-free
// sqlite database, per SPEC_FULL §6.6. It stores builds only; dynamic-layer
// execution outcomes are not recorded here.
type History struct {
	db *sql.DB
}

// OpenHistory opens (creating if absent) a history database at path.
func OpenHistory(path string) (*History, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening build history %s: %w", path, err)
	}
	h := &History{db: db}
	if err := h.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return h, nil
}

func (h *History) migrate() error {
	_, err := h.db.Exec(`
		CREATE TABLE IF NOT EXISTS builds (
			id TEXT PRIMARY KEY,
			fingerprint INTEGER NOT NULL,
			module_path TEXT,
			num_operations INTEGER NOT NULL,
			cycle_rejections INTEGER NOT NULL,
			edges_reduced INTEGER NOT NULL,
			created_at TIMESTAMP NOT NULL
		)`)
	return err
}

// Record appends r to the history.
func (h *History) Record(r *Report) error {
	_, err := h.db.Exec(
		`INSERT INTO builds (id, fingerprint, module_path, num_operations, cycle_rejections, edges_reduced, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, int64(r.Fingerprint), r.Module.Path, r.NumOperations, r.CycleRejections, r.EdgesReduced, time.Now(),
	)
	return err
}

// Last returns the fingerprint of the most recently recorded build, and
// whether any build has been recorded yet.
func (h *History) Last() (uint64, bool, error) {
	row := h.db.QueryRow(`SELECT fingerprint FROM builds ORDER BY created_at DESC LIMIT 1`)
	var fp int64
	if err := row.Scan(&fp); err != nil {
		if err == sql.ErrNoRows {
			return 0, false, nil
		}
		return 0, false, err
	}
	return uint64(fp), true, nil
}

// Close releases the underlying database handle.
func (h *History) Close() error { return h.db.Close() }
