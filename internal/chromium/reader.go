package chromium

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mlucas/webtrail/internal/timeline"
)

// requiredColumns lists the columns each history table must carry for the
// export to make sense. Extra columns are fine; missing ones mean the file is
// not a Chromium history store.
var requiredColumns = map[string][]string{
	"urls":   {"id", "url", "title"},
	"visits": {"id", "url", "visit_time", "transition"},
}

// ReadStats reports what happened to the rows of one read pass.
type ReadStats struct {
	RowsRead     int
	RowsSkipped  int
	RowsExcluded int
}

// Options controls a visit read.
type Options struct {
	Window timeline.Window
	// ExcludeDomains lists domains whose visits are dropped (and counted)
	// rather than exported.
	ExcludeDomains []string
}

// Reader reads visit rows from a snapshotted Chromium history database.
// The database is opened read-only and immutable; the Reader never mutates
// or deletes the source file.
type Reader struct {
	db   *sql.DB
	path string
}

// OpenReader opens the snapshot at path and validates its schema.
func OpenReader(path string) (*Reader, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, &StoreNotFoundError{Path: path}
	}

	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro&immutable=1")
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	if err := validateSchema(db, path); err != nil {
		db.Close()
		return nil, err
	}

	return &Reader{db: db, path: path}, nil
}

// validateSchema checks that the urls and visits tables exist with the
// expected columns.
func validateSchema(db *sql.DB, path string) error {
	for table, want := range requiredColumns {
		rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
		if err != nil {
			if strings.Contains(err.Error(), "database is locked") {
				return &StoreLockedError{Path: path, Err: err}
			}
			return &CorruptStoreError{Path: path, Detail: err.Error()}
		}

		have := map[string]bool{}
		for rows.Next() {
			var (
				cid        int
				name, typ  string
				notNull    int
				defaultVal sql.NullString
				pk         int
			)
			if err := rows.Scan(&cid, &name, &typ, &notNull, &defaultVal, &pk); err != nil {
				rows.Close()
				return &CorruptStoreError{Path: path, Detail: err.Error()}
			}
			have[name] = true
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return &CorruptStoreError{Path: path, Detail: err.Error()}
		}
		rows.Close()

		if len(have) == 0 {
			return &CorruptStoreError{Path: path, Detail: fmt.Sprintf("missing table %q", table)}
		}
		for _, col := range want {
			if !have[col] {
				return &CorruptStoreError{Path: path, Detail: fmt.Sprintf("table %q missing column %q", table, col)}
			}
		}
	}
	return nil
}

// Visits reads all visit rows inside the window, joined to their URLs,
// ordered by visit time ascending. Rows with an absent timestamp are skipped
// and counted; rows on an excluded domain are dropped and counted. Transition
// decoding is total, so it never causes a skip.
func (r *Reader) Visits(ctx context.Context, opts Options) ([]timeline.Visit, ReadStats, error) {
	var stats ReadStats

	since := TimeToChromeEpoch(opts.Window.Start)
	until := int64(1<<63 - 1)
	if !opts.Window.End.IsZero() {
		until = TimeToChromeEpoch(opts.Window.End)
	}

	excluded := make(map[string]bool, len(opts.ExcludeDomains))
	for _, d := range opts.ExcludeDomains {
		excluded[strings.ToLower(d)] = true
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT u.url, u.title, v.visit_time, v.transition
		FROM visits v
		JOIN urls u ON u.id = v.url
		WHERE v.visit_time >= ? AND v.visit_time < ?
		ORDER BY v.visit_time ASC, v.id ASC
	`, since, until)
	if err != nil {
		return nil, stats, &CorruptStoreError{Path: r.path, Detail: err.Error()}
	}
	defer rows.Close()

	visits := []timeline.Visit{}
	for rows.Next() {
		var (
			rawURL     string
			title      sql.NullString
			visitTime  int64
			transition int64
		)
		if err := rows.Scan(&rawURL, &title, &visitTime, &transition); err != nil {
			stats.RowsSkipped++
			continue
		}
		stats.RowsRead++

		ts := TimeFromChromeEpoch(visitTime)
		if ts.IsZero() {
			stats.RowsSkipped++
			continue
		}

		if excluded[timeline.Domain(rawURL)] {
			stats.RowsExcluded++
			continue
		}

		v := timeline.Visit{
			URL:        rawURL,
			Title:      title.String,
			VisitTime:  ts,
			Transition: DecodeTransition(uint32(transition)),
		}
		if q, ok := SearchQuery(rawURL); ok {
			v.SearchQuery = q
		}
		visits = append(visits, v)
	}
	if err := rows.Err(); err != nil {
		return nil, stats, fmt.Errorf("read visits: %w", err)
	}

	return visits, stats, nil
}

// Close releases the underlying database handle.
func (r *Reader) Close() error {
	return r.db.Close()
}

// WindowForWeeks builds an export window covering the last weeks*7 days,
// ending at now.
func WindowForWeeks(now time.Time, weeks int) timeline.Window {
	end := now.UTC()
	return timeline.Window{
		Start: end.Add(-time.Duration(weeks) * 7 * 24 * time.Hour),
		End:   end,
	}
}
