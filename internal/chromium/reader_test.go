package chromium

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlucas/webtrail/internal/timeline"
)

// historyRow describes one urls+visits fixture row.
type historyRow struct {
	url        string
	title      string
	visitTime  time.Time
	rawTime    int64 // used instead of visitTime when visitTime is zero
	transition uint32
}

// createHistoryDB writes a minimal Chromium-shaped history database.
func createHistoryDB(t *testing.T, rows []historyRow) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "History")

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`
		CREATE TABLE urls (
			id INTEGER PRIMARY KEY,
			url TEXT NOT NULL,
			title TEXT,
			visit_count INTEGER DEFAULT 0,
			typed_count INTEGER DEFAULT 0,
			last_visit_time INTEGER DEFAULT 0,
			hidden INTEGER DEFAULT 0
		);
		CREATE TABLE visits (
			id INTEGER PRIMARY KEY,
			url INTEGER NOT NULL,
			visit_time INTEGER NOT NULL,
			from_visit INTEGER DEFAULT 0,
			transition INTEGER DEFAULT 0
		);
	`)
	require.NoError(t, err)

	for i, r := range rows {
		raw := r.rawTime
		if !r.visitTime.IsZero() {
			raw = TimeToChromeEpoch(r.visitTime)
		}
		_, err = db.Exec("INSERT INTO urls (id, url, title) VALUES (?, ?, ?)", i+1, r.url, r.title)
		require.NoError(t, err)
		_, err = db.Exec("INSERT INTO visits (url, visit_time, transition) VALUES (?, ?, ?)", i+1, raw, int64(r.transition))
		require.NoError(t, err)
	}

	return path
}

func TestOpenReader_MissingFile(t *testing.T) {
	_, err := OpenReader(filepath.Join(t.TempDir(), "nope"))
	var notFound *StoreNotFoundError
	require.True(t, errors.As(err, &notFound))
}

func TestOpenReader_NotADatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "History")
	require.NoError(t, os.WriteFile(path, []byte("this is not sqlite"), 0644))

	_, err := OpenReader(path)
	var corrupt *CorruptStoreError
	require.True(t, errors.As(err, &corrupt), "got %v", err)
}

func TestOpenReader_MissingTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "History")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	_, err = db.Exec("CREATE TABLE something_else (x TEXT)")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = OpenReader(path)
	var corrupt *CorruptStoreError
	require.True(t, errors.As(err, &corrupt), "got %v", err)
}

func TestReaderVisits_OrderingAndWindow(t *testing.T) {
	base := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	path := createHistoryDB(t, []historyRow{
		{url: "https://golang.org/doc", title: "Docs", visitTime: base.Add(2 * time.Hour), transition: 0},
		{url: "https://news.ycombinator.com/", title: "HN", visitTime: base, transition: 1},
		{url: "https://old.example.com/", title: "Too old", visitTime: base.Add(-48 * time.Hour), transition: 0},
	})

	r, err := OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	window := timeline.Window{Start: base.Add(-time.Hour), End: base.Add(24 * time.Hour)}
	visits, stats, err := r.Visits(context.Background(), Options{Window: window})
	require.NoError(t, err)

	require.Len(t, visits, 2)
	assert.Equal(t, "https://news.ycombinator.com/", visits[0].URL)
	assert.Equal(t, "typed", visits[0].Transition.CoreType)
	assert.Equal(t, "https://golang.org/doc", visits[1].URL)
	assert.True(t, visits[0].VisitTime.Before(visits[1].VisitTime))
	assert.Equal(t, 2, stats.RowsRead)
}

func TestReaderVisits_SkipsAbsentTimestamps(t *testing.T) {
	base := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	path := createHistoryDB(t, []historyRow{
		{url: "https://golang.org/", title: "Go", visitTime: base},
		{url: "https://broken.example.com/", title: "No timestamp", rawTime: 0},
	})

	r, err := OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	visits, stats, err := r.Visits(context.Background(), Options{
		// Chrome time 0 predates any window start, so widen the lower
		// bound to prove the skip comes from decoding, not filtering.
		Window: timeline.Window{Start: time.Date(1601, 1, 1, 0, 0, 0, 0, time.UTC), End: base.Add(time.Hour)},
	})
	require.NoError(t, err)

	require.Len(t, visits, 1)
	assert.Equal(t, "https://golang.org/", visits[0].URL)
	assert.Equal(t, 1, stats.RowsSkipped)
}

func TestReaderVisits_ExcludedDomains(t *testing.T) {
	base := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	path := createHistoryDB(t, []historyRow{
		{url: "https://chase.com/login", title: "Bank", visitTime: base},
		{url: "https://golang.org/", title: "Go", visitTime: base.Add(time.Minute)},
	})

	r, err := OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	visits, stats, err := r.Visits(context.Background(), Options{
		Window:         timeline.Window{Start: base.Add(-time.Hour), End: base.Add(time.Hour)},
		ExcludeDomains: []string{"chase.com"},
	})
	require.NoError(t, err)

	require.Len(t, visits, 1)
	assert.Equal(t, "https://golang.org/", visits[0].URL)
	assert.Equal(t, 1, stats.RowsExcluded)
}

func TestReaderVisits_SearchQueryExtraction(t *testing.T) {
	base := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	path := createHistoryDB(t, []historyRow{
		{url: "https://www.google.com/search?q=go+iterators", title: "go iterators - Google Search", visitTime: base},
	})

	r, err := OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	visits, _, err := r.Visits(context.Background(), Options{
		Window: timeline.Window{Start: base.Add(-time.Hour), End: base.Add(time.Hour)},
	})
	require.NoError(t, err)

	require.Len(t, visits, 1)
	assert.Equal(t, "go iterators", visits[0].SearchQuery)
	assert.Empty(t, visits[0].Source, "source is absent until merge")
}

func TestWindowForWeeks(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	w := WindowForWeeks(now, 3)
	assert.Equal(t, now, w.End)
	assert.Equal(t, now.Add(-3*7*24*time.Hour), w.Start)
}
