package cli

import (
	"bytes"
	"database/sql"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/mlucas/webtrail/internal/chromium"
)

// captureOutput captures stdout during fn execution and returns it as a string.
func captureOutput(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

// fixtureVisit is one row for writeHistoryFixture.
type fixtureVisit struct {
	url        string
	title      string
	ts         time.Time
	transition uint32
}

// writeHistoryFixture builds a Chromium-shaped History database.
func writeHistoryFixture(t *testing.T, visits []fixtureVisit) string {
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

	for i, v := range visits {
		_, err = db.Exec("INSERT INTO urls (id, url, title) VALUES (?, ?, ?)", i+1, v.url, v.title)
		require.NoError(t, err)
		_, err = db.Exec("INSERT INTO visits (url, visit_time, transition) VALUES (?, ?, ?)",
			i+1, chromium.TimeToChromeEpoch(v.ts), int64(v.transition))
		require.NoError(t, err)
	}

	return path
}
