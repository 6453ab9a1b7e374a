package chromium

import (
	"fmt"
	"io"
	"os"
)

// Snapshot copies the live history database to a private temp file so the
// read never contends with the browser's own lock. The returned cleanup func
// removes the copy and must be called on every exit path.
func Snapshot(src string) (string, func(), error) {
	in, err := os.Open(src)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, &StoreNotFoundError{Path: src}
		}
		return "", nil, &StoreLockedError{Path: src, Err: err}
	}
	defer in.Close()

	out, err := os.CreateTemp("", "webtrail-history-*.db")
	if err != nil {
		return "", nil, fmt.Errorf("create snapshot file: %w", err)
	}

	cleanup := func() { os.Remove(out.Name()) }

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		cleanup()
		return "", nil, &StoreLockedError{Path: src, Err: err}
	}
	if err := out.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("close snapshot file: %w", err)
	}

	return out.Name(), cleanup, nil
}
