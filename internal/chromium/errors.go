package chromium

import "fmt"

// StoreNotFoundError indicates the configured history database path does not exist.
type StoreNotFoundError struct {
	Path string
}

func (e *StoreNotFoundError) Error() string {
	return fmt.Sprintf("history store not found: %s", e.Path)
}

// StoreLockedError indicates a stable read of the history database could not
// be obtained. It is propagated, not retried.
type StoreLockedError struct {
	Path string
	Err  error
}

func (e *StoreLockedError) Error() string {
	return fmt.Sprintf("history store locked or unreadable: %s: %v", e.Path, e.Err)
}

func (e *StoreLockedError) Unwrap() error { return e.Err }

// CorruptStoreError indicates the snapshot is not a valid Chromium history
// store: missing tables, missing columns, or not a SQLite file at all.
type CorruptStoreError struct {
	Path   string
	Detail string
}

func (e *CorruptStoreError) Error() string {
	return fmt.Sprintf("corrupt history store %s: %s", e.Path, e.Detail)
}
