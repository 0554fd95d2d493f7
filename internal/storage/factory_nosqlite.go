//go:build !sqlite

package storage

import "fmt"

// newSQLiteStore reports the missing backend with the path that asked for it,
// so `aggregate --store sqlite` fails before any report is printed.
func newSQLiteStore(path string) (Store, error) {
	return nil, fmt.Errorf("%w: cannot open %q; rebuild gaharnessctl with -tags sqlite", ErrSQLiteUnavailable, path)
}
