// Package localfile implements the client's persisted state as JSON files
// in a per-user state directory. Semantics mirror browser local storage:
// whole-value reads and writes under well-known keys, tolerant of missing
// or corrupt data, with all keys cleared together on session teardown.
package localfile

import (
	"encoding/json"
	"os"
	"path/filepath"

	"storefront/internal/errors"
)

// Well-known key names. guestCartFile matches the web client's "items"
// local-storage key so a migrating user recognizes the layout.
const (
	guestCartFile = "items.json"
	sessionFile   = "session.json"
)

// readKey loads the raw contents of a key. A missing key returns
// (nil, false, nil).
func readKey(dir, name string) ([]byte, bool, error) {
	raw, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}

		return nil, false, errors.Wrapf(err, "read state key %s", name)
	}

	return raw, true, nil
}

// writeKey overwrites a key atomically: the value lands in a temp file in
// the same directory and is renamed over the old one, so a crash mid-write
// can never leave a half-written key.
func writeKey(dir, name string, value any) error {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return errors.Wrap(err, "create state dir")
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "encode state key %s", name)
	}

	tmp, err := os.CreateTemp(dir, name+".tmp-*")
	if err != nil {
		return errors.Wrap(err, "create temp state file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()

		return errors.Wrapf(err, "write state key %s", name)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "close state key %s", name)
	}

	return errors.Wrapf(os.Rename(tmp.Name(), filepath.Join(dir, name)), "persist state key %s", name)
}

// clearKey removes a key. Clearing an absent key is not an error.
func clearKey(dir, name string) error {
	if err := os.Remove(filepath.Join(dir, name)); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "clear state key %s", name)
	}

	return nil
}
