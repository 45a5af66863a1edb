package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/natefinch/atomic"
)

// File permissions for backup records and the backup directory.
const (
	dirPerms  = 0o750
	filePerms = 0o600
)

// Create writes one backup record for targetPath holding originalContent,
// creating backupDir as needed. Returns the path of the written record.
// Every call writes exactly one new file; change detection is the caller's
// job. If two records for the same file land in the same second, the newer
// write wins on disk.
func Create(targetPath, originalContent, backupDir string) (string, error) {
	mkdirErr := os.MkdirAll(backupDir, dirPerms)
	if mkdirErr != nil {
		return "", fmt.Errorf("creating backup directory: %w", mkdirErr)
	}

	now := time.Now().UTC()
	base := filepath.Base(targetPath)
	path := filepath.Join(backupDir, MakeName(base, now.Format(timestampCompact)))

	content := EncodeHeader(base, now.Format(timestampDisplay), originalContent)

	writeErr := atomic.WriteFile(path, strings.NewReader(content))
	if writeErr != nil {
		return "", fmt.Errorf("writing backup file: %w", writeErr)
	}

	// atomic.WriteFile doesn't set permissions for new files.
	chmodErr := os.Chmod(path, filePerms)
	if chmodErr != nil {
		return "", fmt.Errorf("setting backup permissions: %w", chmodErr)
	}

	return path, nil
}

// Entry is one recognized backup record as observed at listing time.
type Entry struct {
	Name    string
	ModTime time.Time
}

// CapturedAt returns the display timestamp for the record.
func (e Entry) CapturedAt() string {
	return e.ModTime.UTC().Format(timestampDisplay)
}

// List returns the recognized backup records in backupDir, oldest first by
// modification time with the name as tiebreak. A missing or empty directory
// yields an empty list, not an error. Files whose name does not parse as a
// backup are ignored.
func List(backupDir string) ([]Entry, error) {
	dirEntries, readErr := os.ReadDir(backupDir)
	if readErr != nil {
		if os.IsNotExist(readErr) {
			return []Entry{}, nil
		}

		return nil, fmt.Errorf("reading backup directory: %w", readErr)
	}

	entries := make([]Entry, 0, len(dirEntries))

	for _, dirEntry := range dirEntries {
		if dirEntry.IsDir() {
			continue
		}

		if _, _, ok := ParseName(dirEntry.Name()); !ok {
			continue
		}

		info, infoErr := dirEntry.Info()
		if infoErr != nil {
			return nil, fmt.Errorf("reading backup directory: %w", infoErr)
		}

		entries = append(entries, Entry{Name: dirEntry.Name(), ModTime: info.ModTime()})
	}

	slices.SortFunc(entries, func(a, b Entry) int {
		if cmp := a.ModTime.Compare(b.ModTime); cmp != 0 {
			return cmp
		}

		return strings.Compare(a.Name, b.Name)
	})

	return entries, nil
}

// RestoreLast overwrites targetPath with the stripped content of its most
// recent backup record and returns that record's name. "Most recent" is the
// greatest modification time among records whose parsed original name
// matches targetPath's base name, with the name as deterministic tiebreak.
// Records whose embedded header name disagrees with their file name are not
// trusted and are skipped; a record without a header (stripped manually) is
// restored as-is.
func RestoreLast(targetPath, backupDir string) (string, error) {
	_, statErr := os.Stat(backupDir)
	if statErr != nil {
		if os.IsNotExist(statErr) {
			return "", fmt.Errorf("%w: %s", ErrNoBackupDirectory, backupDir)
		}

		return "", fmt.Errorf("checking backup directory: %w", statErr)
	}

	base := filepath.Base(targetPath)

	entries, listErr := List(backupDir)
	if listErr != nil {
		return "", listErr
	}

	matches := make([]Entry, 0, len(entries))

	for _, entry := range entries {
		originalName, _, _ := ParseName(entry.Name)
		if originalName == base {
			matches = append(matches, entry)
		}
	}

	// List is sorted ascending, so walk candidates newest-first.
	for idx := len(matches) - 1; idx >= 0; idx-- {
		name := matches[idx].Name

		raw, readErr := os.ReadFile(filepath.Join(backupDir, name))
		if readErr != nil {
			return "", fmt.Errorf("reading backup: %w", readErr)
		}

		if headerName, wrapped := HeaderOriginalName(string(raw)); wrapped && headerName != base {
			continue
		}

		restored := StripHeader(string(raw))

		writeErr := atomic.WriteFile(targetPath, strings.NewReader(restored))
		if writeErr != nil {
			return "", fmt.Errorf("restoring %s: %w", targetPath, writeErr)
		}

		return name, nil
	}

	return "", fmt.Errorf("%w for %s in %s", ErrNoBackupsFound, base, backupDir)
}
