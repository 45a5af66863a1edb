package backup

import "strings"

// nameMarker separates the original file name from the capture timestamp
// in a backup file name.
const nameMarker = ".orig."

// Timestamp layouts. The compact form has no separators so backup names
// sort lexicographically in capture order for a fixed original name.
const (
	timestampCompact = "20060102T150405"
	timestampDisplay = "2006-01-02 15:04:05 MST"
)

// MakeName derives the backup file name for originalName captured at the
// given compact UTC timestamp.
func MakeName(originalName, timestamp string) string {
	return originalName + nameMarker + timestamp
}

// ParseName splits a backup file name into the original file name and the
// capture timestamp. A single trailing dot-suffix after the timestamp is
// tolerated. Reports false for names without the marker; such files are
// not backups and are ignored by list and restore.
func ParseName(fileName string) (string, string, bool) {
	originalName, rest, found := strings.Cut(fileName, nameMarker)
	if !found || originalName == "" {
		return "", "", false
	}

	timestamp := rest
	if idx := strings.IndexByte(rest, '.'); idx >= 0 {
		timestamp = rest[:idx]
	}

	if timestamp == "" {
		return "", "", false
	}

	return originalName, timestamp, true
}
