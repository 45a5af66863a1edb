package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

const diffContextLines = 3

// Diff compares the current content of targetPath against the stripped
// content of one named backup record and returns a unified diff answering
// "what changed since this backup". The backup name must belong to the
// target: it is validated before any content is read, and a mismatch error
// names the backups that do belong to the target. A missing target file is
// compared as empty content. Identical contents yield an empty diff.
func Diff(targetPath, backupName, backupDir string) (string, error) {
	base := filepath.Base(targetPath)

	originalName, _, ok := ParseName(backupName)
	if !ok || originalName != base {
		return "", mismatchError(base, backupName, backupDir)
	}

	raw, readErr := os.ReadFile(filepath.Join(backupDir, backupName))
	if readErr != nil {
		return "", fmt.Errorf("reading backup: %w", readErr)
	}

	if headerName, wrapped := HeaderOriginalName(string(raw)); wrapped && headerName != base {
		return "", mismatchError(base, backupName, backupDir)
	}

	before := StripHeader(string(raw))

	after := ""

	current, targetErr := os.ReadFile(targetPath)
	if targetErr == nil {
		after = string(current)
	} else if !os.IsNotExist(targetErr) {
		return "", fmt.Errorf("reading %s: %w", targetPath, targetErr)
	}

	text, diffErr := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: "a/" + base,
		ToFile:   "b/" + base,
		Context:  diffContextLines,
	})
	if diffErr != nil {
		return "", fmt.Errorf("computing diff: %w", diffErr)
	}

	return text, nil
}

// mismatchError reports a backup that does not belong to the target,
// enumerating the backups that do so the caller can pick one.
func mismatchError(base, backupName, backupDir string) error {
	var candidates []string

	entries, listErr := List(backupDir)
	if listErr == nil {
		for _, entry := range entries {
			originalName, _, _ := ParseName(entry.Name)
			if originalName == base {
				candidates = append(candidates, entry.Name)
			}
		}
	}

	if len(candidates) == 0 {
		return fmt.Errorf("%w: %s is not a backup of %s (no backups recorded for it)",
			ErrBackupMismatch, backupName, base)
	}

	return fmt.Errorf("%w: %s is not a backup of %s (its backups: %s)",
		ErrBackupMismatch, backupName, base, strings.Join(candidates, ", "))
}
