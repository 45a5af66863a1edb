package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// DefaultPruneDays is the prune age used when no amount is configured.
const DefaultPruneDays = 30

// Policy selects which files Prune removes.
type Policy struct {
	// All removes every file in the backup directory.
	All bool
	// Days removes files whose modification time is more than this many
	// days before now. Ignored when All is set.
	Days int
}

// ParsePolicy interprets a prune amount argument: the literal "all" or a
// non-negative number of days.
func ParsePolicy(value string) (Policy, error) {
	if value == "all" {
		return Policy{All: true}, nil
	}

	days, convErr := strconv.Atoi(value)
	if convErr != nil || days < 0 {
		return Policy{}, fmt.Errorf("%w: %q (want \"all\" or a non-negative number of days)", ErrInvalidPolicyValue, value)
	}

	return Policy{Days: days}, nil
}

// DefaultPolicy builds the policy used when no amount is given on the
// command line. The configured value comes from the caller (environment or
// config file); the store never reads the environment itself. An empty
// value falls back to DefaultPruneDays; anything that is not a non-negative
// integer is an error and nothing is removed.
func DefaultPolicy(configured string) (Policy, error) {
	if configured == "" {
		return Policy{Days: DefaultPruneDays}, nil
	}

	days, convErr := strconv.Atoi(configured)
	if convErr != nil || days < 0 {
		return Policy{}, fmt.Errorf("%w: %q (want a non-negative number of days)", ErrInvalidPolicyValue, configured)
	}

	return Policy{Days: days}, nil
}

// Prune removes files from backupDir per policy and returns the number of
// files actually removed. Matching zero files is not an error, and a
// missing directory removes nothing. Unlike List, Prune considers every
// regular file in the directory, recognized backup or not.
func Prune(backupDir string, policy Policy) (int, error) {
	dirEntries, readErr := os.ReadDir(backupDir)
	if readErr != nil {
		if os.IsNotExist(readErr) {
			return 0, nil
		}

		return 0, fmt.Errorf("reading backup directory: %w", readErr)
	}

	cutoff := time.Now().Add(-time.Duration(policy.Days) * 24 * time.Hour)

	removed := 0

	for _, dirEntry := range dirEntries {
		if dirEntry.IsDir() {
			continue
		}

		if !policy.All {
			info, infoErr := dirEntry.Info()
			if infoErr != nil {
				return removed, fmt.Errorf("reading backup directory: %w", infoErr)
			}

			if !info.ModTime().Before(cutoff) {
				continue
			}
		}

		removeErr := os.Remove(filepath.Join(backupDir, dirEntry.Name()))
		if removeErr != nil {
			return removed, fmt.Errorf("removing backup: %w", removeErr)
		}

		removed++
	}

	return removed, nil
}
