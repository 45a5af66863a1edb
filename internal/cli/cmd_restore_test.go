package cli_test

import (
	"testing"

	"mirro/internal/backup"
	"mirro/internal/cli"
)

func TestRestoreRequiresFile(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stderr := c.MustFail("restore")
	cli.AssertContains(t, stderr, "file path is required")
}

func TestRestoreNoBackupDirectory(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stderr := c.MustFail("restore", "t.txt")
	cli.AssertContains(t, stderr, "no backup directory")
}

func TestRestoreNoMatchingBackups(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteBackup("other.txt.orig.20250101T000000", "theirs")

	stderr := c.MustFail("restore", "t.txt")
	cli.AssertContains(t, stderr, "no backups found for t.txt")
}

func TestRestoreOverwritesTargetAndKeepsRecord(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	c.WriteFile("t.txt", "current\n")

	wrapped := backup.EncodeHeader("t.txt", "2025-01-01 00:00:00 UTC", "original\n")
	c.WriteBackup("t.txt.orig.20250101T000000", wrapped)

	stdout := c.MustRun("restore", "t.txt")
	cli.AssertContains(t, stdout, "restored t.txt from t.txt.orig.20250101T000000")

	if got := c.ReadFile("t.txt"); got != "original\n" {
		t.Errorf("restored content = %q, want %q", got, "original\n")
	}

	// Restoring again proves the record survived the first restore.
	c.MustRun("restore", "t.txt")
}
