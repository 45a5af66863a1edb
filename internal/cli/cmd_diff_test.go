package cli_test

import (
	"testing"

	"mirro/internal/backup"
	"mirro/internal/cli"
)

func TestDiffRequiresFileAndBackup(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stderr := c.MustFail("diff")
	cli.AssertContains(t, stderr, "file path is required")

	stderr = c.MustFail("diff", "t.txt")
	cli.AssertContains(t, stderr, "backup name is required")
}

func TestDiffShowsUnifiedOutput(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	c.WriteFile("t.txt", "line1\nline2\n")

	wrapped := backup.EncodeHeader("t.txt", "2025-01-01 01:02:03 UTC", "line1\nold\n")
	c.WriteBackup("t.txt.orig.20250101T010203", wrapped)

	stdout := c.MustRun("diff", "t.txt", "t.txt.orig.20250101T010203")

	cli.AssertContains(t, stdout, "--- a/t.txt")
	cli.AssertContains(t, stdout, "+++ b/t.txt")
	cli.AssertContains(t, stdout, "-old")
	cli.AssertContains(t, stdout, "+line2")
}

func TestDiffIdenticalContentsPrintsNothing(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	c.WriteFile("t.txt", "same\n")

	wrapped := backup.EncodeHeader("t.txt", "2025-01-01 01:02:03 UTC", "same\n")
	c.WriteBackup("t.txt.orig.20250101T010203", wrapped)

	stdout := c.MustRun("diff", "t.txt", "t.txt.orig.20250101T010203")
	if stdout != "" {
		t.Errorf("expected empty output, got:\n%s", stdout)
	}
}

func TestDiffMismatchListsCandidates(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	c.WriteFile("t.txt", "content\n")
	c.WriteBackup("t.txt.orig.20250101T010203", "mine\n")
	c.WriteBackup("other.txt.orig.20250101T010203", "theirs\n")

	stderr := c.MustFail("diff", "t.txt", "other.txt.orig.20250101T010203")
	cli.AssertContains(t, stderr, "backup does not match file")
	cli.AssertContains(t, stderr, "its backups: t.txt.orig.20250101T010203")
}
