package backup

import "testing"

func TestMakeNameParseNameRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		originalName string
		timestamp    string
	}{
		{"t.txt", "20250101T010203"},
		{"a.b.c", "20230102T030405"},
		{"no-extension", "20240615T120000"},
		{"with space.txt", "20240101T000000"},
	}

	for _, testCase := range tests {
		t.Run(testCase.originalName, func(t *testing.T) {
			t.Parallel()

			name := MakeName(testCase.originalName, testCase.timestamp)

			gotOriginal, gotTimestamp, ok := ParseName(name)
			if !ok {
				t.Fatalf("ParseName(%q) not recognized", name)
			}

			if gotOriginal != testCase.originalName || gotTimestamp != testCase.timestamp {
				t.Errorf("ParseName(%q) = (%q, %q), want (%q, %q)",
					name, gotOriginal, gotTimestamp, testCase.originalName, testCase.timestamp)
			}
		})
	}
}

func TestParseNameTrailingSuffix(t *testing.T) {
	t.Parallel()

	originalName, timestamp, ok := ParseName("t.txt.orig.20230102T030405.bak")
	if !ok {
		t.Fatal("name with trailing suffix should be recognized")
	}

	if originalName != "t.txt" || timestamp != "20230102T030405" {
		t.Errorf("got (%q, %q), want (\"t.txt\", \"20230102T030405\")", originalName, timestamp)
	}
}

func TestParseNameNotABackup(t *testing.T) {
	t.Parallel()

	tests := []string{
		"notes.md",
		"t.txt.bak",
		"x.orig.",
		".orig.20230102T030405",
		"",
	}

	for _, fileName := range tests {
		t.Run(fileName, func(t *testing.T) {
			t.Parallel()

			if _, _, ok := ParseName(fileName); ok {
				t.Errorf("ParseName(%q) recognized, want ignored", fileName)
			}
		})
	}
}
