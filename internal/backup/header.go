package backup

import "strings"

// headerRule is the delimiter line that opens and closes a backup header.
const headerRule = "-----------------------------------------------------"

// headerMarker identifies files written by mirro.
const headerMarker = "mirro backup"

const (
	headerFilePrefix = "Original file: "
	headerTimePrefix = "Timestamp: "
	headerNote       = "Delete this header if you want to restore the file manually"
)

// headerLineCount is the fixed number of lines before the body: two rule
// lines, four metadata lines, and the separating blank line.
const headerLineCount = 7

// EncodeHeader wraps body in the mirro backup header. The body is stored
// verbatim after a blank line so StripHeader can recover it byte-for-byte.
func EncodeHeader(originalName, timestampDisplay, body string) string {
	var builder strings.Builder

	builder.WriteString(headerRule + "\n")
	builder.WriteString(headerMarker + "\n")
	builder.WriteString(headerFilePrefix + originalName + "\n")
	builder.WriteString(headerTimePrefix + timestampDisplay + "\n")
	builder.WriteString(headerNote + "\n")
	builder.WriteString(headerRule + "\n")
	builder.WriteString("\n")
	builder.WriteString(body)

	return builder.String()
}

// StripHeader removes the backup header and returns the original content.
// Text that does not start with a well-formed header is returned unchanged,
// including files whose first line is an interpreter directive (#!): such a
// line is never the rule line, so script files are left untouched.
func StripHeader(text string) string {
	_, body, ok := splitHeader(text)
	if !ok {
		return text
	}

	return body
}

// HeaderOriginalName extracts the original file name recorded in the header.
// Reports false when the text is not header-wrapped.
func HeaderOriginalName(text string) (string, bool) {
	lines, _, ok := splitHeader(text)
	if !ok {
		return "", false
	}

	return strings.TrimPrefix(lines[2], headerFilePrefix), true
}

// splitHeader matches the fixed header grammar: rule, marker, original-file
// line, timestamp line, instruction line, rule, blank line, body.
func splitHeader(text string) ([]string, string, bool) {
	parts := strings.SplitN(text, "\n", headerLineCount+1)
	if len(parts) != headerLineCount+1 {
		return nil, "", false
	}

	if parts[0] != headerRule || parts[5] != headerRule {
		return nil, "", false
	}

	if parts[1] != headerMarker {
		return nil, "", false
	}

	if !strings.HasPrefix(parts[2], headerFilePrefix) {
		return nil, "", false
	}

	if !strings.HasPrefix(parts[3], headerTimePrefix) {
		return nil, "", false
	}

	if parts[6] != "" {
		return nil, "", false
	}

	return parts[:headerLineCount], parts[headerLineCount], true
}
