package envfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	kerrors "github.com/PolarWolf314/ctenv/internal/errors"
)

// CommentPrefix marks a line that carries no entry.
const CommentPrefix = "#"

// maxLineSize bounds a single line of the shared configuration file.
const maxLineSize = 1024 * 1024

// Entry is one owner:key=value line of the shared configuration file.
type Entry struct {
	// Line is the 1-based line number the entry was read from.
	Line int

	// Owner is the package the entry is meant for.
	Owner string

	// Key names the artifact file.
	Key string

	// Value is written to the artifact verbatim.
	Value string
}

// ParseError reports a line that is neither a comment nor a valid entry.
type ParseError struct {
	Line int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d", e.Line)
}

func (e *ParseError) Unwrap() error {
	return kerrors.ErrMalformedLine
}

// IsComment reports whether line is a comment line.
func IsComment(line string) bool {
	return strings.HasPrefix(line, CommentPrefix)
}

// ParseLine splits line into owner, key and value. The owner ends at the first
// ':' and the key at the first '=' after it; the value keeps any further '='.
// It returns false if either delimiter is missing. The returned entry has no
// line number.
func ParseLine(line string) (Entry, bool) {
	owner, keyValue, ok := strings.Cut(line, ":")
	if !ok {
		return Entry{}, false
	}

	key, value, ok := strings.Cut(keyValue, "=")
	if !ok {
		return Entry{}, false
	}

	return Entry{Owner: owner, Key: key, Value: value}, true
}

// Scan reads r line by line and calls fn for every entry in file order.
// Comment lines are skipped. Scanning stops at the first malformed line,
// returning a *ParseError, or at the first error returned by fn.
func Scan(r io.Reader, fn func(Entry) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()

		if IsComment(line) {
			continue
		}

		entry, ok := ParseLine(line)
		if !ok {
			return &ParseError{Line: lineNumber}
		}
		entry.Line = lineNumber

		if err := fn(entry); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading line %d: %w: %w", lineNumber+1, kerrors.ErrConfigUnreadable, err)
	}
	return nil
}

// ReadFile parses the whole file at path and returns every entry.
func ReadFile(path string) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w: %w", path, kerrors.ErrConfigUnreadable, err)
	}
	defer file.Close()

	var entries []Entry
	err = Scan(file, func(entry Entry) error {
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// ForOwner returns the entries whose owner equals owner exactly.
func ForOwner(entries []Entry, owner string) []Entry {
	var matched []Entry
	for _, entry := range entries {
		if entry.Owner == owner {
			matched = append(matched, entry)
		}
	}
	return matched
}
