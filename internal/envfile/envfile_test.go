package envfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	kerrors "github.com/PolarWolf314/ctenv/internal/errors"
	"github.com/google/go-cmp/cmp"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Entry
		ok    bool
	}{
		{"Simple", "foo:BUF_SZ=128", Entry{Owner: "foo", Key: "BUF_SZ", Value: "128"}, true},
		{"ValueWithEquals", "foo:KEY=a=b=c", Entry{Owner: "foo", Key: "KEY", Value: "a=b=c"}, true},
		{"ValueWithColon", "foo:URL=http://host:80", Entry{Owner: "foo", Key: "URL", Value: "http://host:80"}, true},
		{"EmptyValue", "foo:KEY=", Entry{Owner: "foo", Key: "KEY", Value: ""}, true},
		{"EmptyOwner", ":KEY=1", Entry{Owner: "", Key: "KEY", Value: "1"}, true},
		{"WhitespacePreserved", " foo : KEY = 1 ", Entry{Owner: " foo ", Key: " KEY ", Value: " 1 "}, true},
		{"EqualsBeforeColon", "a=b:c=d", Entry{Owner: "a=b", Key: "c", Value: "d"}, true},
		{"MissingEquals", "foo:BUF_SZ128", Entry{}, false},
		{"MissingColon", "BUF_SZ=128", Entry{}, false},
		{"EqualsOnlyBeforeColon", "foo=bar:baz", Entry{}, false},
		{"Empty", "", Entry{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseLine(tc.input)
			if ok != tc.ok {
				t.Fatalf("ParseLine(%q) ok = %t, expected %t", tc.input, ok, tc.ok)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("ParseLine(%q) mismatch (-want +got):\n%s", tc.input, diff)
			}
		})
	}
}

func TestIsComment(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"# note", true},
		{"#", true},
		{"#foo:KEY=1", true},
		{"#no delimiters at all", true},
		{" # indented", false},
		{"foo:KEY=#1", false},
		{"", false},
	}

	for _, tc := range tests {
		if got := IsComment(tc.input); got != tc.expected {
			t.Errorf("IsComment(%q) = %t, expected %t", tc.input, got, tc.expected)
		}
	}
}

func collect(t *testing.T, content string) ([]Entry, error) {
	t.Helper()
	var entries []Entry
	err := Scan(strings.NewReader(content), func(entry Entry) error {
		entries = append(entries, entry)
		return nil
	})
	return entries, err
}

func TestScan(t *testing.T) {
	content := "# note\nfoo:BUF_SZ=128\nbar:OTHER=9\r\nfoo:KEY=a=b=c\n"

	entries, err := collect(t, content)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	want := []Entry{
		{Line: 2, Owner: "foo", Key: "BUF_SZ", Value: "128"},
		{Line: 3, Owner: "bar", Key: "OTHER", Value: "9"},
		{Line: 4, Owner: "foo", Key: "KEY", Value: "a=b=c"},
	}
	if diff := cmp.Diff(want, entries); diff != "" {
		t.Errorf("Scan mismatch (-want +got):\n%s", diff)
	}
}

func TestScanNoTrailingNewline(t *testing.T) {
	entries, err := collect(t, "foo:A=1\nfoo:B=2")
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(entries) != 2 || entries[1].Value != "2" {
		t.Errorf("Expected 2 entries ending with B=2, got %+v", entries)
	}
}

func TestScanEmptyInput(t *testing.T) {
	entries, err := collect(t, "")
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no entries, got %+v", entries)
	}
}

func TestScanParseErrors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantLine    int
		wantEntries int
	}{
		{"MissingEqualsFirstLine", "foo:BUF_SZ128\n", 1, 0},
		{"MissingColonAfterEntries", "foo:A=1\n# c\nA=1\nfoo:B=2\n", 3, 1},
		{"BlankLine", "foo:A=1\n\nfoo:B=2\n", 2, 1},
		{"CommentsCountTowardsLineNumbers", "# one\n# two\n# three\nbroken\n", 4, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			entries, err := collect(t, tc.content)

			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("Expected ParseError, got %v", err)
			}
			if parseErr.Line != tc.wantLine {
				t.Errorf("Expected line %d, got %d", tc.wantLine, parseErr.Line)
			}
			if !errors.Is(err, kerrors.ErrMalformedLine) {
				t.Errorf("Expected error to wrap ErrMalformedLine")
			}
			if len(entries) != tc.wantEntries {
				t.Errorf("Expected %d entries before the failure, got %d", tc.wantEntries, len(entries))
			}
		})
	}
}

func TestParseErrorMessage(t *testing.T) {
	err := &ParseError{Line: 7}
	if err.Error() != "parse error at line 7" {
		t.Errorf("Unexpected message %q", err.Error())
	}
}

func TestScanStopsOnCallbackError(t *testing.T) {
	stop := errors.New("stop")
	calls := 0

	err := Scan(strings.NewReader("foo:A=1\nfoo:B=2\nfoo:C=3\n"), func(entry Entry) error {
		calls++
		if entry.Key == "B" {
			return stop
		}
		return nil
	})

	if !errors.Is(err, stop) {
		t.Fatalf("Expected callback error, got %v", err)
	}
	if calls != 2 {
		t.Errorf("Expected 2 callback calls, got %d", calls)
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("foo:BUF_SZ=128\nbar:OTHER=9\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	entries, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	foo := ForOwner(entries, "foo")
	want := []Entry{{Line: 1, Owner: "foo", Key: "BUF_SZ", Value: "128"}}
	if diff := cmp.Diff(want, foo); diff != "" {
		t.Errorf("ForOwner mismatch (-want +got):\n%s", diff)
	}

	if got := ForOwner(entries, "fo"); len(got) != 0 {
		t.Errorf("Expected no partial owner match, got %+v", got)
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), ".env"))
	if !errors.Is(err, kerrors.ErrConfigUnreadable) {
		t.Fatalf("Expected ErrConfigUnreadable, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected underlying cause to be preserved, got %v", err)
	}
}
