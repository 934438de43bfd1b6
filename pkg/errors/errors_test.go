package errors

import (
	"testing"
)

func TestSentinelMatching(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"NotFound", NewNotFoundError("film", 42), ErrNotFound},
		{"Validation", NewValidationError("title", "", "title is required"), ErrInvalidInput},
		{"Conflict", NewConflictError("director", 3, 2), ErrConflict},
		{"ImportFormat", &ImportFormatError{Missing: []string{"films"}}, ErrBadFormat},
		{"ExternalService", &ExternalServiceError{Service: "omdb", Message: "down"}, ErrServiceUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !Is(tc.err, tc.sentinel) {
				t.Errorf("expected %v to match its sentinel", tc.err)
			}
			if Is(tc.err, New("unrelated")) {
				t.Errorf("%v matched an unrelated error", tc.err)
			}
		})
	}
}

func TestWrappersPreserveCause(t *testing.T) {
	cause := New("disk full")

	t.Run("IO", func(t *testing.T) {
		err := WrapIO("write", "/tmp/films.json", cause)
		if !Is(err, cause) {
			t.Error("expected wrapped cause to be matchable")
		}
		var ioErr *IOError
		if !As(err, &ioErr) || ioErr.Operation != "write" {
			t.Errorf("unexpected wrapped error %v", err)
		}
	})

	t.Run("Parse", func(t *testing.T) {
		err := WrapParse("json", "snapshot", cause)
		if !Is(err, cause) {
			t.Error("expected wrapped cause to be matchable")
		}
	})

	t.Run("NilPassthrough", func(t *testing.T) {
		if WrapIO("write", "/tmp", nil) != nil || WrapParse("json", "x", nil) != nil {
			t.Error("wrapping nil must yield nil")
		}
	})
}

func TestMessages(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{NewNotFoundError("film", 42), "film with ID 42 not found"},
		{NewConflictError("director", 3, 2), "director with ID 3 has 2 dependent film(s)"},
		{&ImportFormatError{Missing: []string{"films", "directors"}}, "snapshot missing required key(s): films, directors"},
		{&ExternalServiceError{Service: "omdb", StatusCode: 429, Message: "quota exceeded"}, "omdb error (status 429): quota exceeded"},
	}
	for _, tc := range cases {
		if got := tc.err.Error(); got != tc.want {
			t.Errorf("got %q, want %q", got, tc.want)
		}
	}
}
