package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestKinds(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		kind   error
		status int
		msg    string
	}{
		{
			name:   "validation",
			err:    Validation("Name is required"),
			kind:   ErrValidation,
			status: http.StatusBadRequest,
			msg:    "Name is required",
		},
		{
			name:   "formatted validation",
			err:    Validationf("day %d is outside the challenge", 31),
			kind:   ErrValidation,
			status: http.StatusBadRequest,
			msg:    "day 31 is outside the challenge",
		},
		{
			name:   "not found",
			err:    NotFound("Share not found"),
			kind:   ErrNotFound,
			status: http.StatusNotFound,
			msg:    "Share not found",
		},
		{
			name:   "transient",
			err:    Transient("save progress", errors.New("connection refused")),
			kind:   ErrTransient,
			status: http.StatusInternalServerError,
			msg:    "save progress: connection refused",
		},
		{
			name:   "wrapped validation keeps its kind",
			err:    fmt.Errorf("register: %w", Validation("Name is required")),
			kind:   ErrValidation,
			status: http.StatusBadRequest,
			msg:    "register: Name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.kind) {
				t.Errorf("errors.Is(%v, %v) = false", tt.err, tt.kind)
			}
			if got := HTTPStatus(tt.err); got != tt.status {
				t.Errorf("HTTPStatus() = %d, want %d", got, tt.status)
			}
			if got := tt.err.Error(); got != tt.msg {
				t.Errorf("Error() = %q, want %q", got, tt.msg)
			}
		})
	}
}

func TestTransientNil(t *testing.T) {
	if err := Transient("noop", nil); err != nil {
		t.Errorf("Transient(nil) = %v, want nil", err)
	}
}

func TestTransientUnwrap(t *testing.T) {
	cause := errors.New("dial tcp: timeout")
	err := Transient("get leaderboard", cause)
	if !errors.Is(err, cause) {
		t.Error("Transient error should unwrap to its cause")
	}
	if errors.Is(err, ErrValidation) || errors.Is(err, ErrNotFound) {
		t.Error("Transient error matched the wrong kind")
	}
}

func TestFromHTTPStatus(t *testing.T) {
	tests := []struct {
		status int
		kind   error
	}{
		{http.StatusBadRequest, ErrValidation},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusInternalServerError, ErrTransient},
		{http.StatusBadGateway, ErrTransient},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			err := FromHTTPStatus(tt.status, "boom")
			if !errors.Is(err, tt.kind) {
				t.Errorf("FromHTTPStatus(%d) = %v, want kind %v", tt.status, err, tt.kind)
			}
		})
	}

	if err := FromHTTPStatus(http.StatusOK, ""); err != nil {
		t.Errorf("FromHTTPStatus(200) = %v, want nil", err)
	}
}

func TestPublicMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"validation", Validation("Name is required"), "Name is required"},
		{"not found", NotFound("Share not found"), "Share not found"},
		{"transient hides cause", Transient("Failed to save progress", errors.New("disk I/O error")), "Failed to save progress"},
		{"wrapped", fmt.Errorf("register: %w", Validation("bad")), "bad"},
		{"plain", errors.New("secret detail"), "Internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PublicMessage(tt.err); got != tt.want {
				t.Errorf("PublicMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
