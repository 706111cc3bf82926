package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"mflix/errs"
)

func TestError_Error(t *testing.T) {
	err := &errs.Error{Code: errs.EINVALID, Message: "must specify cast members to filter by"}

	assert.Equal(t, "application error: code=invalid message=must specify cast members to filter by", err.Error())
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil error", err: nil, expected: ""},
		{name: "invalid", err: errs.Errorf(errs.EINVALID, "invalid movie id"), expected: errs.EINVALID},
		{name: "not found", err: errs.Errorf(errs.ENOTFOUND, "Not found"), expected: errs.ENOTFOUND},
		{name: "not implemented", err: errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured"), expected: errs.ENOTIMPLEMENTED},
		{name: "plain error is internal", err: errors.New("connection reset"), expected: errs.EINTERNAL},
		{name: "wrapped application error", err: fmt.Errorf("lookup: %w", errs.Errorf(errs.ENOTFOUND, "Not found")), expected: errs.ENOTFOUND},
		{name: "joined application error", err: errors.Join(errs.Errorf(errs.EINVALID, "bad page")), expected: errs.EINVALID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errs.ErrorCode(tt.err))
		})
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil error", err: nil, expected: ""},
		{name: "application error", err: errs.Errorf(errs.EINVALID, "Results too large, be more restrictive in filter"), expected: "Results too large, be more restrictive in filter"},
		{name: "plain error is hidden", err: errors.New("server selection timeout"), expected: "Internal error."},
		{name: "wrapped application error", err: fmt.Errorf("get movie: %w", errs.Errorf(errs.ENOTFOUND, "Not found")), expected: "Not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errs.ErrorMessage(tt.err))
		})
	}
}

func TestErrorf(t *testing.T) {
	err := errs.Errorf(errs.EINVALID, "page %d is out of range", -1)

	assert.Equal(t, errs.EINVALID, err.Code)
	assert.Equal(t, "page -1 is out of range", err.Message)
}

func TestErrorCodes(t *testing.T) {
	expected := map[string]string{
		errs.ECONFLICT:       "conflict",
		errs.EINTERNAL:       "internal",
		errs.EINVALID:        "invalid",
		errs.ENOTFOUND:       "not_found",
		errs.ENOTIMPLEMENTED: "not_implemented",
		errs.EUNAUTHORIZED:   "unauthorized",
	}

	for got, want := range expected {
		assert.Equal(t, want, got)
	}
}
