package apperr

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapKeepsSentinel(t *testing.T) {
	err := Wrap(ErrConflict, "user already exists")
	assert.True(t, errors.Is(err, ErrConflict))
	assert.Equal(t, "user already exists: already exists", err.Error())
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{ErrNotFound, http.StatusNotFound},
		{ErrConflict, http.StatusBadRequest},
		{ErrInvalidCredentials, http.StatusBadRequest},
		{ErrInvalidSignature, http.StatusBadRequest},
		{ErrValidation, http.StatusBadRequest},
		{ErrUpstream, http.StatusInternalServerError},
		{errors.New("anything else"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, HTTPStatus(Wrap(tc.err, "ctx")), tc.err.Error())
	}
}
