package util

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

func TestDomainErrorMessages(t *testing.T) {
	err := NewSlotTaken("пр. Соколова, 62", "10:30")
	var derr *DomainError
	require.True(t, errors.As(err, &derr))
	require.Equal(t, "SLOT_TAKEN", derr.Code)
	require.Equal(t, http.StatusConflict, derr.HTTPStatus)
	require.Contains(t, derr.Message, "пр. Соколова, 62")
	require.Contains(t, derr.Message, "10:30")

	err = NewOutOfHours("05:00")
	require.True(t, errors.As(err, &derr))
	require.Equal(t, "OUT_OF_HOURS", derr.Code)
	require.Equal(t, http.StatusBadRequest, derr.HTTPStatus)
	require.Contains(t, derr.Message, "05:00")

	err = NewAccessDenied(42)
	require.True(t, errors.As(err, &derr))
	require.Equal(t, "ACCESS_DENIED", derr.Code)
	require.Equal(t, http.StatusForbidden, derr.HTTPStatus)
	require.Contains(t, derr.Message, "42")
}

func TestToDomainErrorPassthrough(t *testing.T) {
	orig := NewUserNotFound("ivan")
	mapped := ToDomainError(orig)
	require.Equal(t, "USER_NOT_FOUND", mapped.Code)
	require.Equal(t, http.StatusNotFound, mapped.HTTPStatus)
}

func TestToDomainErrorNoRows(t *testing.T) {
	mapped := ToDomainError(pgx.ErrNoRows)
	require.Equal(t, "NOT_FOUND", mapped.Code)
}

func TestToDomainErrorUnknown(t *testing.T) {
	mapped := ToDomainError(errors.New("boom"))
	require.Equal(t, "INTERNAL_ERROR", mapped.Code)
	require.Equal(t, http.StatusInternalServerError, mapped.HTTPStatus)
}
