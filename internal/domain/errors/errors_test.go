package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	e := NewAppError(http.StatusTeapot, "X", "message only", nil)
	require.Equal(t, "message only", e.Error())

	wrapped := NewAppError(http.StatusTeapot, "X", "outer", errors.New("inner"))
	require.Equal(t, "inner", wrapped.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	e := DuplicateEmail("taken")
	require.ErrorIs(t, e, ErrDuplicateEmail)
}

func TestConstructors_StatusAndCode(t *testing.T) {
	cases := []struct {
		err    *AppError
		status int
		code   string
	}{
		{NotFound("x"), http.StatusNotFound, CodeNotFound},
		{BadRequest("x"), http.StatusBadRequest, CodeValidationFailed},
		{Unauthenticated("x"), http.StatusUnauthorized, CodeUnauthenticated},
		{Unauthorized("x"), http.StatusForbidden, CodeUnauthorized},
		{DuplicateEmail("x"), http.StatusConflict, CodeDuplicateEmail},
		{KycNotVerified("x"), http.StatusForbidden, CodeKycNotVerified},
		{AlreadyDecided("x"), http.StatusConflict, CodeAlreadyDecided},
		{InvalidTarget("x"), http.StatusBadRequest, CodeInvalidTarget},
		{RenderError(errors.New("boom")), http.StatusInternalServerError, CodeRenderError},
		{InternalError(errors.New("boom")), http.StatusInternalServerError, CodeInternal},
	}
	for _, tc := range cases {
		require.Equal(t, tc.status, tc.err.Status, tc.code)
		require.Equal(t, tc.code, tc.err.Code)
	}
}
