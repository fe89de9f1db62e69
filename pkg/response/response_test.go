package response

import (
	"testing"

	bizerrors "github.com/skulk0156/EMS-backend/pkg/errors"
)

func TestErrorToHTTPStatus(t *testing.T) {
	cases := []struct {
		code string
		want int
	}{
		{bizerrors.AttendanceAlreadyMarked.Code, 400},
		{bizerrors.MissingRequiredFields.Code, 400},
		{bizerrors.InvalidCredentials.Code, 401},
		{bizerrors.Unauthorized.Code, 401},
		{bizerrors.Forbidden.Code, 403},
		{bizerrors.InvalidEmployee.Code, 404},
		{bizerrors.AttendanceNotFound.Code, 404},
		{bizerrors.UserNotFound.Code, 404},
		{bizerrors.TooManyRequests.Code, 429},
		{"SOMETHING_ELSE", 500},
	}

	for _, tc := range cases {
		if got := errorToHTTPStatus(tc.code); got != tc.want {
			t.Errorf("errorToHTTPStatus(%s) = %d, want %d", tc.code, got, tc.want)
		}
	}
}
