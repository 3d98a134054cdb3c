package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Status_Precedence(t *testing.T) {
	tests := []struct {
		status     Status
		precedence int
	}{
		{StatusError, 2},
		{StatusFail, 1},
		{StatusPass, 0},
		{Status("unknown"), -1},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.precedence, tt.status.Precedence())
		})
	}

	assert.True(t, StatusError.Precedence() > StatusFail.Precedence())
	assert.True(t, StatusFail.Precedence() > StatusPass.Precedence())
}

func Test_Status_IsFailure(t *testing.T) {
	assert.True(t, StatusFail.IsFailure())
	assert.True(t, StatusError.IsFailure())
	assert.False(t, StatusPass.IsFailure())
}

func Test_Status_IsSuccess(t *testing.T) {
	assert.True(t, StatusPass.IsSuccess())
	assert.False(t, StatusFail.IsSuccess())
	assert.False(t, StatusError.IsSuccess())
}

func Test_Status_Validate(t *testing.T) {
	for _, s := range []Status{StatusPass, StatusFail, StatusError} {
		t.Run(string(s), func(t *testing.T) {
			assert.NoError(t, s.Validate())
		})
	}

	assert.Error(t, Status("skipped").Validate())
	assert.Error(t, Status("").Validate())
}
