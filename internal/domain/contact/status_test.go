package contact

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		from, to Status
		ok       bool
	}{
		{StatusNew, StatusRead, true},
		{StatusRead, StatusReplied, true},
		{StatusNew, StatusReplied, false},
		{StatusRead, StatusNew, false},
		{StatusReplied, StatusNew, false},
		{StatusReplied, StatusRead, false},
		{StatusRead, StatusRead, false},
		{StatusNew, Status("archived"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			err := Transition(tt.from, tt.to)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, ErrInvalidTransition), "got %v", err)
		})
	}
}

func TestStatus_NextNeverReturnsNew(t *testing.T) {
	for _, s := range []Status{StatusNew, StatusRead, StatusReplied} {
		if n, ok := s.Next(); ok {
			assert.NotEqual(t, StatusNew, n)
		}
	}
	_, ok := StatusReplied.Next()
	assert.False(t, ok)
}
