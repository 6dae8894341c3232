package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChoice(t *testing.T) {
	tests := []struct {
		input   string
		options int
		want    Choice
		wantErr bool
	}{
		{input: "1", options: 3, want: 0},
		{input: " 3 \n", options: 3, want: 2},
		{input: "4", options: 3, wantErr: true},
		{input: "0", options: 3, wantErr: true},
		{input: "-1", options: 3, wantErr: true},
		{input: "", options: 3, wantErr: true},
		{input: "2abc", options: 3, wantErr: true},
		{input: "1", options: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseChoice(tt.input, tt.options)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidChoice)
				var ice *InvalidChoiceError
				require.True(t, errors.As(err, &ice))
				assert.Equal(t, tt.options, ice.Options)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInvalidChoiceError_Message(t *testing.T) {
	assert.Equal(t, `invalid choice "9": enter a number from 1 to 2`, (&InvalidChoiceError{Input: "9", Options: 2}).Error())
	assert.Equal(t, `invalid choice "1": nothing to choose from`, (&InvalidChoiceError{Input: "1"}).Error())
}
