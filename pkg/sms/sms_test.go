package sms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToE164(t *testing.T) {
	tests := []struct {
		in   string
		want string
		err  bool
	}{
		{in: "8766476895", want: "+918766476895"},
		{in: "08766476895", want: "+918766476895"},
		{in: "+91 87664 76895", want: "+918766476895"},
		{in: "0044 20 7946 0958", want: "+442079460958"},
		{in: "+1 (415) 555-0100", want: "+14155550100"},
		{in: "12345", err: true},
		{in: "", err: true},
	}

	for _, tt := range tests {
		got, err := ToE164(tt.in, "+91")
		if tt.err {
			assert.ErrorIs(t, err, ErrInvalidNumber, tt.in)
			continue
		}
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
