package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		minor int64
		want  string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{100, "1.00"},
		{2550, "25.50"},
		{10500, "105.00"},
		{-2550, "-25.50"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatMoney(tc.minor))
	}
}
