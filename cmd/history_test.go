package cmd

import (
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestFitCell(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"pads short names", "Ada", "Ada" + "             "},
		{"keeps exact width", "Grace Hopper1234", "Grace Hopper1234"},
		{"truncates long ascii", "Ada Lovelace Byron King", "Ada Lovelace ..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fitCell(tt.in, 16))
		})
	}
}

func TestFitCell_MultiByteNames(t *testing.T) {
	for _, name := range []string{
		"Zoë Ångström-Ødegård Sørensen",
		"李小龍李小龍李小龍李小龍",
		"Ólafur Þórðarson",
	} {
		got := fitCell(name, 16)
		assert.True(t, utf8.ValidString(got), "%q produced invalid UTF-8", name)
		assert.Equal(t, 16, ansi.StringWidth(got), "%q cell width", name)
	}
}
