package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCanonicalizesVariants(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
	}{
		{"diacritics and punctuation", "Bogotá, D.C.", "BOGOTA DC"},
		{"case folding", "café", "CAFE"},
		{"whitespace runs", "  Cédula   de\tCiudadanía ", "cedula de ciudadania"},
		{"trailing period", "Medellin.", "medellin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, Normalize(tt.a), Normalize(tt.b))
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{
		"Bogotá, D.C.",
		"CÉDULA DE CIUDADANÍA",
		"  mixed   Case, with. punctuation  ",
		"",
		"ñandú",
	}
	for _, s := range inputs {
		once := Normalize(s)
		assert.Equal(t, once, Normalize(once), "input %q", s)
	}
}

func TestNormalizeOutput(t *testing.T) {
	assert.Equal(t, "BOGOTA DC", Normalize("Bogotá, D.C."))
	assert.Equal(t, "NANDU", Normalize("ñandú"))
	assert.Equal(t, "", Normalize("   "))
}
