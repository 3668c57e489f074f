//    LDASongServer
//    Copyright: C. D. Lopez 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTitleVariants(t *testing.T) {
	// titles that differ only in case, accents, or surrounding whitespace must collide
	variants := [][2]string{
		{"  Whenever, Wherever ", "whenever, wherever"},
		{"Día de Enero", "dia de enero"},
		{"DÍA DE ENERO", "  día de enero\t"},
		{"Ojos Así", "ojos asi"},
		{"La Tortura", "LA TORTURA"},
		{"Inevitable", "Inevitable"},
	}

	for _, v := range variants {
		assert.Equal(t, NormalizeTitle(v[0]), NormalizeTitle(v[1]), "%q vs %q", v[0], v[1])
	}
}

func TestNormalizeTitleIdempotent(t *testing.T) {
	titles := []string{
		"  Whenever, Wherever ",
		"Día de Enero",
		"Estoy Aquí",
		"",
		"   ",
		"1968",
	}

	for _, s := range titles {
		once := NormalizeTitle(s)
		assert.Equal(t, once, NormalizeTitle(once), "normalize is not idempotent for %q", s)
	}
}

func TestNormalizeTitleStripsMarksOnly(t *testing.T) {
	// base letters survive; only the combining marks go
	assert.Equal(t, "cancion", NormalizeTitle("Canción"))
	assert.Equal(t, "corazon", NormalizeTitle("  CORAZÓN"))
	// punctuation and digits pass through untouched
	assert.Equal(t, "hips don't lie", NormalizeTitle("Hips Don't Lie"))
}
