package language

import (
	"testing"

	"github.com/pemistahl/lingua-go"
	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	d := NewDetector(lingua.English, lingua.Spanish)

	assert.Equal(t, "es", d.Detect("El perro come en la cocina todos los días por la mañana."))
	assert.Equal(t, "en", d.Detect("The dog eats in the kitchen every single morning."))
}

func TestDetect_EmptyText(t *testing.T) {
	d := NewDetector(lingua.English, lingua.Spanish)

	assert.Equal(t, "", d.Detect(""))
	assert.Equal(t, "", d.Detect("   \n "))
}

func TestDetect_NilDetector(t *testing.T) {
	var d *Detector

	assert.Equal(t, "", d.Detect("The dog eats."))
}
