package condition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInTest(t *testing.T) {
	assert.True(t, InTest())
}

func TestInGoGenerate(t *testing.T) {
	t.Setenv("GOFILE", "")
	t.Setenv("GOPACKAGE", "")
	assert.False(t, InGoGenerate())

	t.Setenv("GOFILE", "syntax.go")
	t.Setenv("GOPACKAGE", "syntax")
	assert.True(t, InGoGenerate())
}
