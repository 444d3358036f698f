package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyled_NoColor(t *testing.T) {
	resetFlags()
	noColor = true

	assert.Equal(t, "✓", markChanged())
	assert.Equal(t, "-", markSkipped())
	assert.Equal(t, "Current values:", header("Current values:"))
}

func TestStyled_KeepsText(t *testing.T) {
	resetFlags()
	noColor = false
	defer func() { noColor = true }()

	assert.Contains(t, header("Current values:"), "Current values:")
}
