package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStyles_PlainWhenNotTerminal(t *testing.T) {
	s := newStyles(&bytes.Buffer{})
	assert.Equal(t, "Personal Finance Manager", s.title.Render("Personal Finance Manager"))
	assert.Equal(t, "Invalid choice.", s.failure.Render("Invalid choice."))
	assert.Equal(t, primaryColor, s.title.GetForeground())
	assert.Equal(t, errorColor, s.failure.GetForeground())
	assert.Equal(t, subtleColor, s.menu.GetForeground())
}
