package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsProtectedCategory(t *testing.T) {
	for _, c := range DefaultCategories() {
		assert.True(t, IsProtectedCategory(c.ID), "default category %q should be protected", c.Title)
	}
	assert.False(t, IsProtectedCategory("42"))
	assert.False(t, IsProtectedCategory(""))
}

func TestDisplayFor(t *testing.T) {
	categories := DefaultCategories()

	t.Run("known title resolves its identity", func(t *testing.T) {
		icon, color := DisplayFor(categories, "Food")
		assert.Equal(t, "food", icon)
		assert.Equal(t, "#FF6B6B", color)
	})

	t.Run("unknown title gets the neutral fallback", func(t *testing.T) {
		icon, color := DisplayFor(categories, "Cryptozoology")
		assert.Equal(t, FallbackIcon, icon)
		assert.Equal(t, FallbackColor, color)
	})

	t.Run("empty category list still falls back", func(t *testing.T) {
		icon, color := DisplayFor(nil, "Food")
		assert.Equal(t, FallbackIcon, icon)
		assert.Equal(t, FallbackColor, color)
	})
}
