package store

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToggleIsItsOwnInverse(t *testing.T) {
	s := NewFavoritesStore()

	require.False(t, s.Contains("u1", "1"))

	require.True(t, s.Toggle("u1", "1"))
	require.True(t, s.Contains("u1", "1"))

	require.False(t, s.Toggle("u1", "1"))
	require.False(t, s.Contains("u1", "1"))
}

func TestFavoritesAreIsolatedPerUser(t *testing.T) {
	s := NewFavoritesStore()

	s.Toggle("u1", "1")
	require.True(t, s.Contains("u1", "1"))
	require.False(t, s.Contains("u2", "1"))
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	s := NewFavoritesStore()

	s.Remove("u1", "1")
	require.False(t, s.Contains("u1", "1"))

	s.Toggle("u1", "1")
	s.Remove("u1", "1")
	require.False(t, s.Contains("u1", "1"))
	require.Empty(t, s.List("u1"))
}
