package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPortDefault(t *testing.T) {
	t.Setenv("PORT", "")
	require.Equal(t, "8080", Port())

	t.Setenv("PORT", "9090")
	require.Equal(t, "9090", Port())
}

func TestProcessingDelayDefault(t *testing.T) {
	t.Setenv("CHECKOUT_PROCESSING_DELAY", "")
	require.Equal(t, 2*time.Second, ProcessingDelay())

	t.Setenv("CHECKOUT_PROCESSING_DELAY", "50ms")
	require.Equal(t, 50*time.Millisecond, ProcessingDelay())

	// Valeur invalide : retour au défaut
	t.Setenv("CHECKOUT_PROCESSING_DELAY", "n'importe quoi")
	require.Equal(t, 2*time.Second, ProcessingDelay())
}

func TestSuccessDelayDefault(t *testing.T) {
	t.Setenv("CHECKOUT_SUCCESS_DELAY", "")
	require.Equal(t, 500*time.Millisecond, SuccessDelay())
}
