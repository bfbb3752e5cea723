package store

import (
	"testing"
	"time"

	"kitchenly_back_end/internal/models"

	"github.com/stretchr/testify/require"
)

func TestOrderStoreNewestFirst(t *testing.T) {
	s := NewOrderStore()

	s.Save(models.Order{ID: "a", UserID: "u1", Reference: "ORD-2026-001"})
	s.Save(models.Order{ID: "b", UserID: "u1", Reference: "ORD-2026-002"})

	orders := s.ListByUser("u1")
	require.Len(t, orders, 2)
	require.Equal(t, "b", orders[0].ID)
	require.Equal(t, "a", orders[1].ID)
}

func TestOrderStoreGetByIDOrReference(t *testing.T) {
	s := NewOrderStore()
	s.Save(models.Order{ID: "a", UserID: "u1", Reference: "ORD-2026-001"})

	byID, ok := s.Get("u1", "a")
	require.True(t, ok)
	require.Equal(t, "ORD-2026-001", byID.Reference)

	byRef, ok := s.Get("u1", "ORD-2026-001")
	require.True(t, ok)
	require.Equal(t, "a", byRef.ID)

	_, ok = s.Get("u2", "a")
	require.False(t, ok, "les commandes d'un autre utilisateur sont invisibles")
}

func TestTrackingStepsProgression(t *testing.T) {
	created := time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC)
	order := models.Order{CreatedAt: created}

	// Juste après la commande : seule la première étape est complétée
	steps := TrackingSteps(order, created.Add(time.Minute))
	require.Len(t, steps, 5)
	require.Equal(t, "Order Placed", steps[0].Title)
	require.True(t, steps[0].Completed)
	require.False(t, steps[1].Completed)

	// Après 3 jours : tout est livré
	steps = TrackingSteps(order, created.Add(73*time.Hour))
	for _, step := range steps {
		require.True(t, step.Completed, step.Title)
	}
	require.Equal(t, "Delivered", steps[4].Title)
}
