package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luxestore/internal/domain/entity"
)

func TestMemoryCartRepository(t *testing.T) {
	repo := NewMemoryCartRepository()
	ctx := context.Background()
	tote := entity.Product{ID: "p1", Name: "Tote", Price: 100}

	t.Run("Load for unknown session returns empty cart", func(t *testing.T) {
		cart, err := repo.Load(ctx, "missing")
		require.NoError(t, err)
		assert.True(t, cart.IsEmpty())
	})

	t.Run("Save then Load round-trips", func(t *testing.T) {
		cart := entity.NewCart().Add(tote, "M", "Black").Add(tote, "M", "Black")
		require.NoError(t, repo.Save(ctx, "s1", cart))

		got, err := repo.Load(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, cart, got)
	})

	t.Run("sessions are isolated", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, "s2", entity.NewCart().Add(tote, "S", "Tan")))

		got, err := repo.Load(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, "M", got.Items[0].Size)
	})

	t.Run("Clear removes the blob", func(t *testing.T) {
		require.NoError(t, repo.Clear(ctx, "s1"))

		got, err := repo.Load(ctx, "s1")
		require.NoError(t, err)
		assert.True(t, got.IsEmpty())
	})

	t.Run("corrupt blob loads as empty cart", func(t *testing.T) {
		mem := repo.(*memoryCartRepository)
		mem.blobs[cartKey("bad")] = []byte("{oops")

		got, err := repo.Load(ctx, "bad")
		require.NoError(t, err)
		assert.True(t, got.IsEmpty())
	})
}

func TestMemoryCartRepository_Concurrent(t *testing.T) {
	repo := NewMemoryCartRepository()
	ctx := context.Background()

	const goroutines = 50
	var wg sync.WaitGroup
	wg.Add(goroutines)

	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			cart := entity.NewCart().Add(entity.Product{ID: "p1", Price: 1}, "M", "Black")
			assert.NoError(t, repo.Save(ctx, "shared", cart))
			_, err := repo.Load(ctx, "shared")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := repo.Load(ctx, "shared")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Count())
}
