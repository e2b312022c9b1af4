package cache_test

import (
	"context"
	"errors"
	"fmt"
	"reservas/shared/cache"
	"reservas/shared/cache/mocks"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type item struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func TestRemember(t *testing.T) {
	const key = "casas:list"

	stored := []item{{ID: 1, Name: "HAB 1"}}

	t.Run("hit returns cached value without loading", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockCache := mocks.NewMockRedisCache(ctrl)

		mockCache.EXPECT().Get(gomock.Any(), key, gomock.Any()).DoAndReturn(func(_ context.Context, _ string, value any) error {
			*(value.(*[]item)) = stored

			return nil
		})

		got, err := cache.Remember(context.Background(), mockCache, key, 60, func(context.Context) ([]item, error) {
			t.Fatal("load must not be called on a cache hit")

			return nil, nil
		})

		require.NoError(t, err)
		assert.Equal(t, stored, got)
	})

	t.Run("miss loads and saves", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockCache := mocks.NewMockRedisCache(ctrl)

		mockCache.EXPECT().Get(gomock.Any(), key, gomock.Any()).Return(fmt.Errorf("failed to get cache value: %w", cache.Nil))
		mockCache.EXPECT().Save(gomock.Any(), key, stored, 60).Return(nil)

		got, err := cache.Remember(context.Background(), mockCache, key, 60, func(context.Context) ([]item, error) {
			return stored, nil
		})

		require.NoError(t, err)
		assert.Equal(t, stored, got)
	})

	t.Run("cache failures do not fail the call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockCache := mocks.NewMockRedisCache(ctrl)

		mockCache.EXPECT().Get(gomock.Any(), key, gomock.Any()).Return(errors.New("connection refused"))
		mockCache.EXPECT().Save(gomock.Any(), key, stored, 60).Return(errors.New("connection refused"))

		got, err := cache.Remember(context.Background(), mockCache, key, 60, func(context.Context) ([]item, error) {
			return stored, nil
		})

		require.NoError(t, err)
		assert.Equal(t, stored, got)
	})

	t.Run("load error is returned and nothing is saved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockCache := mocks.NewMockRedisCache(ctrl)

		loadErr := errors.New("store down")

		mockCache.EXPECT().Get(gomock.Any(), key, gomock.Any()).Return(cache.Nil)

		_, err := cache.Remember(context.Background(), mockCache, key, 60, func(context.Context) ([]item, error) {
			return nil, loadErr
		})

		assert.ErrorIs(t, err, loadErr)
	})
}

func TestNoopCache(t *testing.T) {
	noop := cache.NewNoopCache()
	ctx := context.Background()

	require.NoError(t, noop.Save(ctx, "k", "v", 10))

	var value string
	assert.ErrorIs(t, noop.Get(ctx, "k", &value), cache.Nil)
	assert.NoError(t, noop.Delete(ctx, "k"))
	assert.NoError(t, noop.Clear(ctx, "k*"))

	calls := 0
	got, err := cache.Remember(ctx, noop, "k", 10, func(context.Context) (int, error) {
		calls++

		return 7, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 7, got)
	assert.Equal(t, 1, calls)
}

func TestRememberGeneration(t *testing.T) {
	const prefix = "reservas:views"

	stored := []item{{ID: 1, Name: "Reserva 1"}}

	t.Run("key carries the current generation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockCache := mocks.NewMockRedisCache(ctrl)

		gomock.InOrder(
			mockCache.EXPECT().Get(gomock.Any(), "generation:reservas:views", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, value any) error {
				*(value.(*int64)) = 4

				return nil
			}),
			mockCache.EXPECT().Get(gomock.Any(), "reservas:views:g4:all", gomock.Any()).Return(cache.Nil),
			mockCache.EXPECT().Save(gomock.Any(), "reservas:views:g4:all", stored, 60).Return(nil),
		)

		got, err := cache.RememberGeneration(context.Background(), mockCache, prefix, "all", 60, func(context.Context) ([]item, error) {
			return stored, nil
		})

		require.NoError(t, err)
		assert.Equal(t, stored, got)
	})

	t.Run("missing counter is generation zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockCache := mocks.NewMockRedisCache(ctrl)

		mockCache.EXPECT().Get(gomock.Any(), "generation:reservas:views", gomock.Any()).Return(fmt.Errorf("failed to get cache value: %w", cache.Nil))
		mockCache.EXPECT().Get(gomock.Any(), "reservas:views:g0:7", gomock.Any()).Return(cache.Nil)
		mockCache.EXPECT().Save(gomock.Any(), "reservas:views:g0:7", stored, 60).Return(nil)

		_, err := cache.RememberGeneration(context.Background(), mockCache, prefix, "7", 60, func(context.Context) ([]item, error) {
			return stored, nil
		})

		require.NoError(t, err)
	})

	t.Run("unreadable generation bypasses the cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockCache := mocks.NewMockRedisCache(ctrl)

		mockCache.EXPECT().Get(gomock.Any(), "generation:reservas:views", gomock.Any()).Return(errors.New("connection refused"))

		got, err := cache.RememberGeneration(context.Background(), mockCache, prefix, "all", 60, func(context.Context) ([]item, error) {
			return stored, nil
		})

		require.NoError(t, err)
		assert.Equal(t, stored, got)
	})
}

func TestInvalidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCache := mocks.NewMockRedisCache(ctrl)

	gomock.InOrder(
		mockCache.EXPECT().Incr(gomock.Any(), "generation:reservas:views").Return(int64(2), nil),
		mockCache.EXPECT().Clear(gomock.Any(), "reservas:views*").Return(nil),
	)
	require.NoError(t, cache.Invalidate(context.Background(), mockCache, "reservas:views"))

	incrErr := errors.New("incr refused")
	mockCache.EXPECT().Incr(gomock.Any(), "generation:reservas:views").Return(int64(0), incrErr)
	mockCache.EXPECT().Clear(gomock.Any(), "reservas:views*").Return(nil)
	assert.ErrorIs(t, cache.Invalidate(context.Background(), mockCache, "reservas:views"), incrErr)

	noopGen, err := cache.NewNoopCache().Incr(context.Background(), "generation:reservas:views")
	require.NoError(t, err)
	assert.Zero(t, noopGen)
}
