//go:build integration

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
)

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	addr, err := container.Endpoint(ctx, "")
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisCache_GuardaEInvalida(t *testing.T) {
	c := NewRedisCache(setupRedis(t), time.Minute, "test", nil)
	ctx := context.Background()
	require.NoError(t, c.Ping(ctx))

	_, gen, ok := c.GetSku(ctx, 9)
	require.False(t, ok)
	c.SetSku(ctx, gen, 9, &dto.SkuResponse{ID: 9, Name: "Handset", SkuNumber: "00AB12CD34"})
	got, _, ok := c.GetSku(ctx, 9)
	require.True(t, ok)
	assert.Equal(t, "00AB12CD34", got.SkuNumber)

	_, gen, _ = c.GetCategory(ctx, "slug:phones")
	c.SetCategory(ctx, gen, "slug:phones", &dto.CategoryResponse{ID: 2, Slug: "phones"})
	cat, _, ok := c.GetCategory(ctx, "slug:phones")
	require.True(t, ok)
	assert.Equal(t, int64(2), cat.ID)

	c.Invalidate(ctx)
	_, _, ok = c.GetSku(ctx, 9)
	assert.False(t, ok)
	_, _, ok = c.GetCategory(ctx, "slug:phones")
	assert.False(t, ok)
}

// Una respuesta armada antes de una invalidación no queda visible después de ella.
func TestRedisCache_SetTrasInvalidarNoPublica(t *testing.T) {
	c := NewRedisCache(setupRedis(t), time.Minute, "test", nil)
	ctx := context.Background()

	_, gen, ok := c.GetSku(ctx, 9)
	require.False(t, ok)

	c.Invalidate(ctx)
	c.SetSku(ctx, gen, 9, &dto.SkuResponse{ID: 9, Name: "viejo"})

	_, next, ok := c.GetSku(ctx, 9)
	assert.False(t, ok)
	assert.Equal(t, gen+1, next)
}
