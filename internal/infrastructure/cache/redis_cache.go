// Package cache adaptador Redis del caché de lecturas del catálogo.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Catalogo-api/internal/application/catalog"
	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/pkg/config"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

var _ catalog.Cache = (*RedisCache)(nil)

const defaultPrefix = "catalogo"

// RedisCache guarda respuestas de detalle como JSON bajo claves versionadas por una generación.
// Invalidate incrementa la generación: las claves viejas dejan de leerse y expiran por TTL.
// Un fallo de Redis nunca rompe la petición; se registra y se trata como miss.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
	log    *logger.Logger
}

// NewRedisClient crea el cliente con la configuración de la app.
func NewRedisClient(cfg config.CacheConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})
}

// NewRedisCache construye el caché; prefix vacío usa "catalogo".
func NewRedisCache(client *redis.Client, ttl time.Duration, prefix string, log *logger.Logger) *RedisCache {
	if prefix == "" {
		prefix = defaultPrefix
	}
	if log == nil {
		log = logger.Nop()
	}
	return &RedisCache{client: client, ttl: ttl, prefix: prefix, log: log}
}

// Ping verifica la conexión al arrancar.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) generationKey() string {
	return c.prefix + ":gen"
}

func (c *RedisCache) generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, c.generationKey()).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func entryKey(prefix string, gen int64, kind, key string) string {
	return fmt.Sprintf("%s:g%d:%s:%s", prefix, gen, kind, key)
}

// get devuelve la generación leída aunque haya miss; catalog.NoGeneration si no pudo leerla.
func (c *RedisCache) get(ctx context.Context, kind, key string, dst any) (int64, bool) {
	gen, err := c.generation(ctx)
	if err != nil {
		c.log.Warn().Err(err).Str("kind", kind).Msg("cache: leer generación")
		return catalog.NoGeneration, false
	}
	raw, err := c.client.Get(ctx, entryKey(c.prefix, gen, kind, key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn().Err(err).Str("kind", kind).Str("key", key).Msg("cache: get")
		}
		return gen, false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		c.log.Warn().Err(err).Str("kind", kind).Str("key", key).Msg("cache: entrada ilegible")
		return gen, false
	}
	return gen, true
}

// set escribe bajo la generación capturada en el miss. Si hubo una invalidación entre medio,
// la clave queda en una generación que ya nadie lee y expira por TTL.
func (c *RedisCache) set(ctx context.Context, gen int64, kind, key string, v any) {
	if gen < 0 {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		c.log.Warn().Err(err).Str("kind", kind).Msg("cache: serializar")
		return
	}
	if err := c.client.Set(ctx, entryKey(c.prefix, gen, kind, key), raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("kind", kind).Str("key", key).Msg("cache: set")
	}
}

func (c *RedisCache) GetCategory(ctx context.Context, key string) (*dto.CategoryResponse, int64, bool) {
	var out dto.CategoryResponse
	gen, ok := c.get(ctx, "category", key, &out)
	if !ok {
		return nil, gen, false
	}
	return &out, gen, true
}

func (c *RedisCache) SetCategory(ctx context.Context, gen int64, key string, v *dto.CategoryResponse) {
	c.set(ctx, gen, "category", key, v)
}

func (c *RedisCache) GetSku(ctx context.Context, id int64) (*dto.SkuResponse, int64, bool) {
	var out dto.SkuResponse
	gen, ok := c.get(ctx, "sku", fmt.Sprint(id), &out)
	if !ok {
		return nil, gen, false
	}
	return &out, gen, true
}

func (c *RedisCache) SetSku(ctx context.Context, gen int64, id int64, v *dto.SkuResponse) {
	c.set(ctx, gen, "sku", fmt.Sprint(id), v)
}

// Invalidate descarta todo el contenido cacheado.
func (c *RedisCache) Invalidate(ctx context.Context) {
	if err := c.client.Incr(ctx, c.generationKey()).Err(); err != nil {
		c.log.Error().Err(err).Msg("cache: invalidar")
	}
}

// Close cierra el pool de conexiones.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
