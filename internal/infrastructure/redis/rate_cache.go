package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/go-redis/redis/v8"

	"github.com/frankUCLA/modasoft/pkg/config"
)

// rateKey clave única de la tasa del día.
const rateKey = "tasa:bcv"

// NewClient conecta a Redis y verifica con un ping corto.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: sin conexión: %w", err)
	}
	return client, nil
}

// RateCache cache de la tasa de cambio con expiración.
type RateCache struct {
	client *goredis.Client
	ttl    time.Duration
}

// NewRateCache construye el cache de tasa.
func NewRateCache(client *goredis.Client, ttlMinutes int) *RateCache {
	if ttlMinutes <= 0 {
		ttlMinutes = 60
	}
	return &RateCache{client: client, ttl: time.Duration(ttlMinutes) * time.Minute}
}

// Get devuelve la tasa cacheada; (0, false, nil) si la clave no existe o expiró.
func (c *RateCache) Get(ctx context.Context) (float64, bool, error) {
	val, err := c.client.Get(ctx, rateKey).Result()
	if errors.Is(err, goredis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("redis: leer tasa: %w", err)
	}
	rate, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false, fmt.Errorf("redis: tasa corrupta %q: %w", val, err)
	}
	return rate, true, nil
}

// Set guarda la tasa con el TTL configurado.
func (c *RateCache) Set(ctx context.Context, rate float64) error {
	err := c.client.Set(ctx, rateKey, strconv.FormatFloat(rate, 'f', -1, 64), c.ttl).Err()
	if err != nil {
		return fmt.Errorf("redis: guardar tasa: %w", err)
	}
	return nil
}
