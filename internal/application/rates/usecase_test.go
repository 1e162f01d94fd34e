package rates

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeCache struct {
	rate   float64
	has    bool
	getErr error
	setRcv float64
	setN   int
}

func (c *fakeCache) Get(_ context.Context) (float64, bool, error) {
	return c.rate, c.has, c.getErr
}

func (c *fakeCache) Set(_ context.Context, rate float64) error {
	c.setRcv = rate
	c.setN++
	return nil
}

func TestCurrent_SinCache(t *testing.T) {
	s := NewService(nil, 36)
	assert.Equal(t, 36.0, s.Current(context.Background()))
}

func TestCurrent_CacheConValor(t *testing.T) {
	cache := &fakeCache{rate: 40.5, has: true}
	s := NewService(cache, 36)

	assert.Equal(t, 40.5, s.Current(context.Background()))
	assert.Zero(t, cache.setN)
}

func TestCurrent_CacheVaciaSiembraRespaldo(t *testing.T) {
	cache := &fakeCache{}
	s := NewService(cache, 36)

	assert.Equal(t, 36.0, s.Current(context.Background()))
	assert.Equal(t, 1, cache.setN)
	assert.Equal(t, 36.0, cache.setRcv)
}

func TestCurrent_ErrorDeCacheNoBloquea(t *testing.T) {
	cache := &fakeCache{getErr: errors.New("redis caído")}
	s := NewService(cache, 36)

	assert.Equal(t, 36.0, s.Current(context.Background()))
}
