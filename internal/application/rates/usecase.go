package rates

import "context"

// Cache almacenamiento efímero de la tasa; la implementación de Redis es
// opcional y el servicio funciona igual sin ella.
type Cache interface {
	Get(ctx context.Context) (float64, bool, error)
	Set(ctx context.Context, rate float64) error
}

// Service entrega la tasa BCV del día. Hoy la fuente es un valor fijo de
// configuración; cuando exista un origen externo, solo cambia quién llena
// la caché.
type Service struct {
	cache    Cache
	fallback float64
}

// NewService construye el servicio de tasa. cache puede ser nil.
func NewService(cache Cache, fallback float64) *Service {
	return &Service{cache: cache, fallback: fallback}
}

// Current devuelve la tasa vigente. Un fallo de caché nunca bloquea la
// respuesta: se ignora y se responde el valor de respaldo.
func (s *Service) Current(ctx context.Context) float64 {
	if s.cache == nil {
		return s.fallback
	}
	rate, ok, err := s.cache.Get(ctx)
	if err == nil && ok {
		return rate
	}
	_ = s.cache.Set(ctx, s.fallback)
	return s.fallback
}
