package application

import (
	"time"

	"appcatalog/middleware/ratelimit/domain"
)

// Service devolve a decisão do rate limit para uma chave.
// Sem store (ou sem limiter para a chave) tudo é permitido.
type Service struct {
	Store      domain.LimiterStore
	RetryAfter time.Duration
}

func (s Service) Decide(key domain.Key) domain.Decision {
	if s.Store == nil {
		return domain.Decision{Allowed: true}
	}
	retryAfter := s.RetryAfter
	if retryAfter <= 0 {
		retryAfter = time.Second
	}

	lim := s.Store.Get(key)
	if lim == nil || lim.Allow() {
		return domain.Decision{Allowed: true}
	}
	return domain.Decision{Allowed: false, RetryAfter: retryAfter}
}
