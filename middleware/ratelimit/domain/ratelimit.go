package domain

import (
	"context"
	"time"
)

// Key identifica o cliente limitado (IP, API key...).
type Key string

// Limiter decide se uma ação é permitida agora.
type Limiter interface {
	Allow() bool
}

// LimiterStore obtém o limiter de uma chave.
type LimiterStore interface {
	Get(Key) Limiter
}

type Decision struct {
	Allowed bool
	// RetryAfter vai no cabeçalho Retry-After quando bloqueado. 0 = sem recomendação.
	RetryAfter time.Duration
}

// SlotPool é um recurso de capacidade finita (requisições em andamento).
//
// Acquire bloqueia até conseguir vaga ou o ctx encerrar. O release devolvido
// deve ser chamado exatamente uma vez.
type SlotPool interface {
	Acquire(ctx context.Context) (release func(), ok bool)
}

// StatsEvent registra uma decisão do rate limit.
//
// Route deve ser o padrão da rota e não o path cru: ids de aplicação no path
// explodiriam o número de chaves no Redis.
type StatsEvent struct {
	Key     Key
	Allowed bool
	Route   string
	At      time.Time
}

// StatsStore persiste estatísticas. Erros são tratados como best-effort pelo middleware.
type StatsStore interface {
	Record(ctx context.Context, ev StatsEvent) error
}
