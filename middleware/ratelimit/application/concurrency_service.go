package application

import (
	"context"
	"time"

	"appcatalog/middleware/ratelimit/domain"
)

// ConcurrencyService limita requisições simultâneas ao catálogo.
type ConcurrencyService struct {
	Pool           domain.SlotPool
	AcquireTimeout time.Duration
}

// Acquire espera uma vaga. AcquireTimeout <= 0 espera até o ctx da requisição
// encerrar. Com ok=false nenhuma vaga foi ocupada.
func (s ConcurrencyService) Acquire(ctx context.Context) (func(), bool) {
	if s.Pool == nil {
		return func() {}, true
	}
	if s.AcquireTimeout <= 0 {
		return s.Pool.Acquire(ctx)
	}

	acqCtx, cancel := context.WithTimeout(ctx, s.AcquireTimeout)
	defer cancel()
	return s.Pool.Acquire(acqCtx)
}
