package ratelimit

import (
	"net/http"
	"time"

	"appcatalog/middleware/ratelimit/application"
	"appcatalog/middleware/ratelimit/infra"
)

type ConcurrencyOptions struct {
	// Max é o número de requisições simultâneas; <= 0 desliga o middleware.
	Max            int
	RejectStatus   int
	AcquireTimeout time.Duration
	Reject         RejectFunc
}

func ConcurrencyMiddleware(opts ConcurrencyOptions) func(next http.Handler) http.Handler {
	if opts.Max <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	if opts.RejectStatus == 0 {
		opts.RejectStatus = http.StatusServiceUnavailable
	}
	if opts.Reject == nil {
		opts.Reject = DefaultReject
	}

	svc := application.ConcurrencyService{
		Pool:           infra.NewChanPool(opts.Max),
		AcquireTimeout: opts.AcquireTimeout,
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			release, ok := svc.Acquire(r.Context())
			if !ok {
				opts.Reject(w, r, opts.RejectStatus)
				return
			}
			defer release()

			next.ServeHTTP(w, r)
		})
	}
}
