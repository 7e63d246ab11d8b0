package ratelimit

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"appcatalog/middleware/ratelimit/application"
	"appcatalog/middleware/ratelimit/domain"

	"github.com/sirupsen/logrus"
)

type KeyFunc func(r *http.Request) string

// RouteFunc devolve um rótulo de rota de baixa cardinalidade
// (ex.: "GET /api/v1/applications/{id}" em vez do path com o id).
type RouteFunc func(r *http.Request) string

// RejectFunc escreve a resposta de uma requisição recusada.
type RejectFunc func(w http.ResponseWriter, r *http.Request, status int)

type Options struct {
	Store               domain.LimiterStore
	Stats               domain.StatsStore
	KeyFn               KeyFunc
	RouteFn             RouteFunc
	Reject              RejectFunc
	Logger              logrus.FieldLogger
	KeyHeader           string
	TrustXForwardedFor  bool
	RejectStatus        int
	RetryAfter          time.Duration
	AddRateLimitHeaders bool
}

type rateInfo interface {
	RPS() float64
	Burst() int
}

func DefaultKeyFunc(keyHeader string, trustXFF bool) KeyFunc {
	return func(r *http.Request) string {
		if keyHeader != "" {
			if v := strings.TrimSpace(r.Header.Get(keyHeader)); v != "" {
				return v
			}
		}

		if trustXFF {
			// primeiro IP do X-Forwarded-For é o cliente original
			if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
				first, _, _ := strings.Cut(xff, ",")
				if ip := strings.TrimSpace(first); ip != "" {
					return ip
				}
			}
		}

		host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
		if err == nil && host != "" {
			return host
		}
		if r.RemoteAddr != "" {
			return r.RemoteAddr
		}
		return "unknown"
	}
}

// DefaultReject responde com o texto padrão do status.
func DefaultReject(w http.ResponseWriter, _ *http.Request, status int) {
	http.Error(w, http.StatusText(status), status)
}

func defaultRoute(r *http.Request) string {
	return r.Method + " " + r.URL.Path
}

func Middleware(opts Options) func(next http.Handler) http.Handler {
	if opts.RejectStatus == 0 {
		opts.RejectStatus = http.StatusTooManyRequests
	}
	if opts.RetryAfter == 0 {
		opts.RetryAfter = 1 * time.Second
	}
	if opts.KeyFn == nil {
		opts.KeyFn = DefaultKeyFunc(opts.KeyHeader, opts.TrustXForwardedFor)
	}
	if opts.RouteFn == nil {
		opts.RouteFn = defaultRoute
	}
	if opts.Reject == nil {
		opts.Reject = DefaultReject
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}

	svc := application.Service{
		Store:      opts.Store,
		RetryAfter: opts.RetryAfter,
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := opts.KeyFn(r)

			if opts.AddRateLimitHeaders {
				w.Header().Set("X-RateLimit-Key", key)
				if ri, ok := opts.Store.(rateInfo); ok {
					w.Header().Set("X-RateLimit-RPS", strconv.FormatFloat(ri.RPS(), 'f', -1, 64))
					w.Header().Set("X-RateLimit-Burst", strconv.Itoa(ri.Burst()))
				}
			}

			dec := svc.Decide(domain.Key(key))
			if opts.Stats != nil {
				route := opts.RouteFn(r)
				err := opts.Stats.Record(r.Context(), domain.StatsEvent{
					Key:     domain.Key(key),
					Allowed: dec.Allowed,
					Route:   route,
					At:      time.Now(),
				})
				if err != nil {
					// best-effort: estatística nunca derruba a requisição
					opts.Logger.WithError(err).WithField("route", route).Warn("rate limit stats record failed")
				}
			}
			if !dec.Allowed {
				w.Header().Set("Retry-After", strconv.Itoa(int(dec.RetryAfter.Seconds())))
				opts.Reject(w, r, opts.RejectStatus)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
