// Package server monta o processo HTTP do catálogo: store, middlewares e ciclo
// de vida do http.Server.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"slices"
	"sync"
	"time"

	"appcatalog/catalog"
	"appcatalog/catalog/application"
	"appcatalog/catalog/domain"
	"appcatalog/catalog/infra"
	"appcatalog/config"
	"appcatalog/middleware/accesslog"
	"appcatalog/middleware/ratelimit"
	rldomain "appcatalog/middleware/ratelimit/domain"
	rlinfra "appcatalog/middleware/ratelimit/infra"

	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/errgroup"
)

const serviceName = "catalog"

type closer func(context.Context) error

type Server struct {
	cfg     config.Config
	logger  logrus.FieldLogger
	handler http.Handler
	srv     *http.Server
	limiter *rlinfra.Store

	closeOnce sync.Once
	closeErr  error
	closers   []closer
}

// New abre as dependências externas (MongoDB, Redis de estatísticas) e monta a
// cadeia de handlers. Em caso de erro, o que já foi aberto é fechado.
func New(ctx context.Context, cfg config.Config, logger logrus.FieldLogger) (*Server, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	s := &Server{cfg: cfg, logger: logger}

	store, err := s.openStore(ctx)
	if err != nil {
		_ = s.Close(context.Background())
		return nil, err
	}
	stats, err := s.openStats(ctx)
	if err != nil {
		_ = s.Close(context.Background())
		return nil, err
	}

	svc := application.NewService(store, cfg.Limits.MaxFetchLimit, logger)
	api := catalog.NewHandler(svc, catalog.Options{
		MaxLimit:      cfg.Limits.MaxFetchLimit,
		ServerContext: cfg.Server.Context,
		Logger:        logger,
	})

	h := http.Handler(api)
	h = ratelimit.ConcurrencyMiddleware(ratelimit.ConcurrencyOptions{
		Max:            cfg.Server.Workers,
		AcquireTimeout: cfg.Rate.ConcurrencyTimeout,
		Reject:         rejectJSON,
	})(h)
	if cfg.Rate.Enabled {
		s.limiter = rlinfra.NewStore(cfg.Rate.RPS, cfg.Rate.Burst)
		h = ratelimit.Middleware(ratelimit.Options{
			Store:               s.limiter,
			Stats:               stats,
			RouteFn:             api.Route,
			Reject:              rejectJSON,
			Logger:              logger,
			KeyHeader:           cfg.Rate.KeyHeader,
			TrustXForwardedFor:  cfg.Rate.TrustXFF,
			RetryAfter:          cfg.Rate.RetryAfter,
			AddRateLimitHeaders: cfg.Rate.AddHeaders,
		})(h)
	}
	h = accesslog.Middleware(accesslog.Options{Logger: logger, RouteFn: api.Route})(h)
	h = cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"Link", "Retry-After", accesslog.RequestIDHeader},
	}).Handler(h)
	h = otelhttp.NewHandler(h, serviceName,
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string { return api.Route(r) }),
	)
	s.handler = h

	s.srv = &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       90 * time.Second,
	}
	return s, nil
}

func (s *Server) Handler() http.Handler { return s.handler }

func (s *Server) openStore(ctx context.Context) (domain.ApplicationStore, error) {
	switch s.cfg.Store.Driver {
	case config.DriverMemory:
		store, err := infra.LoadMemoryStoreFile(s.cfg.Store.MemorySeedFile)
		if err != nil {
			return nil, err
		}
		s.logger.WithField("applications", store.Len()).Info("using in-memory store")
		return store, nil
	case config.DriverMongo:
		client, err := infra.Connect(ctx, s.cfg.Store.ConnectionString, s.cfg.Store.PingTimeout)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, client.Disconnect)
		s.logger.WithFields(logrus.Fields{
			"database":   s.cfg.Store.DatabaseName,
			"collection": s.cfg.Store.Collection,
		}).Info("connected to mongodb")
		return infra.NewMongoStore(client.Database(s.cfg.Store.DatabaseName).Collection(s.cfg.Store.Collection)), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", s.cfg.Store.Driver)
	}
}

func (s *Server) openStats(ctx context.Context) (rldomain.StatsStore, error) {
	st := s.cfg.Stats
	if !s.cfg.Rate.Enabled || !st.Enabled {
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     st.RedisAddr,
		Password: st.RedisPassword,
		DB:       st.RedisDB,
	})
	s.closers = append(s.closers, func(context.Context) error { return rdb.Close() })

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("redis stats ping: %w", err)
	}

	return rlinfra.NewRedisStatsStore(
		rdb,
		rlinfra.WithStatsPrefix(st.Prefix),
		rlinfra.WithStatsTTL(st.TTL),
		rlinfra.WithStatsBucket(st.Bucket),
		rlinfra.WithStatsTrackKeys(st.TrackKeys),
	), nil
}

// Run escuta em cfg.Server.Addr() até ctx encerrar.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		_ = s.Close(context.Background())
		return fmt.Errorf("listen %s: %w", s.srv.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve atende em ln até ctx encerrar, faz o shutdown gracioso e fecha as
// dependências. Devolve nil num encerramento normal.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)
	if s.limiter != nil {
		s.limiter.StartJanitor(gctx)
	}

	g.Go(func() error {
		s.logger.WithField("addr", ln.Addr().String()).Info("catalog listening")
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout())
		defer cancel()
		s.logger.Info("shutting down")
		return s.srv.Shutdown(shutdownCtx)
	})

	err := g.Wait()
	closeCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout())
	defer cancel()
	return errors.Join(err, s.Close(closeCtx))
}

// Close libera as dependências na ordem inversa da abertura. Idempotente.
func (s *Server) Close(ctx context.Context) error {
	s.closeOnce.Do(func() {
		var errs []error
		for _, c := range slices.Backward(s.closers) {
			if err := c(ctx); err != nil {
				errs = append(errs, err)
			}
		}
		s.closeErr = errors.Join(errs...)
	})
	return s.closeErr
}

func (s *Server) shutdownTimeout() time.Duration {
	if s.cfg.Server.ShutdownTimeout > 0 {
		return s.cfg.Server.ShutdownTimeout
	}
	return 10 * time.Second
}

func rejectJSON(w http.ResponseWriter, _ *http.Request, status int) {
	catalog.WriteError(w, status, http.StatusText(status), time.Now())
}
