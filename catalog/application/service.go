package application

import (
	"context"

	"appcatalog/catalog/domain"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "appcatalog/catalog/application"

// Service só delega ao store e registra log/span de cada leitura.
// Existe para desacoplar a camada HTTP do adapter de armazenamento.
type Service struct {
	Store domain.ApplicationStore
	// DefaultLimit é usado quando List recebe limit <= 0.
	DefaultLimit int
	Logger       logrus.FieldLogger
	Tracer       trace.Tracer
}

func NewService(store domain.ApplicationStore, defaultLimit int, logger logrus.FieldLogger) *Service {
	return &Service{
		Store:        store,
		DefaultLimit: defaultLimit,
		Logger:       logger,
	}
}

// FindByID retorna domain.ErrNotFound quando a chave não existe.
func (s *Service) FindByID(ctx context.Context, key domain.Key) (domain.Application, error) {
	ctx, span := s.tracer().Start(ctx, "catalog.FindByID",
		trace.WithAttributes(attribute.String("catalog.id", string(key))))
	defer span.End()

	s.logger().WithField("id", string(key)).Info("fetching application")

	app, err := s.Store.GetByKey(ctx, key)
	if err != nil && domain.IsStoreError(err) {
		span.RecordError(err)
		span.SetStatus(codes.Error, "store failure")
	}
	return app, err
}

// List devolve uma página ordenada por chave. pageKey vazio começa do início.
func (s *Service) List(ctx context.Context, pageKey domain.Key, limit int) ([]domain.Application, error) {
	if limit <= 0 {
		limit = s.DefaultLimit
	}

	ctx, span := s.tracer().Start(ctx, "catalog.List", trace.WithAttributes(
		attribute.Int("catalog.limit", limit),
		attribute.String("catalog.page", string(pageKey)),
	))
	defer span.End()

	s.logger().WithFields(logrus.Fields{
		"limit": limit,
		"page":  string(pageKey),
	}).Info("fetching applications")

	var (
		apps []domain.Application
		err  error
	)
	if pageKey == "" {
		apps, err = s.Store.PageFromStart(ctx, limit)
	} else {
		apps, err = s.Store.PageAfter(ctx, pageKey, limit)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "store failure")
		return nil, err
	}
	span.SetAttributes(attribute.Int("catalog.returned", len(apps)))
	return apps, nil
}

func (s *Service) tracer() trace.Tracer {
	if s.Tracer != nil {
		return s.Tracer
	}
	return otel.Tracer(tracerName)
}

func (s *Service) logger() logrus.FieldLogger {
	if s.Logger != nil {
		return s.Logger
	}
	return logrus.StandardLogger()
}
