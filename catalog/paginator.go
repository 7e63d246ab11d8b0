package catalog

import (
	"context"

	"appcatalog/catalog/domain"
	"appcatalog/catalog/dto"

	"github.com/sirupsen/logrus"
)

// Lister é o que o Paginator precisa da camada application.
type Lister interface {
	List(ctx context.Context, pageKey domain.Key, limit int) ([]domain.Application, error)
}

type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeNotFound
	OutcomeServerError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeServerError:
		return "server_error"
	default:
		return "unknown"
	}
}

// Page é o resultado de uma chamada ao Paginator.
// Cause só é preenchido em OutcomeServerError e nunca vai para o cliente.
type Page struct {
	Outcome Outcome
	Items   []dto.Application
	Link    string
	Limit   int
	LastKey domain.Key
	Cause   error
}

// Paginator não guarda estado entre chamadas: cada Fetch é função das entradas
// mais uma ida ao store.
type Paginator struct {
	Lister   Lister
	MaxLimit int
	// ServerContext é a URL externa usada para montar os links (ex.: https://api.example.com).
	ServerContext string
	Logger        logrus.FieldLogger
}

func (p Paginator) Fetch(ctx context.Context, pageKey domain.Key, requested *int) Page {
	limit := EffectiveLimit(requested, p.MaxLimit)

	apps, err := p.Lister.List(ctx, pageKey, limit)
	if err != nil {
		p.logger().WithError(err).WithFields(logrus.Fields{
			"limit": limit,
			"page":  string(pageKey),
		}).Error("error fetching applications")
		return Page{Outcome: OutcomeServerError, Limit: limit, Cause: err}
	}
	if len(apps) == 0 {
		return Page{Outcome: OutcomeNotFound, Limit: limit}
	}

	last := apps[len(apps)-1].ID
	return Page{
		Outcome: OutcomeOK,
		Items:   dto.FromApplications(apps),
		Link:    BuildLinks(p.ServerContext, limit, len(apps), last),
		Limit:   limit,
		LastKey: last,
	}
}

func (p Paginator) logger() logrus.FieldLogger {
	if p.Logger != nil {
		return p.Logger
	}
	return logrus.StandardLogger()
}
