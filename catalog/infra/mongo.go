package infra

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"appcatalog/catalog/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoStore lê aplicações de uma coleção MongoDB.
//
// A *mongo.Collection é compartilhada entre requisições; o pool de conexões
// é responsabilidade do client do driver.
type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(coll *mongo.Collection) *MongoStore {
	return &MongoStore{coll: coll}
}

// Connect abre o client e valida a conexão com um ping antes de devolvê-lo.
// O chamador é dono do client e deve chamar Disconnect no shutdown.
func Connect(ctx context.Context, uri string, pingTimeout time.Duration) (*mongo.Client, error) {
	if strings.TrimSpace(uri) == "" {
		return nil, errors.New("mongodb connection string is required")
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if pingTimeout <= 0 {
		pingTimeout = 5 * time.Second
	}
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return client, nil
}

func (s *MongoStore) GetByKey(ctx context.Context, key domain.Key) (domain.Application, error) {
	if s == nil || s.coll == nil {
		return domain.Application{}, &domain.StoreError{Op: "get", Key: key, Err: errors.New("store is not configured")}
	}

	var doc applicationDocument
	err := s.coll.FindOne(ctx, bson.D{{Key: "_id", Value: string(key)}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Application{}, domain.ErrNotFound
		}
		return domain.Application{}, &domain.StoreError{Op: "get", Key: key, Err: err}
	}
	app, err := doc.toDomain()
	if err != nil {
		return domain.Application{}, &domain.StoreError{Op: "get", Key: key, Err: err}
	}
	return app, nil
}

func (s *MongoStore) PageFromStart(ctx context.Context, limit int) ([]domain.Application, error) {
	return s.page(ctx, "page from start", "", bson.D{}, limit)
}

func (s *MongoStore) PageAfter(ctx context.Context, key domain.Key, limit int) ([]domain.Application, error) {
	return s.page(ctx, "page after", key, pageAfterFilter(key), limit)
}

func (s *MongoStore) page(ctx context.Context, op string, key domain.Key, filter bson.D, limit int) ([]domain.Application, error) {
	if s == nil || s.coll == nil {
		return nil, &domain.StoreError{Op: op, Key: key, Err: errors.New("store is not configured")}
	}
	if limit <= 0 {
		return nil, &domain.StoreError{Op: op, Key: key, Err: fmt.Errorf("limit must be greater than zero, got %d", limit)}
	}

	cur, err := s.coll.Find(ctx, filter, pageOptions(limit))
	if err != nil {
		return nil, &domain.StoreError{Op: op, Key: key, Err: err}
	}
	defer func() { _ = cur.Close(context.WithoutCancel(ctx)) }()

	out := make([]domain.Application, 0, limit)
	for cur.Next(ctx) {
		var doc applicationDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, &domain.StoreError{Op: op, Key: key, Err: fmt.Errorf("decode: %w", err)}
		}
		app, err := doc.toDomain()
		if err != nil {
			return nil, &domain.StoreError{Op: op, Key: key, Err: err}
		}
		out = append(out, app)
	}
	// falha no meio do cursor (getMore) aparece aqui e não pode virar página parcial.
	if err := cur.Err(); err != nil {
		return nil, &domain.StoreError{Op: op, Key: key, Err: err}
	}
	return out, nil
}

func pageAfterFilter(key domain.Key) bson.D {
	return bson.D{{Key: "_id", Value: bson.D{{Key: "$gt", Value: string(key)}}}}
}

func pageOptions(limit int) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetLimit(int64(limit))
}

var _ domain.ApplicationStore = (*MongoStore)(nil)
