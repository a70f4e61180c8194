// Package noncestore registra os nonces de state token já consumidos,
// rejeitando callbacks de OAuth repetidos. O registro vive no Redis com o
// mesmo TTL do state, então um replay tardio também falha pela validade.
package noncestore

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "oauth_nonce:"

// Store marca nonces como consumidos e responde se já foram vistos
type Store interface {
	// Consume marca o nonce como usado. Devolve false se ele já havia
	// sido consumido.
	Consume(ctx context.Context, nonce string) (bool, error)
	Close() error
}

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func New(redisURL string, ttl time.Duration) (Store, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao interpretar a URL do Redis")
	}

	client := redis.NewClient(opts)

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, errors.Wrap(err, "erro ao conectar ao Redis")
	}

	return &redisStore{client: client, ttl: ttl}, nil
}

func (s *redisStore) Consume(ctx context.Context, nonce string) (bool, error) {
	// SET NX grava apenas se a chave não existe: a primeira chamada
	// consome, as seguintes encontram a marca e falham
	ok, err := s.client.SetNX(ctx, keyPrefix+nonce, "1", s.ttl).Result()
	if err != nil {
		return false, errors.Wrap(err, "erro ao registrar nonce")
	}

	return ok, nil
}

func (s *redisStore) Close() error {
	return s.client.Close()
}
