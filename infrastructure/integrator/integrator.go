// Package integrator define o contrato comum dos conectores de plataforma:
// handshake OAuth/token em dois passos e varredura paginada de pedidos.
package integrator

import (
	"context"
	"time"

	"github.com/mentoria/commerce-sync-api/internal/domain"
	"github.com/pkg/errors"
)

// AuthorizeParams carrega os campos informados pelo usuário ao iniciar a
// conexão. Cada plataforma usa o subconjunto que lhe diz respeito.
type AuthorizeParams struct {
	UserID int64

	// Shopify
	ShopDomain   string
	ClientID     string
	ClientSecret string

	// Olist/Tiny
	APIToken string
}

// BeginAuthResult é o resultado do primeiro passo do handshake
type BeginAuthResult struct {
	// AuthURL é a URL de autorização para onde o usuário é redirecionado.
	// Vazia quando a plataforma conecta sem redirect (token direto).
	AuthURL string
	// Credentials é o blob pré-handshake a persistir no cofre
	Credentials domain.Credentials
	// Connected indica conexão imediata, sem passo de callback
	Connected bool
}

// Connector é a estratégia por plataforma de handshake e busca de pedidos
type Connector interface {
	Platform() domain.Platform

	// BeginAuth valida os campos da plataforma e monta a URL de
	// autorização com o state informado
	BeginAuth(ctx context.Context, params AuthorizeParams, state string) (*BeginAuthResult, error)

	// ExchangeCode troca o code do callback por tokens e devolve o blob
	// conectado. identifier é o identificador extra do callback
	// (shop_id da Shopee, shop do Shopify, store_id da Nuvemshop).
	ExchangeCode(ctx context.Context, creds domain.Credentials, code, identifier string) (domain.Credentials, error)

	// FetchOrders varre o endpoint de listagem de pedidos página a
	// página desde o instante informado. Pedidos cancelados chegam com
	// Cancelled=true.
	FetchOrders(ctx context.Context, creds domain.Credentials, since time.Time) ([]domain.RawOrder, error)
}

// Registry resolve o conector pela plataforma
type Registry map[domain.Platform]Connector

func NewRegistry(connectors ...Connector) Registry {
	registry := make(Registry, len(connectors))
	for _, c := range connectors {
		registry[c.Platform()] = c
	}
	return registry
}

func (r Registry) Get(platform domain.Platform) (Connector, error) {
	c, ok := r[platform]
	if !ok {
		return nil, errors.Wrapf(domain.ErrUnknownPlatform, "%s", platform)
	}
	return c, nil
}
