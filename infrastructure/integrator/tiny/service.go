package tiny

import (
	"context"
	"fmt"
	"time"

	"github.com/mentoria/commerce-sync-api/infrastructure/integrator"
	tinydomain "github.com/mentoria/commerce-sync-api/infrastructure/integrator/tiny/domain"
	"github.com/mentoria/commerce-sync-api/infrastructure/integrator/tiny/tinyclient"
	"github.com/mentoria/commerce-sync-api/internal/config"
	"github.com/mentoria/commerce-sync-api/internal/domain"
	"github.com/mentoria/commerce-sync-api/pkg/ratelimit"
	"github.com/mentoria/commerce-sync-api/pkg/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Service struct {
	cfg    *config.Config
	client tinyclient.Client
	pacer  *ratelimit.Pacer
}

func New(cfg *config.Config, client tinyclient.Client, pacer *ratelimit.Pacer) integrator.Connector {
	return &Service{
		cfg:    cfg,
		client: client,
		pacer:  pacer,
	}
}

func (s *Service) Platform() domain.Platform {
	return domain.PlatformOlistTiny
}

// BeginAuth conecta direto: o Tiny usa token de API fixo, sem redirect de
// OAuth. O token informado é validado com uma consulta de sondagem antes de
// marcar a integração como conectada.
func (s *Service) BeginAuth(ctx context.Context, params integrator.AuthorizeParams, _ string) (*integrator.BeginAuthResult, error) {
	creds := &domain.TinyCredentials{APIToken: params.APIToken}
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	result, err := s.client.SearchOrders(ctx, tinyclient.SearchParams{
		APIToken:    creds.APIToken,
		DataInicial: time.Now().AddDate(0, 0, -1),
		Pagina:      1,
	})
	if err != nil {
		return nil, err
	}
	if result.Failed() && !result.Empty() {
		return nil, errors.Wrapf(domain.ErrInvalidCredentials, "tiny recusou o token: %s", result.ErrorMessage())
	}

	return &integrator.BeginAuthResult{
		Credentials: creds,
		Connected:   true,
	}, nil
}

// ExchangeCode não se aplica: a conexão do Tiny é direta, sem code
func (s *Service) ExchangeCode(_ context.Context, _ domain.Credentials, _, _ string) (domain.Credentials, error) {
	return nil, errors.New("tiny: troca de code não se aplica a esta plataforma")
}

// FetchOrders varre o pedidos.pesquisa página a página até numero_paginas
func (s *Service) FetchOrders(ctx context.Context, creds domain.Credentials, since time.Time) ([]domain.RawOrder, error) {
	tinyCreds, ok := creds.(*domain.TinyCredentials)
	if !ok || !tinyCreds.Connected() {
		return nil, errors.Wrap(domain.ErrInvalidCredentials, "tiny: integração sem token de API")
	}

	pacerKey := "tiny:" + tinyCreds.APIToken
	gap := time.Duration(s.cfg.Tiny.PageDelayMs) * time.Millisecond

	orders := make([]domain.RawOrder, 0)

	totalPages := 1
	for page := 1; page <= totalPages && page <= s.cfg.Sync.MaxPages; page++ {
		if err := s.pacer.Wait(ctx, pacerKey, gap); err != nil {
			return nil, err
		}

		result, err := s.client.SearchOrders(ctx, tinyclient.SearchParams{
			APIToken:    tinyCreds.APIToken,
			DataInicial: since,
			Pagina:      page,
		})
		if err != nil {
			return nil, err
		}
		if result.Empty() {
			break
		}
		if result.Failed() {
			return nil, errors.Errorf("tiny devolveu erro na página %d: %s", page, result.ErrorMessage())
		}

		if result.Retorno.NumeroPaginas > totalPages {
			totalPages = result.Retorno.NumeroPaginas
		}

		for _, wrapper := range result.Retorno.Pedidos {
			pedido := wrapper.Pedido

			createdAt, err := time.Parse(tinydomain.DateLayout, pedido.DataPedido)
			if err != nil {
				logrus.WithField("order_id", pedido.ID).Warn("Pedido do Tiny com data_pedido inválida, ignorando")
				continue
			}

			orders = append(orders, domain.RawOrder{
				ExternalID: fmt.Sprintf("%d", pedido.ID),
				CreatedAt:  createdAt,
				Total:      utils.ParseMoney(pedido.TotalPedido),
				Status:     pedido.Situacao,
				Cancelled:  pedido.Excluded(),
			})
		}
	}

	logrus.WithFields(logrus.Fields{
		"pages":  totalPages,
		"orders": len(orders),
	}).Info("Varredura de pedidos do Tiny concluída")

	return orders, nil
}
