package domain

import "encoding/json"

// DateLayout é o formato de data usado pela API do Tiny
const DateLayout = "02/01/2006"

// ExcludedSituations lista as situações de pedido que não contam para o
// faturamento
var ExcludedSituations = map[string]bool{
	"Cancelado": true,
}

type Order struct {
	ID          int64  `json:"id"`
	Numero      string `json:"numero"`
	DataPedido  string `json:"data_pedido"`
	TotalPedido string `json:"total_pedido"`
	Situacao    string `json:"situacao"`
}

func (o Order) Excluded() bool {
	return ExcludedSituations[o.Situacao]
}

type OrderWrapper struct {
	Pedido Order `json:"pedido"`
}

type ErrorWrapper struct {
	Erro string `json:"erro"`
}

type SearchResult struct {
	Retorno struct {
		StatusProcessamento string         `json:"status_processamento"`
		Status              string         `json:"status"`
		CodigoErro          json.Number    `json:"codigo_erro"`
		Erros               []ErrorWrapper `json:"erros"`
		Pagina              int            `json:"pagina"`
		NumeroPaginas       int            `json:"numero_paginas"`
		Pedidos             []OrderWrapper `json:"pedidos"`
	} `json:"retorno"`
}

// Failed indica falha de processamento da consulta. O Tiny devolve HTTP 200
// mesmo em erro, com status "Erro" no corpo.
func (r SearchResult) Failed() bool {
	return r.Retorno.Status == "Erro"
}

// Empty indica consulta válida sem resultados (codigo_erro 20)
func (r SearchResult) Empty() bool {
	return r.Failed() && r.Retorno.CodigoErro.String() == "20"
}

func (r SearchResult) ErrorMessage() string {
	if len(r.Retorno.Erros) > 0 {
		return r.Retorno.Erros[0].Erro
	}
	return "erro não especificado"
}
