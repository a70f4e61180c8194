package reporting

import (
	"time"

	"github.com/mentoria/commerce-sync-api/infrastructure/repository"
	"github.com/mentoria/commerce-sync-api/internal/domain"
	"github.com/mentoria/commerce-sync-api/pkg/utils"
)

// MetricsResponse é o relatório de métricas diárias de uma plataforma em um
// período, com os totais consolidados
type MetricsResponse struct {
	Platform  domain.Platform       `json:"platform"`
	StartDate string                `json:"start_date"`
	EndDate   string                `json:"end_date"`
	Days      []*domain.DailyMetric `json:"days"`
	Totals    domain.DailyBucket    `json:"totals"`
}

// Reporter expõe a leitura das métricas diárias já reconciliadas
type Reporter interface {
	GetDailyMetrics(userID int64, platform domain.Platform, startDate, endDate time.Time) (*MetricsResponse, error)
}

type Service struct {
	metricRepo repository.DailyMetricRepository
}

func NewService(metricRepo repository.DailyMetricRepository) Reporter {
	return &Service{metricRepo: metricRepo}
}

func (s *Service) GetDailyMetrics(userID int64, platform domain.Platform, startDate, endDate time.Time) (*MetricsResponse, error) {
	metrics, err := s.metricRepo.GetByDateRange(userID, platform, startDate, endDate)
	if err != nil {
		return nil, err
	}

	var totals domain.DailyBucket
	for _, metric := range metrics {
		totals.Faturamento += metric.Faturamento
		totals.VendasQuantidade += metric.VendasQuantidade
		totals.VendasValor += metric.VendasValor
	}
	totals.Faturamento = utils.RoundWithTwoDecimalPlace(totals.Faturamento)
	totals.VendasValor = utils.RoundWithTwoDecimalPlace(totals.VendasValor)

	return &MetricsResponse{
		Platform:  platform,
		StartDate: startDate.Format(time.DateOnly),
		EndDate:   endDate.Format(time.DateOnly),
		Days:      metrics,
		Totals:    totals,
	}, nil
}
