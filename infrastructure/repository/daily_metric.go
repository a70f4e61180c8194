package repository

import (
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/mentoria/commerce-sync-api/infrastructure/database/postgres"
	"github.com/mentoria/commerce-sync-api/internal/domain"
	"github.com/pkg/errors"
)

const dailyMetricsTable = "daily_metrics"

// DailyMetricRepository persiste a série temporal de métricas diárias,
// única por (user_id, date, platform). Só a reconciliação escreve aqui.
type DailyMetricRepository interface {
	GetByDateRange(userID int64, platform domain.Platform, startDate, endDate time.Time) ([]*domain.DailyMetric, error)
	SaveOrUpdate(metric *domain.DailyMetric) error
}

type dailyMetricRepository struct {
	conn *postgres.Connection
}

func NewDailyMetricRepository(conn *postgres.Connection) DailyMetricRepository {
	return &dailyMetricRepository{
		conn: conn,
	}
}

func (r *dailyMetricRepository) GetByDateRange(userID int64, platform domain.Platform, startDate, endDate time.Time) ([]*domain.DailyMetric, error) {
	query, args, err := squirrel.
		Select("dm.id, dm.user_id, dm.date, dm.platform, dm.faturamento, dm.vendas_quantidade, dm.vendas_valor, dm.created_at, dm.updated_at").
		From(dailyMetricsTable + " dm").
		Where(squirrel.Eq{"dm.user_id": userID, "dm.platform": platform}).
		Where(squirrel.GtOrEq{"dm.date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"dm.date": endDate.Format(time.DateOnly)}).
		OrderBy("dm.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query")
	}
	defer rows.Close()

	metrics := make([]*domain.DailyMetric, 0)
	for rows.Next() {
		metric := &domain.DailyMetric{}
		err = rows.Scan(
			&metric.ID,
			&metric.UserID,
			&metric.Date,
			&metric.Platform,
			&metric.Faturamento,
			&metric.VendasQuantidade,
			&metric.VendasValor,
			&metric.CreatedAt,
			&metric.UpdatedAt,
		)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear métricas diárias")
		}
		metrics = append(metrics, metric)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return metrics, nil
}

// SaveOrUpdate substitui integralmente os três campos numéricos em caso de
// conflito. Reexecuções com a mesma entrada produzem o mesmo estado final,
// nunca somam em cima do valor existente.
func (r *dailyMetricRepository) SaveOrUpdate(metric *domain.DailyMetric) error {
	query := squirrel.StatementBuilder.
		Insert(dailyMetricsTable).
		Columns("user_id", "date", "platform", "faturamento", "vendas_quantidade", "vendas_valor").
		Values(
			metric.UserID,
			metric.Date.Format(time.DateOnly),
			metric.Platform,
			metric.Faturamento,
			metric.VendasQuantidade,
			metric.VendasValor,
		).
		Suffix(`
			ON CONFLICT (user_id, date, platform) DO UPDATE SET
				faturamento = EXCLUDED.faturamento,
				vendas_quantidade = EXCLUDED.vendas_quantidade,
				vendas_valor = EXCLUDED.vendas_valor,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return errors.Wrapf(pqErr, "erro no banco de dados (código: %s)", pqErr.Code)
		}
		return errors.Wrap(err, "erro ao executar a query")
	}

	return nil
}
