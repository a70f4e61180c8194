package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/mentoria/commerce-sync-api/internal/domain"
	"github.com/mentoria/commerce-sync-api/internal/usecases/reporting"
	"github.com/mentoria/commerce-sync-api/pkg/apiErrors"
	"github.com/mentoria/commerce-sync-api/pkg/middleware"
	"github.com/mentoria/commerce-sync-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// GetDailyMetrics devolve as métricas diárias do usuário da sessão para uma
// plataforma e período. Sem datas, devolve os últimos 30 dias.
func GetDailyMetrics(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrUnauthorized, "Sessão inválida", nil)
			return
		}

		query := r.URL.Query()

		platform, ok := domain.ParsePlatform(query.Get("platform"))
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrUnknownPlatform, "Plataforma não suportada: "+query.Get("platform"), nil)
			return
		}

		endDate := time.Now()
		startDate := endDate.AddDate(0, 0, -30)

		if raw := query.Get("start_date"); raw != "" {
			parsed, err := utils.ParseDate(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date inválida, use YYYY-MM-DD", nil)
				return
			}
			startDate = *parsed
		}

		if raw := query.Get("end_date"); raw != "" {
			parsed, err := utils.ParseDate(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date inválida, use YYYY-MM-DD", nil)
				return
			}
			endDate = *parsed
		}

		if endDate.Before(startDate) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "end_date anterior à start_date", nil)
			return
		}

		report, err := service.GetDailyMetrics(claims.UserID, platform, startDate, endDate)
		if err != nil {
			logrus.WithError(err).Error("Erro ao buscar métricas diárias")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar métricas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logrus.WithError(err).Error("Erro ao enviar relatório de métricas")
		}
	}
}
