package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/mentoria/commerce-sync-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// Tópicos de conformidade obrigatórios para apps públicos. As plataformas
// só exigem que o endpoint exista e confirme o recebimento.
const (
	WebhookTopicDataRequest     = "data-request"
	WebhookTopicCustomersRedact = "customers-redact"
	WebhookTopicShopRedact      = "shop-redact"
)

var complianceTopics = map[string]bool{
	WebhookTopicDataRequest:     true,
	WebhookTopicCustomersRedact: true,
	WebhookTopicShopRedact:      true,
}

// ComplianceWebhook confirma o recebimento das notificações de conformidade
// de dados. Rota pública: a chamada vem da plataforma, não do frontend.
func ComplianceWebhook(topic string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !complianceTopics[topic] {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tópico de webhook desconhecido", nil)
			return
		}

		// O corpo é lido e descartado: não armazenamos dados de clientes
		// além das métricas agregadas
		body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da notificação ilegível", nil)
			return
		}

		platform := httprouter.ParamsFromContext(r.Context()).ByName("platform")

		logrus.WithFields(logrus.Fields{
			"platform": platform,
			"topic":    topic,
			"bytes":    len(body),
		}).Info("Notificação de conformidade recebida")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "received"})
	}
}
