package handler

import (
	"net/http"

	"github.com/mentoria/commerce-sync-api/internal/api/handler/router"
	"github.com/mentoria/commerce-sync-api/internal/usecases/connecting"
	"github.com/mentoria/commerce-sync-api/internal/usecases/reporting"
	"github.com/mentoria/commerce-sync-api/internal/usecases/syncing"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Integrations(connectSvc connecting.Connector, syncSvc syncing.Syncer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/integrations",
			Method:  http.MethodGet,
			Handler: ListIntegrations(connectSvc),
		},
		{
			Path:    "/v1/integrations/:platform/authorize",
			Method:  http.MethodPost,
			Handler: AuthorizeIntegration(connectSvc),
		},
		{
			Path:    "/v1/integrations/:platform/callback",
			Method:  http.MethodGet,
			Handler: IntegrationCallback(connectSvc),
		},
		{
			Path:    "/v1/integrations/:platform/sync",
			Method:  http.MethodPost,
			Handler: SyncIntegration(syncSvc),
		},
	}
}

func Metrics(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/metrics",
			Method:  http.MethodGet,
			Handler: GetDailyMetrics(service),
		},
	}
}

func Webhooks() []router.Route {
	return []router.Route{
		{
			Path:    "/v1/webhooks/:platform/data-request",
			Method:  http.MethodPost,
			Handler: ComplianceWebhook(WebhookTopicDataRequest),
		},
		{
			Path:    "/v1/webhooks/:platform/customers-redact",
			Method:  http.MethodPost,
			Handler: ComplianceWebhook(WebhookTopicCustomersRedact),
		},
		{
			Path:    "/v1/webhooks/:platform/shop-redact",
			Method:  http.MethodPost,
			Handler: ComplianceWebhook(WebhookTopicShopRedact),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
