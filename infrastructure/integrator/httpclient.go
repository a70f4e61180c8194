package integrator

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// UpstreamError representa uma resposta não-2xx de uma plataforma. Carrega
// o status HTTP e o corpo devolvido pelo fornecedor.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("plataforma respondeu %d: %s", e.StatusCode, e.Body)
}

// IsRateLimited informa se o erro é um HTTP 429 da plataforma
func IsRateLimited(err error) bool {
	upstream, ok := err.(*UpstreamError)
	return ok && upstream.StatusCode == http.StatusTooManyRequests
}

// RetryConfig limita as novas tentativas por página em falhas transitórias
type RetryConfig struct {
	MaxRetries int
	BaseDelay  time.Duration
}

// RequestFactory reconstrói a requisição a cada tentativa, já que o corpo
// de uma requisição consumida não pode ser reaproveitado
type RequestFactory func(ctx context.Context) (*http.Request, error)

// DoWithRetry executa a requisição com backoff exponencial para 429 e 5xx.
// Outras respostas não-2xx falham de imediato com UpstreamError. Devolve o
// corpo já lido.
func DoWithRetry(ctx context.Context, client *http.Client, build RequestFactory, retry RetryConfig) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt <= retry.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := retry.BaseDelay * time.Duration(1<<(attempt-1))
			logrus.WithFields(logrus.Fields{
				"attempt": attempt,
				"delay":   delay.String(),
			}).Warn("Nova tentativa após falha transitória da plataforma")

			timer := time.NewTimer(delay)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				return nil, ctx.Err()
			}
		}

		req, err := build(ctx)
		if err != nil {
			return nil, err
		}

		body, err := doOnce(client, req)
		if err == nil {
			return body, nil
		}

		lastErr = err
		if !isTransient(err) {
			return nil, err
		}
	}

	return nil, lastErr
}

func doOnce(client *http.Client, req *http.Request) ([]byte, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}

// isTransient considera 429 e 5xx recuperáveis; erros de transporte também
func isTransient(err error) bool {
	upstream, ok := err.(*UpstreamError)
	if !ok {
		// Falha de rede sem resposta: vale nova tentativa
		return true
	}
	return upstream.StatusCode == http.StatusTooManyRequests || upstream.StatusCode >= 500
}
