package duxclient

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/vfg2006/vendor-kpi-api/internal/config"
)

const defaultTimeout = 30 * time.Second

type Client interface {
	// Get executa um GET em path com os parâmetros informados. Não há retentativa automática.
	Get(ctx context.Context, path string, params url.Values) (*Response, error)
}

type DuxClient struct {
	httpClient       *http.Client
	baseURL          string
	token            string
	rateLimitBackoff time.Duration
}

// NewClient cria um cliente somente leitura da API REST do Dux
func NewClient(cfg *config.Config) Client {
	timeout := cfg.Dux.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	backoff := cfg.Dux.RateLimitBackoff
	if backoff <= 0 {
		backoff = DefaultRateLimitBackoff
	}

	return &DuxClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:          cfg.Dux.URL,
		token:            cfg.Dux.Token,
		rateLimitBackoff: backoff,
	}
}
