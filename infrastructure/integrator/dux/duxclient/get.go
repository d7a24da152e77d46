package duxclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// DefaultRateLimitBackoff é a espera sugerida pelo Dux depois do aviso de limite
const DefaultRateLimitBackoff = 10 * time.Second

// O Dux responde 200 com texto puro quando o limite de requisições é atingido
const rateLimitMarker = "has alcanzado el"

// UseNumber preserva ids grandes que viriam como float64
var json = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

// Response é o corpo retornado pelo Dux: JSON quando possível, senão texto puro
type Response struct {
	StatusCode  int
	JSON        any
	Text        string
	RateLimited bool
	RetryAfter  time.Duration
}

func (r *Response) IsJSON() bool {
	return r.JSON != nil
}

// HTTPError é retornado para status fora da faixa 2xx
type HTTPError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("dux: requisição falhou com status %s: %s", e.Status, e.Body)
}

func (c *DuxClient) Get(ctx context.Context, resource string, params url.Values) (*Response, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "dux: erro ao analisar a URL base")
	}
	endpoint.Path = path.Join(endpoint.Path, strings.TrimLeft(resource, "/"))
	if len(params) > 0 {
		endpoint.RawQuery = params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "dux: erro ao criar a requisição")
	}

	// O Dux espera o token puro, sem prefixo Bearer
	req.Header.Set("authorization", c.token)
	req.Header.Set("accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "dux: erro ao executar GET %s", resource)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "dux: erro ao ler a resposta de %s", resource)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(body),
		}
	}

	return c.parse(resp.StatusCode, body), nil
}

func (c *DuxClient) parse(status int, body []byte) *Response {
	response := &Response{StatusCode: status}

	var parsed any
	if err := json.Unmarshal(body, &parsed); err == nil && parsed != nil {
		response.JSON = parsed
		return response
	}

	response.Text = string(body)
	if strings.Contains(strings.ToLower(response.Text), rateLimitMarker) {
		response.RateLimited = true
		response.RetryAfter = c.rateLimitBackoff
	}

	return response
}
