package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shoplite/shopmanager-api/internal/domain/gateway"
	"github.com/shoplite/shopmanager-api/pkg/apperror"
)

// restGateway implements the remote gateway contract against a conventional
// JSON-over-HTTP backend: GET/POST on /{resource}, PUT/DELETE on
// /{resource}/{id}. The client timeout is the transport deadline; timeouts
// and connection failures surface as transport errors.
type restGateway[T any, PT gateway.Record[T]] struct {
	client   *http.Client
	baseURL  string
	resource string
	apiKey   string
}

// NewRESTGateway creates an HTTP-backed gateway for one entity type.
// resource is the path segment of the collection, e.g. "customers".
func NewRESTGateway[T any, PT gateway.Record[T]](baseURL, resource, apiKey string, timeout time.Duration) gateway.Gateway[T] {
	return &restGateway[T, PT]{
		client:   &http.Client{Timeout: timeout},
		baseURL:  baseURL,
		resource: resource,
		apiKey:   apiKey,
	}
}

func (g *restGateway[T, PT]) do(ctx context.Context, method, url string, body any, out any) error {
	op := fmt.Sprintf("%s %s", method, g.resource)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return apperror.NewBadRequestError("invalid " + g.resource + " payload")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return apperror.NewTransportError(op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return apperror.NewTransportError(op, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return apperror.NewNotFoundError(g.resource)
	case resp.StatusCode == http.StatusUnprocessableEntity || resp.StatusCode == http.StatusBadRequest:
		return apperror.NewAppError(resp.StatusCode, "backend rejected "+g.resource+" payload")
	case resp.StatusCode >= 300:
		return apperror.NewTransportError(op, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperror.NewTransportError(op, err)
	}
	return nil
}

func (g *restGateway[T, PT]) List(ctx context.Context) ([]T, error) {
	var items []T
	url := fmt.Sprintf("%s/%s", g.baseURL, g.resource)
	if err := g.do(ctx, http.MethodGet, url, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (g *restGateway[T, PT]) Create(ctx context.Context, item T) (T, error) {
	var created T
	url := fmt.Sprintf("%s/%s", g.baseURL, g.resource)
	if err := g.do(ctx, http.MethodPost, url, item, &created); err != nil {
		return item, err
	}
	return created, nil
}

func (g *restGateway[T, PT]) Update(ctx context.Context, item T) (T, error) {
	var updated T
	url := fmt.Sprintf("%s/%s/%s", g.baseURL, g.resource, PT(&item).EntityID())
	if err := g.do(ctx, http.MethodPut, url, item, &updated); err != nil {
		return item, err
	}
	return updated, nil
}

func (g *restGateway[T, PT]) Delete(ctx context.Context, id string) error {
	url := fmt.Sprintf("%s/%s/%s", g.baseURL, g.resource, id)
	return g.do(ctx, http.MethodDelete, url, nil, nil)
}
