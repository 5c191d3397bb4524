package victorops

import (
	"context"
	"net/http"

	"github.com/tphakala/go-victorops/internal/api"
)

// RoutingKeyService provides operations on routing keys.
type RoutingKeyService interface {
	// Create creates a new routing key.
	Create(ctx context.Context, key *RoutingKey, opts ...RequestOption) (*RoutingKey, *RequestDetails, error)

	// List retrieves all routing keys.
	List(ctx context.Context, opts ...RequestOption) (*RoutingKeyList, *RequestDetails, error)

	// Get retrieves a single routing key by name. The API has no
	// per-key endpoint, so this lists all keys and scans for a match.
	Get(ctx context.Context, keyName string, opts ...RequestOption) (*RoutingKeyEntry, *RequestDetails, error)
}

// routingKeyService implements RoutingKeyService.
type routingKeyService struct {
	transport *api.Transport
}

func newRoutingKeyService(transport *api.Transport) *routingKeyService {
	return &routingKeyService{transport: transport}
}

// Create creates a new routing key.
func (s *routingKeyService) Create(ctx context.Context, key *RoutingKey, opts ...RequestOption) (*RoutingKey, *RequestDetails, error) {
	if key == nil {
		return nil, nil, invalidInput("routing key cannot be nil")
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	var result RoutingKey
	details, err := exec(ctx, s.transport, http.MethodPost, "v1/org/routing-keys", nil, key, &result, reqCfg.headers)
	if err != nil {
		return nil, details, err
	}

	return &result, details, nil
}

// List retrieves all routing keys.
func (s *routingKeyService) List(ctx context.Context, opts ...RequestOption) (*RoutingKeyList, *RequestDetails, error) {
	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	var result RoutingKeyList
	details, err := exec(ctx, s.transport, http.MethodGet, "v1/org/routing-keys", nil, nil, &result, reqCfg.headers)
	if err != nil {
		return nil, details, err
	}

	return &result, details, nil
}

// Get retrieves a single routing key by name.
func (s *routingKeyService) Get(ctx context.Context, keyName string, opts ...RequestOption) (*RoutingKeyEntry, *RequestDetails, error) {
	if keyName == "" {
		return nil, nil, invalidInput("routing key name cannot be empty")
	}

	list, details, err := s.List(ctx, opts...)
	if err != nil {
		return nil, details, err
	}

	for _, key := range list.RoutingKeys {
		if key.RoutingKey != nil && *key.RoutingKey == keyName {
			return &key, details, nil
		}
	}

	return nil, details, &NotFoundError{
		APIError:     APIError{StatusCode: http.StatusNotFound, Message: "routing key not found"},
		ResourceType: "routing key",
		ResourceID:   keyName,
	}
}
