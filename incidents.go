package victorops

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/tphakala/go-victorops/internal/api"
)

// IncidentService provides operations on VictorOps incidents.
type IncidentService interface {
	// Get retrieves a single incident by number.
	Get(ctx context.Context, incidentID int, opts ...RequestOption) (*Incident, *RequestDetails, error)

	// List retrieves all current incidents.
	List(ctx context.Context, opts ...RequestOption) (*IncidentResponse, *RequestDetails, error)
}

// incidentService implements IncidentService.
type incidentService struct {
	transport *api.Transport
}

func newIncidentService(transport *api.Transport) *incidentService {
	return &incidentService{transport: transport}
}

// Get retrieves a single incident by number.
func (s *incidentService) Get(ctx context.Context, incidentID int, opts ...RequestOption) (*Incident, *RequestDetails, error) {
	if incidentID <= 0 {
		return nil, nil, invalidInput("incident ID must be positive")
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	var result Incident
	details, err := exec(ctx, s.transport, http.MethodGet, "v1/incidents/"+strconv.Itoa(incidentID), nil, nil, &result, reqCfg.headers)
	if err != nil {
		var notFound *NotFoundError
		if errors.As(err, &notFound) {
			notFound.ResourceType = "incident"
			notFound.ResourceID = strconv.Itoa(incidentID)
		}
		return nil, details, err
	}

	return &result, details, nil
}

// List retrieves all current incidents.
func (s *incidentService) List(ctx context.Context, opts ...RequestOption) (*IncidentResponse, *RequestDetails, error) {
	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	var result IncidentResponse
	details, err := exec(ctx, s.transport, http.MethodGet, "v1/incidents", nil, nil, &result, reqCfg.headers)
	if err != nil {
		return nil, details, err
	}

	return &result, details, nil
}
