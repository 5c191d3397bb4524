package victorops

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/tphakala/go-victorops/internal/api"
)

// EscalationPolicyService provides operations on escalation policies.
type EscalationPolicyService interface {
	// Create creates a new escalation policy.
	Create(ctx context.Context, policy *EscalationPolicy, opts ...RequestOption) (*EscalationPolicy, *RequestDetails, error)

	// Get retrieves a single escalation policy by ID.
	Get(ctx context.Context, policyID string, opts ...RequestOption) (*EscalationPolicy, *RequestDetails, error)

	// List retrieves all escalation policies.
	List(ctx context.Context, opts ...RequestOption) (*EscalationPolicyList, *RequestDetails, error)

	// Delete removes an escalation policy.
	Delete(ctx context.Context, policyID string, opts ...RequestOption) (*RequestDetails, error)
}

// escalationPolicyService implements EscalationPolicyService.
type escalationPolicyService struct {
	transport *api.Transport
}

func newEscalationPolicyService(transport *api.Transport) *escalationPolicyService {
	return &escalationPolicyService{transport: transport}
}

// validatePolicyID checks that a policy ID is not empty.
func validatePolicyID(policyID string) error {
	if policyID == "" {
		return invalidInput("policy ID cannot be empty")
	}
	return nil
}

// Create creates a new escalation policy.
func (s *escalationPolicyService) Create(ctx context.Context, policy *EscalationPolicy, opts ...RequestOption) (*EscalationPolicy, *RequestDetails, error) {
	if policy == nil {
		return nil, nil, invalidInput("escalation policy cannot be nil")
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	var result EscalationPolicy
	details, err := exec(ctx, s.transport, http.MethodPost, "v1/policies", nil, policy, &result, reqCfg.headers)
	if err != nil {
		return nil, details, err
	}

	return &result, details, nil
}

// Get retrieves a single escalation policy by ID.
func (s *escalationPolicyService) Get(ctx context.Context, policyID string, opts ...RequestOption) (*EscalationPolicy, *RequestDetails, error) {
	if err := validatePolicyID(policyID); err != nil {
		return nil, nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	var result EscalationPolicy
	details, err := exec(ctx, s.transport, http.MethodGet, "v1/policies/"+url.PathEscape(policyID), nil, nil, &result, reqCfg.headers)
	if err != nil {
		var notFound *NotFoundError
		if errors.As(err, &notFound) {
			notFound.ResourceType = "escalation policy"
			notFound.ResourceID = policyID
		}
		return nil, details, err
	}

	return &result, details, nil
}

// List retrieves all escalation policies.
func (s *escalationPolicyService) List(ctx context.Context, opts ...RequestOption) (*EscalationPolicyList, *RequestDetails, error) {
	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	var result EscalationPolicyList
	details, err := exec(ctx, s.transport, http.MethodGet, "v1/policies", nil, nil, &result, reqCfg.headers)
	if err != nil {
		return nil, details, err
	}

	return &result, details, nil
}

// Delete removes an escalation policy.
func (s *escalationPolicyService) Delete(ctx context.Context, policyID string, opts ...RequestOption) (*RequestDetails, error) {
	if err := validatePolicyID(policyID); err != nil {
		return nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	return exec(ctx, s.transport, http.MethodDelete, "v1/policies/"+url.PathEscape(policyID), nil, nil, nil, reqCfg.headers)
}
