package victorops

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tphakala/go-victorops/internal/api"
)

// ContactService provides operations on user contact methods.
type ContactService interface {
	// Create creates a new contact method for a user. The contact must
	// carry either a phone number or an email address.
	Create(ctx context.Context, username string, contact *Contact, opts ...RequestOption) (*Contact, *RequestDetails, error)

	// Get retrieves a single contact method by external ID.
	Get(ctx context.Context, username, contactExtID string, contactType ContactType, opts ...RequestOption) (*Contact, *RequestDetails, error)

	// GetByID retrieves a single contact method by numeric ID. The API
	// has no per-ID endpoint, so this lists the user's contact methods of
	// the given type and scans for a match.
	GetByID(ctx context.Context, username string, id int, contactType ContactType, opts ...RequestOption) (*Contact, *RequestDetails, error)

	// List retrieves all contact methods of a user, grouped by type.
	List(ctx context.Context, username string, opts ...RequestOption) (*ContactMethods, *RequestDetails, error)

	// Delete removes a contact method.
	Delete(ctx context.Context, username, contactExtID string, contactType ContactType, opts ...RequestOption) (*RequestDetails, error)
}

// contactService implements ContactService.
type contactService struct {
	transport *api.Transport
}

func newContactService(transport *api.Transport) *contactService {
	return &contactService{transport: transport}
}

// validateContactType checks that a contact type maps to an endpoint.
func validateContactType(contactType ContactType) error {
	if contactType.EndpointNoun() == "" {
		return invalidInput("unknown contact type")
	}
	return nil
}

// Create creates a new contact method for a user.
func (s *contactService) Create(ctx context.Context, username string, contact *Contact, opts ...RequestOption) (*Contact, *RequestDetails, error) {
	if err := validateUsername(username); err != nil {
		return nil, nil, err
	}
	if contact == nil {
		return nil, nil, invalidInput("contact cannot be nil")
	}

	contactType, ok := contact.Type()
	if !ok {
		return nil, nil, invalidInput("contact must have either a phone number or an email")
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	var result Contact
	path := "v1/user/" + url.PathEscape(username) + "/contact-methods/" + contactType.EndpointNoun()
	details, err := exec(ctx, s.transport, http.MethodPost, path, nil, contact, &result, reqCfg.headers)
	if err != nil {
		return nil, details, err
	}

	return &result, details, nil
}

// Get retrieves a single contact method by external ID.
func (s *contactService) Get(ctx context.Context, username, contactExtID string, contactType ContactType, opts ...RequestOption) (*Contact, *RequestDetails, error) {
	if err := validateUsername(username); err != nil {
		return nil, nil, err
	}
	if contactExtID == "" {
		return nil, nil, invalidInput("contact external ID cannot be empty")
	}
	if err := validateContactType(contactType); err != nil {
		return nil, nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	var result Contact
	path := "v1/user/" + url.PathEscape(username) + "/contact-methods/" + contactType.EndpointNoun() + "/" + url.PathEscape(contactExtID)
	details, err := exec(ctx, s.transport, http.MethodGet, path, nil, nil, &result, reqCfg.headers)
	if err != nil {
		var notFound *NotFoundError
		if errors.As(err, &notFound) {
			notFound.ResourceType = "contact"
			notFound.ResourceID = contactExtID
		}
		return nil, details, err
	}

	return &result, details, nil
}

// GetByID retrieves a single contact method by numeric ID.
func (s *contactService) GetByID(ctx context.Context, username string, id int, contactType ContactType, opts ...RequestOption) (*Contact, *RequestDetails, error) {
	if err := validateUsername(username); err != nil {
		return nil, nil, err
	}
	if err := validateContactType(contactType); err != nil {
		return nil, nil, err
	}

	// Device ID 0 means "All Devices", a pseudo-contact the API never
	// returns. Synthesize it without a network call.
	if contactType == ContactTypeDevice && id == 0 {
		contact := &Contact{
			Label: Ptr("All Devices"),
			Rank:  Ptr(0),
			ID:    Ptr(0),
			Value: Ptr("All Devices"),
		}
		return contact, &RequestDetails{StatusCode: http.StatusOK}, nil
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	var result ContactGroup
	path := "v1/user/" + url.PathEscape(username) + "/contact-methods/" + contactType.EndpointNoun()
	details, err := exec(ctx, s.transport, http.MethodGet, path, nil, nil, &result, reqCfg.headers)
	if err != nil {
		return nil, details, err
	}

	for _, contact := range result.ContactMethods {
		if contact.ID != nil && *contact.ID == id {
			return &contact, details, nil
		}
	}

	return nil, details, &NotFoundError{
		APIError:     APIError{StatusCode: http.StatusNotFound, Message: "contact method not found"},
		ResourceType: "contact",
		ResourceID:   strconv.Itoa(id),
	}
}

// List retrieves all contact methods of a user, grouped by type.
func (s *contactService) List(ctx context.Context, username string, opts ...RequestOption) (*ContactMethods, *RequestDetails, error) {
	if err := validateUsername(username); err != nil {
		return nil, nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	var result ContactMethods
	path := "v1/user/" + url.PathEscape(username) + "/contact-methods"
	details, err := exec(ctx, s.transport, http.MethodGet, path, nil, nil, &result, reqCfg.headers)
	if err != nil {
		return nil, details, err
	}

	return &result, details, nil
}

// Delete removes a contact method.
func (s *contactService) Delete(ctx context.Context, username, contactExtID string, contactType ContactType, opts ...RequestOption) (*RequestDetails, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if contactExtID == "" {
		return nil, invalidInput("contact external ID cannot be empty")
	}
	if err := validateContactType(contactType); err != nil {
		return nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	path := "v1/user/" + url.PathEscape(username) + "/contact-methods/" + contactType.EndpointNoun() + "/" + url.PathEscape(contactExtID)
	return exec(ctx, s.transport, http.MethodDelete, path, nil, nil, nil, reqCfg.headers)
}
