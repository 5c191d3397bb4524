package victorops

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/tphakala/go-victorops/internal/api"
)

// UserService provides operations on VictorOps users.
type UserService interface {
	// Create creates a new user.
	Create(ctx context.Context, user *User, opts ...RequestOption) (*User, *RequestDetails, error)

	// Get retrieves a single user by username.
	Get(ctx context.Context, username string, opts ...RequestOption) (*User, *RequestDetails, error)

	// Update modifies an existing user. The user's username must be set.
	Update(ctx context.Context, user *User, opts ...RequestOption) (*User, *RequestDetails, error)

	// Delete removes a user, replacing them in schedules and escalation
	// policies with replacementUser.
	Delete(ctx context.Context, username, replacementUser string, opts ...RequestOption) (*RequestDetails, error)

	// List retrieves all users using the v1 endpoint, which nests users in
	// a list of lists.
	List(ctx context.Context, opts ...RequestOption) (*UserList, *RequestDetails, error)

	// ListV2 retrieves all users using the v2 endpoint.
	ListV2(ctx context.Context, opts ...RequestOption) (*UserListV2, *RequestDetails, error)

	// GetByEmail retrieves the users matching an email address.
	GetByEmail(ctx context.Context, email string, opts ...RequestOption) (*UserListV2, *RequestDetails, error)

	// DefaultEmailContactID returns the ID of the user's default email
	// contact method.
	DefaultEmailContactID(ctx context.Context, username string, opts ...RequestOption) (int, *RequestDetails, error)
}

// userService implements UserService.
type userService struct {
	transport *api.Transport
}

func newUserService(transport *api.Transport) *userService {
	return &userService{transport: transport}
}

// validateUsername checks that a username is not empty.
func validateUsername(username string) error {
	if username == "" {
		return invalidInput("username cannot be empty")
	}
	return nil
}

// Create creates a new user.
func (s *userService) Create(ctx context.Context, user *User, opts ...RequestOption) (*User, *RequestDetails, error) {
	if user == nil {
		return nil, nil, invalidInput("user cannot be nil")
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	var result User
	details, err := exec(ctx, s.transport, http.MethodPost, "v1/user", nil, user, &result, reqCfg.headers)
	if err != nil {
		return nil, details, err
	}

	return &result, details, nil
}

// Get retrieves a single user by username.
func (s *userService) Get(ctx context.Context, username string, opts ...RequestOption) (*User, *RequestDetails, error) {
	if err := validateUsername(username); err != nil {
		return nil, nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	var result User
	details, err := exec(ctx, s.transport, http.MethodGet, "v1/user/"+url.PathEscape(username), nil, nil, &result, reqCfg.headers)
	if err != nil {
		var notFound *NotFoundError
		if errors.As(err, &notFound) {
			notFound.ResourceType = "user"
			notFound.ResourceID = username
		}
		return nil, details, err
	}

	return &result, details, nil
}

// Update modifies an existing user.
func (s *userService) Update(ctx context.Context, user *User, opts ...RequestOption) (*User, *RequestDetails, error) {
	if user == nil {
		return nil, nil, invalidInput("user cannot be nil")
	}
	if user.Username == nil || *user.Username == "" {
		return nil, nil, invalidInput("username is required for user update")
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	var result User
	details, err := exec(ctx, s.transport, http.MethodPut, "v1/user/"+url.PathEscape(*user.Username), nil, user, &result, reqCfg.headers)
	if err != nil {
		return nil, details, err
	}

	return &result, details, nil
}

// Delete removes a user.
func (s *userService) Delete(ctx context.Context, username, replacementUser string, opts ...RequestOption) (*RequestDetails, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if replacementUser == "" {
		return nil, invalidInput("replacement user cannot be empty")
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	body := map[string]string{"replacement": replacementUser}
	return exec(ctx, s.transport, http.MethodDelete, "v1/user/"+url.PathEscape(username), nil, body, nil, reqCfg.headers)
}

// List retrieves all users using the v1 endpoint.
func (s *userService) List(ctx context.Context, opts ...RequestOption) (*UserList, *RequestDetails, error) {
	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	var result UserList
	details, err := exec(ctx, s.transport, http.MethodGet, "v1/user", nil, nil, &result, reqCfg.headers)
	if err != nil {
		return nil, details, err
	}

	return &result, details, nil
}

// ListV2 retrieves all users using the v2 endpoint.
func (s *userService) ListV2(ctx context.Context, opts ...RequestOption) (*UserListV2, *RequestDetails, error) {
	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	var result UserListV2
	details, err := exec(ctx, s.transport, http.MethodGet, "v2/user", nil, nil, &result, reqCfg.headers)
	if err != nil {
		return nil, details, err
	}

	return &result, details, nil
}

// GetByEmail retrieves the users matching an email address.
func (s *userService) GetByEmail(ctx context.Context, email string, opts ...RequestOption) (*UserListV2, *RequestDetails, error) {
	if email == "" {
		return nil, nil, invalidInput("email cannot be empty")
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	query := url.Values{"email": []string{email}}

	var result UserListV2
	details, err := exec(ctx, s.transport, http.MethodGet, "v2/user", query, nil, &result, reqCfg.headers)
	if err != nil {
		return nil, details, err
	}

	return &result, details, nil
}

// DefaultEmailContactID returns the ID of the user's default email
// contact method.
func (s *userService) DefaultEmailContactID(ctx context.Context, username string, opts ...RequestOption) (int, *RequestDetails, error) {
	if err := validateUsername(username); err != nil {
		return 0, nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	var result ContactGroup
	details, err := exec(ctx, s.transport, http.MethodGet, "v1/user/"+url.PathEscape(username)+"/contact-methods/emails", nil, nil, &result, reqCfg.headers)
	if err != nil {
		return 0, details, err
	}

	for _, method := range result.ContactMethods {
		if method.Label != nil && *method.Label == "Default" && method.ID != nil {
			return *method.ID, details, nil
		}
	}

	return 0, details, &NotFoundError{
		APIError:     APIError{StatusCode: http.StatusNotFound, Message: "no default email contact method"},
		ResourceType: "email contact",
		ResourceID:   username,
	}
}
