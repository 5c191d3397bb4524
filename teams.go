package victorops

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/tphakala/go-victorops/internal/api"
)

// TeamService provides operations on VictorOps teams.
type TeamService interface {
	// Create creates a new team.
	Create(ctx context.Context, team *Team, opts ...RequestOption) (*Team, *RequestDetails, error)

	// Get retrieves a single team by ID or slug.
	Get(ctx context.Context, teamID string, opts ...RequestOption) (*Team, *RequestDetails, error)

	// List retrieves all teams.
	List(ctx context.Context, opts ...RequestOption) ([]Team, *RequestDetails, error)

	// Update modifies an existing team. The team's name must be set.
	Update(ctx context.Context, team *Team, opts ...RequestOption) (*Team, *RequestDetails, error)

	// Delete removes a team.
	Delete(ctx context.Context, teamID string, opts ...RequestOption) (*RequestDetails, error)

	// Members retrieves all members of a team.
	Members(ctx context.Context, teamID string, opts ...RequestOption) (*TeamMembers, *RequestDetails, error)

	// Admins retrieves all administrators of a team.
	Admins(ctx context.Context, teamID string, opts ...RequestOption) (*TeamAdmins, *RequestDetails, error)

	// AddMember adds a user to a team.
	AddMember(ctx context.Context, teamID, username string, opts ...RequestOption) (*RequestDetails, error)

	// RemoveMember removes a user from a team, replacing them in schedules
	// with the replacement user.
	RemoveMember(ctx context.Context, teamID, username, replacement string, opts ...RequestOption) (*RequestDetails, error)

	// IsMember reports whether a user is a member of a team. The
	// comparison is case-insensitive.
	IsMember(ctx context.Context, teamID, username string, opts ...RequestOption) (bool, *RequestDetails, error)
}

// teamService implements TeamService.
type teamService struct {
	transport *api.Transport
}

func newTeamService(transport *api.Transport) *teamService {
	return &teamService{transport: transport}
}

// validateTeamID checks that a team ID is not empty.
func validateTeamID(teamID string) error {
	if teamID == "" {
		return invalidInput("team ID cannot be empty")
	}
	return nil
}

// Create creates a new team.
func (s *teamService) Create(ctx context.Context, team *Team, opts ...RequestOption) (*Team, *RequestDetails, error) {
	if team == nil {
		return nil, nil, invalidInput("team cannot be nil")
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	var result Team
	details, err := exec(ctx, s.transport, http.MethodPost, "v1/team", nil, team, &result, reqCfg.headers)
	if err != nil {
		return nil, details, err
	}

	return &result, details, nil
}

// Get retrieves a single team by ID or slug.
func (s *teamService) Get(ctx context.Context, teamID string, opts ...RequestOption) (*Team, *RequestDetails, error) {
	if err := validateTeamID(teamID); err != nil {
		return nil, nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	var result Team
	details, err := exec(ctx, s.transport, http.MethodGet, "v1/team/"+url.PathEscape(teamID), nil, nil, &result, reqCfg.headers)
	if err != nil {
		var notFound *NotFoundError
		if errors.As(err, &notFound) {
			notFound.ResourceType = "team"
			notFound.ResourceID = teamID
		}
		return nil, details, err
	}

	return &result, details, nil
}

// List retrieves all teams.
func (s *teamService) List(ctx context.Context, opts ...RequestOption) ([]Team, *RequestDetails, error) {
	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	var result []Team
	details, err := exec(ctx, s.transport, http.MethodGet, "v1/team", nil, nil, &result, reqCfg.headers)
	if err != nil {
		return nil, details, err
	}

	return result, details, nil
}

// Update modifies an existing team.
func (s *teamService) Update(ctx context.Context, team *Team, opts ...RequestOption) (*Team, *RequestDetails, error) {
	if team == nil {
		return nil, nil, invalidInput("team cannot be nil")
	}
	if team.Name == nil || *team.Name == "" {
		return nil, nil, invalidInput("team name is required for team update")
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	var result Team
	details, err := exec(ctx, s.transport, http.MethodPut, "v1/team/"+url.PathEscape(*team.Name), nil, team, &result, reqCfg.headers)
	if err != nil {
		return nil, details, err
	}

	return &result, details, nil
}

// Delete removes a team.
func (s *teamService) Delete(ctx context.Context, teamID string, opts ...RequestOption) (*RequestDetails, error) {
	if err := validateTeamID(teamID); err != nil {
		return nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	return exec(ctx, s.transport, http.MethodDelete, "v1/team/"+url.PathEscape(teamID), nil, nil, nil, reqCfg.headers)
}

// Members retrieves all members of a team.
func (s *teamService) Members(ctx context.Context, teamID string, opts ...RequestOption) (*TeamMembers, *RequestDetails, error) {
	if err := validateTeamID(teamID); err != nil {
		return nil, nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	var result TeamMembers
	details, err := exec(ctx, s.transport, http.MethodGet, "v1/team/"+url.PathEscape(teamID)+"/members", nil, nil, &result, reqCfg.headers)
	if err != nil {
		return nil, details, err
	}

	return &result, details, nil
}

// Admins retrieves all administrators of a team.
func (s *teamService) Admins(ctx context.Context, teamID string, opts ...RequestOption) (*TeamAdmins, *RequestDetails, error) {
	if err := validateTeamID(teamID); err != nil {
		return nil, nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	var result TeamAdmins
	details, err := exec(ctx, s.transport, http.MethodGet, "v1/team/"+url.PathEscape(teamID)+"/admins", nil, nil, &result, reqCfg.headers)
	if err != nil {
		return nil, details, err
	}

	return &result, details, nil
}

// AddMember adds a user to a team.
func (s *teamService) AddMember(ctx context.Context, teamID, username string, opts ...RequestOption) (*RequestDetails, error) {
	if err := validateTeamID(teamID); err != nil {
		return nil, err
	}
	if err := validateUsername(username); err != nil {
		return nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	body := map[string]string{"username": username}
	return exec(ctx, s.transport, http.MethodPost, "v1/team/"+url.PathEscape(teamID)+"/members", nil, body, nil, reqCfg.headers)
}

// RemoveMember removes a user from a team.
func (s *teamService) RemoveMember(ctx context.Context, teamID, username, replacement string, opts ...RequestOption) (*RequestDetails, error) {
	if err := validateTeamID(teamID); err != nil {
		return nil, err
	}
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if replacement == "" {
		return nil, invalidInput("replacement user cannot be empty")
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	body := map[string]string{"replacement": replacement}
	return exec(ctx, s.transport, http.MethodDelete, "v1/team/"+url.PathEscape(teamID)+"/members/"+url.PathEscape(username), nil, body, nil, reqCfg.headers)
}

// IsMember reports whether a user is a member of a team.
func (s *teamService) IsMember(ctx context.Context, teamID, username string, opts ...RequestOption) (bool, *RequestDetails, error) {
	if err := validateUsername(username); err != nil {
		return false, nil, err
	}

	members, details, err := s.Members(ctx, teamID, opts...)
	if err != nil {
		return false, details, err
	}

	for _, member := range members.Members {
		if member.Username != nil && strings.EqualFold(*member.Username, username) {
			return true, details, nil
		}
	}

	return false, details, nil
}
