package victorops

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/go-querystring/query"

	"github.com/tphakala/go-victorops/internal/api"
)

// OnCallService provides access to on-call schedules and takes.
type OnCallService interface {
	// TeamSchedule retrieves the on-call schedule of a team.
	TeamSchedule(ctx context.Context, teamSlug string, schedOpts *ScheduleOptions, opts ...RequestOption) (*TeamSchedule, *RequestDetails, error)

	// UserSchedule retrieves the on-call schedule of a user across all of
	// their teams.
	UserSchedule(ctx context.Context, username string, schedOpts *ScheduleOptions, opts ...RequestOption) (*UserSchedule, *RequestDetails, error)

	// TakeForTeam reassigns on-call duty within a team's current shift.
	TakeForTeam(ctx context.Context, teamSlug string, take *TakeRequest, opts ...RequestOption) (*TakeResponse, *RequestDetails, error)

	// TakeForPolicy reassigns on-call duty within an escalation policy's
	// current shift.
	TakeForPolicy(ctx context.Context, policySlug string, take *TakeRequest, opts ...RequestOption) (*TakeResponse, *RequestDetails, error)
}

// onCallService implements OnCallService.
type onCallService struct {
	transport *api.Transport
}

func newOnCallService(transport *api.Transport) *onCallService {
	return &onCallService{transport: transport}
}

// scheduleQuery encodes schedule options as query parameters.
func scheduleQuery(opts *ScheduleOptions) (url.Values, error) {
	if opts == nil {
		opts = &ScheduleOptions{}
	}
	values, err := query.Values(opts)
	if err != nil {
		return nil, &SerializationError{Op: "marshal", Err: err}
	}
	return values, nil
}

// TeamSchedule retrieves the on-call schedule of a team.
func (s *onCallService) TeamSchedule(ctx context.Context, teamSlug string, schedOpts *ScheduleOptions, opts ...RequestOption) (*TeamSchedule, *RequestDetails, error) {
	if teamSlug == "" {
		return nil, nil, invalidInput("team slug cannot be empty")
	}

	values, err := scheduleQuery(schedOpts)
	if err != nil {
		return nil, nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	var result TeamSchedule
	details, err := exec(ctx, s.transport, http.MethodGet, "v2/team/"+url.PathEscape(teamSlug)+"/oncall/schedule", values, nil, &result, reqCfg.headers)
	if err != nil {
		return nil, details, err
	}

	return &result, details, nil
}

// UserSchedule retrieves the on-call schedule of a user.
func (s *onCallService) UserSchedule(ctx context.Context, username string, schedOpts *ScheduleOptions, opts ...RequestOption) (*UserSchedule, *RequestDetails, error) {
	if err := validateUsername(username); err != nil {
		return nil, nil, err
	}

	values, err := scheduleQuery(schedOpts)
	if err != nil {
		return nil, nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	var result UserSchedule
	details, err := exec(ctx, s.transport, http.MethodGet, "v2/user/"+url.PathEscape(username)+"/oncall/schedule", values, nil, &result, reqCfg.headers)
	if err != nil {
		return nil, details, err
	}

	return &result, details, nil
}

// TakeForTeam reassigns on-call duty within a team's current shift.
func (s *onCallService) TakeForTeam(ctx context.Context, teamSlug string, take *TakeRequest, opts ...RequestOption) (*TakeResponse, *RequestDetails, error) {
	if teamSlug == "" {
		return nil, nil, invalidInput("team slug cannot be empty")
	}

	return s.take(ctx, "v1/team/"+url.PathEscape(teamSlug)+"/oncall/user", take, opts...)
}

// TakeForPolicy reassigns on-call duty within an escalation policy's
// current shift.
func (s *onCallService) TakeForPolicy(ctx context.Context, policySlug string, take *TakeRequest, opts ...RequestOption) (*TakeResponse, *RequestDetails, error) {
	if policySlug == "" {
		return nil, nil, invalidInput("policy slug cannot be empty")
	}

	return s.take(ctx, "v1/policies/"+url.PathEscape(policySlug)+"/oncall/user", take, opts...)
}

func (s *onCallService) take(ctx context.Context, path string, take *TakeRequest, opts ...RequestOption) (*TakeResponse, *RequestDetails, error) {
	if take == nil {
		return nil, nil, invalidInput("take request cannot be nil")
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	var result TakeResponse
	details, err := exec(ctx, s.transport, http.MethodPatch, path, nil, take, &result, reqCfg.headers)
	if err != nil {
		return nil, details, err
	}

	return &result, details, nil
}
