package victorops

import "time"

// RequestDetails captures the raw request/response metadata for a single
// API call. It is returned alongside every typed payload.
type RequestDetails struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int

	// RequestBody is the JSON body that was sent, empty when the request
	// had none.
	RequestBody string

	// ResponseBody is the raw response body text.
	ResponseBody string
}

// Ptr returns a pointer to v. It is a convenience for populating the
// optional fields of request types.
func Ptr[T any](v T) *T { return &v }

// PagedEntity contains basic name and slug information for a paged
// team or policy.
type PagedEntity struct {
	Name *string `json:"name,omitempty"`
	Slug *string `json:"slug,omitempty"`
}

// PagedPolicy identifies an escalation policy paged for an incident.
type PagedPolicy struct {
	Policy *PagedEntity `json:"policy,omitempty"`
	Team   *PagedEntity `json:"team,omitempty"`
}

// Transition represents a state transition in an incident timeline.
// The API capitalizes most transition keys; the alert fields are the
// exception.
type Transition struct {
	Name     *string    `json:"Name,omitempty"`
	At       *time.Time `json:"At,omitempty"`
	Message  *string    `json:"Message,omitempty"`
	By       *string    `json:"By,omitempty"`
	Manually *bool      `json:"Manually,omitempty"`
	AlertID  *string    `json:"alertId,omitempty"`
	AlertURL *string    `json:"alertUrl,omitempty"`
}

// Incident represents a VictorOps incident.
type Incident struct {
	AlertCount        *int          `json:"alertCount,omitempty"`
	CurrentPhase      *string       `json:"currentPhase,omitempty"`
	EntityDisplayName *string       `json:"entityDisplayName,omitempty"`
	EntityID          *string       `json:"entityId,omitempty"`
	EntityState       *string       `json:"entityState,omitempty"`
	EntityType        *string       `json:"entityType,omitempty"`
	Host              *string       `json:"host,omitempty"`
	IncidentNumber    *string       `json:"incidentNumber,omitempty"`
	LastAlertID       *string       `json:"lastAlertId,omitempty"`
	LastAlertTime     *time.Time    `json:"lastAlertTime,omitempty"`
	Service           *string       `json:"service,omitempty"`
	StartTime         *time.Time    `json:"startTime,omitempty"`
	PagedTeams        []string      `json:"pagedTeams,omitempty"`
	PagedUsers        []string      `json:"pagedUsers,omitempty"`
	PagedPolicies     []PagedPolicy `json:"pagedPolicies,omitempty"`
	Transitions       []Transition  `json:"transitions,omitempty"`
}

// IncidentResponse is the response for listing incidents.
type IncidentResponse struct {
	Incidents []Incident `json:"incidents,omitempty"`
}

// User represents a VictorOps user.
type User struct {
	FirstName           *string `json:"firstName,omitempty"`
	LastName            *string `json:"lastName,omitempty"`
	Username            *string `json:"username,omitempty"`
	Email               *string `json:"email,omitempty"`
	Admin               *bool   `json:"admin,omitempty"`
	ExpirationHours     *int    `json:"expirationHours,omitempty"`
	CreatedAt           *string `json:"createdAt,omitempty"`
	PasswordLastUpdated *string `json:"passwordLastUpdated,omitempty"`
	Verified            *bool   `json:"verified,omitempty"`
}

// UserList is the v1 user listing response. The v1 API nests the users
// in a list of lists.
type UserList struct {
	Users [][]User `json:"users"`
}

// UserListV2 is the v2 user listing response.
type UserListV2 struct {
	Users []User `json:"users"`
}

// Team represents a VictorOps team.
type Team struct {
	Name          *string `json:"name,omitempty"`
	Slug          *string `json:"slug,omitempty"`
	MemberCount   *int    `json:"memberCount,omitempty"`
	Version       *int    `json:"version,omitempty"`
	IsDefaultTeam *bool   `json:"isDefaultTeam,omitempty"`
}

// TeamMembers is the response for listing team members.
type TeamMembers struct {
	Members []User `json:"members,omitempty"`
}

// Admin represents a team administrator.
type Admin struct {
	Username  *string `json:"username,omitempty"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	SelfURL   *string `json:"_selfUrl,omitempty"`
}

// TeamAdmins is the response for listing team administrators.
type TeamAdmins struct {
	Admins []Admin `json:"admin,omitempty"`
}

// TeamRef identifies a team in schedule responses.
type TeamRef struct {
	Name *string `json:"name,omitempty"`
	Slug *string `json:"slug,omitempty"`
}

// PolicyRef identifies an escalation policy in schedule responses.
type PolicyRef struct {
	Name *string `json:"name,omitempty"`
	Slug *string `json:"slug,omitempty"`
}

// UserRef identifies a user in schedule responses.
type UserRef struct {
	Username *string `json:"username,omitempty"`
}

// OnCallOverride represents an on-call override.
type OnCallOverride struct {
	OrigOnCallUser     *UserRef   `json:"origOnCallUser,omitempty"`
	OverrideOnCallUser *UserRef   `json:"overrideOnCallUser,omitempty"`
	Start              *time.Time `json:"start,omitempty"`
	End                *time.Time `json:"end,omitempty"`
	Policy             *PolicyRef `json:"policy,omitempty"`
}

// OnCallRoll represents a single on-call rotation period.
type OnCallRoll struct {
	Start      *time.Time `json:"start,omitempty"`
	End        *time.Time `json:"end,omitempty"`
	OnCallUser *UserRef   `json:"onCallUser,omitempty"`
	IsRoll     *bool      `json:"isRoll,omitempty"`
}

// OnCallEntry represents an on-call schedule entry.
type OnCallEntry struct {
	OnCallUser         *UserRef     `json:"onCallUser,omitempty"`
	OverrideOnCallUser *UserRef     `json:"overrideOnCallUser,omitempty"`
	OnCallType         *string      `json:"onCallType,omitempty"`
	RotationName       *string      `json:"rotationName,omitempty"`
	ShiftName          *string      `json:"shiftName,omitempty"`
	ShiftRoll          *time.Time   `json:"shiftRoll,omitempty"`
	Rolls              []OnCallRoll `json:"rolls,omitempty"`
}

// PolicySchedule is the on-call schedule of one escalation policy.
type PolicySchedule struct {
	Policy    *PolicyRef       `json:"policy,omitempty"`
	Schedule  []OnCallEntry    `json:"schedule,omitempty"`
	Overrides []OnCallOverride `json:"overrides,omitempty"`
}

// TeamSchedule is the on-call schedule of a team.
type TeamSchedule struct {
	Team      *TeamRef         `json:"team,omitempty"`
	Schedules []PolicySchedule `json:"schedules,omitempty"`
}

// UserSchedule is the on-call schedule of a user across their teams.
type UserSchedule struct {
	TeamSchedules []TeamSchedule `json:"teamSchedules,omitempty"`
}

// ScheduleOptions selects the window of an on-call schedule request.
type ScheduleOptions struct {
	// DaysForward is the number of days of schedule to return.
	DaysForward int `url:"daysForward"`

	// DaysSkip is the number of days to skip from today.
	DaysSkip int `url:"daysSkip"`

	// Step is the escalation policy step to return the schedule for.
	Step int `url:"step"`
}

// TakeRequest asks to reassign on-call duty from one user to another.
type TakeRequest struct {
	FromUser string `json:"fromUser,omitempty"`
	ToUser   string `json:"toUser,omitempty"`
}

// TakeResponse is the result of a take-on-call request.
type TakeResponse struct {
	Result *string `json:"result,omitempty"`
}

// EscalationPolicyStepEntry is a single target within an escalation
// policy step. Exactly one of the target maps is populated depending on
// ExecutionType.
type EscalationPolicyStepEntry struct {
	ExecutionType *string           `json:"executionType,omitempty"`
	User          map[string]string `json:"user,omitempty"`
	RotationGroup map[string]string `json:"rotationGroup,omitempty"`
	Webhook       map[string]string `json:"webhook,omitempty"`
	Email         map[string]string `json:"email,omitempty"`
	TargetPolicy  map[string]string `json:"targetPolicy,omitempty"`
}

// EscalationPolicyStep is one step of an escalation policy.
type EscalationPolicyStep struct {
	// Timeout is the number of seconds before escalating to the next step.
	Timeout int                         `json:"timeout"`
	Entries []EscalationPolicyStepEntry `json:"entries"`
}

// EscalationPolicy represents an escalation policy.
type EscalationPolicy struct {
	Name                       string                 `json:"name"`
	TeamID                     string                 `json:"teamSlug"`
	IgnoreCustomPagingPolicies bool                   `json:"ignoreCustomPagingPolicies"`
	Steps                      []EscalationPolicyStep `json:"steps"`
	ID                         string                 `json:"slug"`
}

// EscalationPolicySummary is the name/slug pair used in policy listings.
type EscalationPolicySummary struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// EscalationPolicyListElement pairs a policy with its owning team.
type EscalationPolicyListElement struct {
	Policy EscalationPolicySummary `json:"policy"`
	Team   EscalationPolicySummary `json:"team"`
}

// EscalationPolicyList is the response for listing escalation policies.
type EscalationPolicyList struct {
	Policies []EscalationPolicyListElement `json:"policies"`
}

// RoutingKey represents a routing key to create.
type RoutingKey struct {
	RoutingKey *string  `json:"routingKey,omitempty"`
	Targets    []string `json:"targets,omitempty"`
}

// RoutingKeyTarget is a target of an existing routing key.
type RoutingKeyTarget struct {
	PolicySlug *string `json:"policySlug,omitempty"`
}

// RoutingKeyEntry describes an existing routing key.
type RoutingKeyEntry struct {
	RoutingKey *string            `json:"routingKey,omitempty"`
	Targets    []RoutingKeyTarget `json:"targets,omitempty"`
}

// RoutingKeyList is the response for listing routing keys.
type RoutingKeyList struct {
	RoutingKeys []RoutingKeyEntry `json:"routingKeys,omitempty"`
}

// ContactType identifies the kind of a contact method.
type ContactType string

const (
	ContactTypePhone  ContactType = "phone"
	ContactTypeEmail  ContactType = "email"
	ContactTypeDevice ContactType = "device"
)

// EndpointNoun returns the contact-methods path segment for the type.
func (c ContactType) EndpointNoun() string {
	switch c {
	case ContactTypePhone:
		return "phones"
	case ContactTypeEmail:
		return "emails"
	case ContactTypeDevice:
		return "devices"
	default:
		return ""
	}
}

// ContactTypeFromNotification maps a notification type string to a
// ContactType. Both "phone" and "sms" map to phones, "push" to devices.
func ContactTypeFromNotification(notificationType string) (ContactType, bool) {
	switch notificationType {
	case "push":
		return ContactTypeDevice, true
	case "email":
		return ContactTypeEmail, true
	case "phone", "sms":
		return ContactTypePhone, true
	default:
		return "", false
	}
}

// Contact represents a contact method of a user.
type Contact struct {
	PhoneNumber *string `json:"phone,omitempty"`
	Email       *string `json:"email,omitempty"`
	Label       *string `json:"label,omitempty"`
	Rank        *int    `json:"rank,omitempty"`
	ExtID       *string `json:"extId,omitempty"`
	ID          *int    `json:"id,omitempty"`
	Value       *string `json:"value,omitempty"`
	Verified    *string `json:"verified,omitempty"`
}

// Type derives the contact type from the populated fields. It reports
// false when neither a phone number nor an email is present.
func (c *Contact) Type() (ContactType, bool) {
	switch {
	case c.PhoneNumber != nil:
		return ContactTypePhone, true
	case c.Email != nil:
		return ContactTypeEmail, true
	default:
		return "", false
	}
}

// ContactGroup is a list of contact methods of a single type.
type ContactGroup struct {
	ContactMethods []Contact `json:"contactMethods"`
}

// ContactMethods groups all contact methods of a user by type.
type ContactMethods struct {
	Phones  *ContactGroup `json:"phones,omitempty"`
	Emails  *ContactGroup `json:"emails,omitempty"`
	Devices *ContactGroup `json:"devices,omitempty"`
}
