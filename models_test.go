package victorops_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	victorops "github.com/tphakala/go-victorops"
)

func TestContactTypeEndpointNoun(t *testing.T) {
	assert.Equal(t, "phones", victorops.ContactTypePhone.EndpointNoun())
	assert.Equal(t, "emails", victorops.ContactTypeEmail.EndpointNoun())
	assert.Equal(t, "devices", victorops.ContactTypeDevice.EndpointNoun())
	assert.Empty(t, victorops.ContactType("pager").EndpointNoun())
}

func TestContactTypeFromNotification(t *testing.T) {
	tests := []struct {
		notification string
		want         victorops.ContactType
		ok           bool
	}{
		{"phone", victorops.ContactTypePhone, true},
		{"sms", victorops.ContactTypePhone, true},
		{"email", victorops.ContactTypeEmail, true},
		{"push", victorops.ContactTypeDevice, true},
		{"carrier-pigeon", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.notification, func(t *testing.T) {
			got, ok := victorops.ContactTypeFromNotification(tt.notification)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContactType(t *testing.T) {
	t.Run("phone", func(t *testing.T) {
		c := &victorops.Contact{PhoneNumber: victorops.Ptr("+15555551234")}
		ct, ok := c.Type()
		require.True(t, ok)
		assert.Equal(t, victorops.ContactTypePhone, ct)
	})

	t.Run("email", func(t *testing.T) {
		c := &victorops.Contact{Email: victorops.Ptr("oncall@example.com")}
		ct, ok := c.Type()
		require.True(t, ok)
		assert.Equal(t, victorops.ContactTypeEmail, ct)
	})

	t.Run("phone wins over email", func(t *testing.T) {
		c := &victorops.Contact{
			PhoneNumber: victorops.Ptr("+15555551234"),
			Email:       victorops.Ptr("oncall@example.com"),
		}
		ct, ok := c.Type()
		require.True(t, ok)
		assert.Equal(t, victorops.ContactTypePhone, ct)
	})

	t.Run("neither", func(t *testing.T) {
		c := &victorops.Contact{Label: victorops.Ptr("Work")}
		_, ok := c.Type()
		assert.False(t, ok)
	})
}

func TestUserOptionalFields(t *testing.T) {
	t.Run("absent fields stay absent", func(t *testing.T) {
		user := victorops.User{Username: victorops.Ptr("jdoe")}

		data, err := json.Marshal(user)
		require.NoError(t, err)
		assert.JSONEq(t, `{"username":"jdoe"}`, string(data))

		var decoded victorops.User
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Nil(t, decoded.FirstName)
		assert.Nil(t, decoded.Admin)
		require.NotNil(t, decoded.Username)
		assert.Equal(t, "jdoe", *decoded.Username)
	})

	t.Run("false is distinct from absent", func(t *testing.T) {
		user := victorops.User{
			Username: victorops.Ptr("jdoe"),
			Admin:    victorops.Ptr(false),
		}

		data, err := json.Marshal(user)
		require.NoError(t, err)
		assert.JSONEq(t, `{"username":"jdoe","admin":false}`, string(data))
	})
}

func TestTransitionFieldNames(t *testing.T) {
	body := `{
		"Name": "ACKED",
		"At": "2024-05-01T12:00:00Z",
		"By": "jdoe",
		"Manually": true,
		"alertId": "abc123",
		"alertUrl": "https://portal.victorops.com/alert/abc123"
	}`

	var transition victorops.Transition
	require.NoError(t, json.Unmarshal([]byte(body), &transition))

	require.NotNil(t, transition.Name)
	assert.Equal(t, "ACKED", *transition.Name)
	require.NotNil(t, transition.At)
	assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), transition.At.UTC())
	require.NotNil(t, transition.By)
	assert.Equal(t, "jdoe", *transition.By)
	require.NotNil(t, transition.Manually)
	assert.True(t, *transition.Manually)
	require.NotNil(t, transition.AlertID)
	assert.Equal(t, "abc123", *transition.AlertID)
	require.NotNil(t, transition.AlertURL)
}

func TestEscalationPolicyFieldNames(t *testing.T) {
	policy := victorops.EscalationPolicy{
		Name:   "Primary",
		TeamID: "team-abc123",
		ID:     "pol-def456",
		Steps: []victorops.EscalationPolicyStep{
			{
				Timeout: 300,
				Entries: []victorops.EscalationPolicyStepEntry{
					{
						ExecutionType: victorops.Ptr("user"),
						User:          map[string]string{"username": "jdoe"},
					},
				},
			},
		},
	}

	data, err := json.Marshal(policy)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "team-abc123", raw["teamSlug"])
	assert.Equal(t, "pol-def456", raw["slug"])
	assert.Contains(t, raw, "ignoreCustomPagingPolicies")
}

func TestTeamAdminsFieldName(t *testing.T) {
	// The API returns the admin list under the singular "admin" key.
	body := `{"admin":[{"username":"jdoe","firstName":"Jane"}]}`

	var admins victorops.TeamAdmins
	require.NoError(t, json.Unmarshal([]byte(body), &admins))
	require.Len(t, admins.Admins, 1)
	require.NotNil(t, admins.Admins[0].Username)
	assert.Equal(t, "jdoe", *admins.Admins[0].Username)
}
