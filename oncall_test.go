package victorops_test

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	victorops "github.com/tphakala/go-victorops"
)

const teamScheduleBody = `{
	"team": {"name": "Operations", "slug": "team-abc123"},
	"schedules": [
		{
			"policy": {"name": "Primary", "slug": "pol-def456"},
			"schedule": [
				{
					"onCallUser": {"username": "jdoe"},
					"onCallType": "rotation_group",
					"rotationName": "Weekly",
					"shiftName": "Day Shift",
					"rolls": [
						{
							"start": "2024-05-01T08:00:00Z",
							"end": "2024-05-01T20:00:00Z",
							"onCallUser": {"username": "jdoe"},
							"isRoll": true
						}
					]
				}
			],
			"overrides": []
		}
	]
}`

func TestOnCallTeamSchedule(t *testing.T) {
	t.Run("success with schedule options", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api-public/v2/team/team-abc123/oncall/schedule", r.URL.Path)
			assert.Equal(t, "7", r.URL.Query().Get("daysForward"))
			assert.Equal(t, "2", r.URL.Query().Get("daysSkip"))
			assert.Equal(t, "0", r.URL.Query().Get("step"))

			w.Write([]byte(teamScheduleBody))
		})

		schedule, details, err := client.OnCall.TeamSchedule(context.Background(), "team-abc123", &victorops.ScheduleOptions{
			DaysForward: 7,
			DaysSkip:    2,
		})
		require.NoError(t, err)
		require.NotNil(t, schedule)
		require.NotNil(t, details)

		require.NotNil(t, schedule.Team)
		require.NotNil(t, schedule.Team.Slug)
		assert.Equal(t, "team-abc123", *schedule.Team.Slug)
		require.Len(t, schedule.Schedules, 1)
		require.Len(t, schedule.Schedules[0].Schedule, 1)
		entry := schedule.Schedules[0].Schedule[0]
		require.NotNil(t, entry.OnCallUser)
		require.NotNil(t, entry.OnCallUser.Username)
		assert.Equal(t, "jdoe", *entry.OnCallUser.Username)
		require.Len(t, entry.Rolls, 1)
	})

	t.Run("nil options default to zero window", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "0", r.URL.Query().Get("daysForward"))
			assert.Equal(t, "0", r.URL.Query().Get("daysSkip"))
			assert.Equal(t, "0", r.URL.Query().Get("step"))

			w.Write([]byte(teamScheduleBody))
		})

		_, _, err := client.OnCall.TeamSchedule(context.Background(), "team-abc123", nil)
		require.NoError(t, err)
	})

	t.Run("empty team slug skips network", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request should be made for an empty team slug")
		})

		_, _, err := client.OnCall.TeamSchedule(context.Background(), "", nil)
		require.Error(t, err)

		var validationErr *victorops.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})
}

func TestOnCallUserSchedule(t *testing.T) {
	client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api-public/v2/user/jdoe/oncall/schedule", r.URL.Path)
		assert.Equal(t, "14", r.URL.Query().Get("daysForward"))

		w.Write([]byte(`{"teamSchedules": [` + teamScheduleBody + `]}`))
	})

	schedule, _, err := client.OnCall.UserSchedule(context.Background(), "jdoe", &victorops.ScheduleOptions{
		DaysForward: 14,
	})
	require.NoError(t, err)
	require.Len(t, schedule.TeamSchedules, 1)
	require.NotNil(t, schedule.TeamSchedules[0].Team)
}

func TestOnCallTakeForTeam(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPatch, r.Method)
			assert.Equal(t, "/api-public/v1/team/team-abc123/oncall/user", r.URL.Path)

			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			assert.JSONEq(t, `{"fromUser":"jdoe","toUser":"jsmith"}`, string(body))

			w.Write([]byte(`{"result":"jsmith is now on-call"}`))
		})

		resp, details, err := client.OnCall.TakeForTeam(context.Background(), "team-abc123", &victorops.TakeRequest{
			FromUser: "jdoe",
			ToUser:   "jsmith",
		})
		require.NoError(t, err)
		require.NotNil(t, details)
		require.NotNil(t, resp.Result)
		assert.Equal(t, "jsmith is now on-call", *resp.Result)
	})

	t.Run("nil take request skips network", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request should be made for a nil take request")
		})

		_, _, err := client.OnCall.TakeForTeam(context.Background(), "team-abc123", nil)
		require.Error(t, err)

		var validationErr *victorops.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})
}

func TestOnCallTakeForPolicy(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPatch, r.Method)
			assert.Equal(t, "/api-public/v1/policies/pol-def456/oncall/user", r.URL.Path)

			w.Write([]byte(`{"result":"ok"}`))
		})

		resp, _, err := client.OnCall.TakeForPolicy(context.Background(), "pol-def456", &victorops.TakeRequest{
			ToUser: "jsmith",
		})
		require.NoError(t, err)
		require.NotNil(t, resp.Result)
	})

	t.Run("empty policy slug skips network", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request should be made for an empty policy slug")
		})

		_, _, err := client.OnCall.TakeForPolicy(context.Background(), "", &victorops.TakeRequest{ToUser: "jsmith"})
		require.Error(t, err)

		var validationErr *victorops.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})
}
