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

const routingKeyListBody = `{
	"routingKeys": [
		{
			"routingKey": "database",
			"targets": [{"policySlug": "pol-def456"}]
		},
		{
			"routingKey": "frontend",
			"targets": [{"policySlug": "pol-ghi789"}]
		}
	]
}`

func TestRoutingKeyCreate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api-public/v1/org/routing-keys", r.URL.Path)

			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			assert.JSONEq(t, `{"routingKey":"database","targets":["pol-def456"]}`, string(body))

			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"routingKey":"database","targets":["pol-def456"]}`))
		})

		key, details, err := client.RoutingKeys.Create(context.Background(), &victorops.RoutingKey{
			RoutingKey: victorops.Ptr("database"),
			Targets:    []string{"pol-def456"},
		})
		require.NoError(t, err)
		require.NotNil(t, details)
		assert.Equal(t, http.StatusCreated, details.StatusCode)
		require.NotNil(t, key.RoutingKey)
		assert.Equal(t, "database", *key.RoutingKey)
	})

	t.Run("nil key skips network", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request should be made for a nil routing key")
		})

		_, _, err := client.RoutingKeys.Create(context.Background(), nil)
		require.Error(t, err)

		var validationErr *victorops.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})
}

func TestRoutingKeyList(t *testing.T) {
	client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api-public/v1/org/routing-keys", r.URL.Path)

		w.Write([]byte(routingKeyListBody))
	})

	list, _, err := client.RoutingKeys.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list.RoutingKeys, 2)
	require.NotNil(t, list.RoutingKeys[0].RoutingKey)
	assert.Equal(t, "database", *list.RoutingKeys[0].RoutingKey)
	require.Len(t, list.RoutingKeys[0].Targets, 1)
	require.NotNil(t, list.RoutingKeys[0].Targets[0].PolicySlug)
	assert.Equal(t, "pol-def456", *list.RoutingKeys[0].Targets[0].PolicySlug)
}

func TestRoutingKeyGet(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(routingKeyListBody))
		})

		key, details, err := client.RoutingKeys.Get(context.Background(), "frontend")
		require.NoError(t, err)
		require.NotNil(t, details)
		require.NotNil(t, key.RoutingKey)
		assert.Equal(t, "frontend", *key.RoutingKey)
	})

	t.Run("not found", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(routingKeyListBody))
		})

		_, details, err := client.RoutingKeys.Get(context.Background(), "backend")
		require.Error(t, err)
		require.NotNil(t, details)

		var notFound *victorops.NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "routing key", notFound.ResourceType)
		assert.Equal(t, "backend", notFound.ResourceID)
	})

	t.Run("empty name skips network", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request should be made for an empty key name")
		})

		_, _, err := client.RoutingKeys.Get(context.Background(), "")
		require.Error(t, err)

		var validationErr *victorops.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})
}
