package es

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gock "gopkg.in/h2non/gock.v1"

	"github.com/mintel/esconfig/internal/pkg/testutil"
)

func TestClusterGetSettingsService(t *testing.T) {
	ctx, _, teardown := testutil.ClientTestSetup(t)
	defer teardown()

	gock.New(mockURL).
		Get("/_cluster/settings").
		MatchParam("include_defaults", "true").
		MatchParam("filter_path", "persistent.cluster,transient.cluster").
		Reply(200).
		JSON(map[string]interface{}{
			"persistent": map[string]interface{}{
				"cluster": map[string]interface{}{
					"routing": map[string]interface{}{
						"allocation": map[string]interface{}{
							"awareness": map[string]interface{}{"attributes": "zone"},
						},
					},
				},
			},
			"transient": map[string]interface{}{},
			"defaults": map[string]interface{}{
				"indices.query.bool.max_clause_count": "1024",
			},
		})

	resp, err := NewClusterGetSettingsService(newMockClient(t)).
		Defaults(true).
		FilterPath("persistent.cluster", "transient.cluster").
		Do(ctx)
	require.NoError(t, err)
	assert.True(t, gock.IsDone())

	assert.Equal(t, "zone", resp.Get("cluster.routing.allocation.awareness.attributes").String())
	assert.Equal(t, int64(1024), resp.Get("indices.query.bool.max_clause_count").Int())
	assert.False(t, resp.Get("indices.fielddata.cache.size").Exists())
}

func TestClusterGetSettingsResponse_Get(t *testing.T) {
	ctx, _, teardown := testutil.ClientTestSetup(t)
	defer teardown()

	gock.New(mockURL).
		Get("/_cluster/settings").
		Reply(200).
		BodyString(`{
			"persistent": {"indices": {"fielddata": {"cache": {"size": "30%"}}}},
			"transient": {"indices.fielddata.cache.size": "40%"}
		}`)

	resp, err := NewClusterGetSettingsService(newMockClient(t)).Do(ctx)
	require.NoError(t, err)
	assert.False(t, resp.Defaults.Exists())
	// Transient wins over persistent.
	assert.Equal(t, "40%", resp.Get("indices.fielddata.cache.size").String())
}

func TestClusterGetSettingsService_InvalidJSON(t *testing.T) {
	ctx, _, teardown := testutil.ClientTestSetup(t)
	defer teardown()

	gock.New(mockURL).
		Get("/_cluster/settings").
		Reply(200).
		SetHeader("Content-Type", "application/json").
		BodyString(`{"persistent": `)

	_, err := NewClusterGetSettingsService(newMockClient(t)).Do(ctx)
	assert.Error(t, err)
}
