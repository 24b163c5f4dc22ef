package es

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	gock "gopkg.in/h2non/gock.v1"

	"github.com/mintel/esconfig/internal/pkg/testutil"
	"github.com/mintel/esconfig/pkg/ctxlog"
)

const nodesInfoBody = `{
	"cluster_name": "logs",
	"nodes": {
		"id-b": {
			"name": "es-data-b",
			"version": "7.4.2",
			"roles": ["data", "ingest"],
			"attributes": {"zone": "us-east-1b"}
		},
		"id-a": {
			"name": "es-data-a",
			"version": "7.4.0",
			"roles": ["data", "ingest"],
			"attributes": {"zone": "us-east-1a"}
		},
		"id-m": {
			"name": "es-master",
			"version": "7.4.2",
			"roles": ["master"],
			"attributes": {}
		}
	}
}`

const nodesStatsBody = `{
	"nodes": {
		"id-a": {"name": "es-data-a", "fs": {"total": {"total_in_bytes": 107374182400}}},
		"id-b": {"name": "es-data-b", "fs": {"total": {"total_in_bytes": 53687091200}}},
		"id-m": {"name": "es-master", "fs": {"total": {"total_in_bytes": 10737418240}}}
	}
}`

func TestNodesService(t *testing.T) {
	ctx, _, teardown := testutil.ClientTestSetup(t)
	defer teardown()

	gock.New(mockURL).
		Get("/_nodes/stats/fs").
		Reply(200).
		BodyString(nodesStatsBody)
	gock.New(mockURL).
		Get("/_nodes/_all").
		Reply(200).
		BodyString(nodesInfoBody)

	nodes, err := NewNodesService(newMockClient(t)).Do(ctx)
	require.NoError(t, err)
	assert.True(t, gock.IsDone())
	require.Len(t, nodes, 3)

	a := nodes[0]
	assert.Equal(t, "es-data-a", a.Name)
	assert.Equal(t, "id-a", a.ID)
	assert.Equal(t, "7.4.0", a.Version)
	assert.Equal(t, int64(107374182400), a.DiskTotalBytes)
	assert.Equal(t, "us-east-1a", a.Attributes["zone"])
	assert.True(t, a.IsData())
	assert.False(t, a.IsMasterEligible())
	assert.True(t, a.HasRole(RoleIngest))

	m := nodes[2]
	assert.Equal(t, "es-master", m.Name)
	assert.True(t, m.IsMasterEligible())
	assert.False(t, m.IsData())
}

func TestNodesService_Inconsistent(t *testing.T) {
	_, _, teardown := testutil.ClientTestSetup(t)
	defer teardown()

	core, logs := observer.New(zapcore.DebugLevel)
	ctx := ctxlog.WithLogger(context.Background(), zap.New(core))

	gock.New(mockURL).
		Get("/_nodes/stats/fs").
		Times(defaultInconsistentNodesRetries).
		Reply(200).
		BodyString(`{"nodes": {"id-x": {"name": "es-new", "fs": {"total": {"total_in_bytes": 1}}}}}`)
	gock.New(mockURL).
		Get("/_nodes/_all").
		Times(defaultInconsistentNodesRetries).
		Reply(200).
		BodyString(nodesInfoBody)

	nodes, err := NewNodesService(newMockClient(t)).Do(ctx)
	assert.Nil(t, nodes)
	assert.Equal(t, ErrInconsistentNodes, err)
	assert.True(t, gock.IsDone())
	assert.Equal(t, defaultInconsistentNodesRetries-1, logs.FilterMessage("got error describing Elasticsearch nodes").Len())
}

func TestNodesService_Integration(t *testing.T) {
	res, client := runElasticsearch(t)
	defer res.Close()

	nodes, err := NewNodesService(client).Do(context.Background())
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.True(t, nodes[0].IsData())
	assert.True(t, nodes[0].IsMasterEligible())
	assert.Equal(t, "us-east-1a", nodes[0].Attributes["zone"])
	assert.True(t, nodes[0].DiskTotalBytes > 0)

	settings, err := NewClusterGetSettingsService(client).Defaults(true).Do(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1024", settings.Get("indices.query.bool.max_clause_count").String())
}
