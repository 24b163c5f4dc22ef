package planner

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mintel/esconfig/pkg/ctxlog"
	"github.com/mintel/esconfig/pkg/es"
	"github.com/mintel/esconfig/pkg/esconfig"
)

var testOptions = Options{
	DomainName:   "logs",
	InstanceType: esconfig.ESPartitionInstanceTypeR5LargeElasticsearch,
	VolumeType:   esconfig.VolumeTypeGp2,
}

func dataNode(name, version, zone string, disk int64) *es.Node {
	return &es.Node{
		Name:           name,
		Version:        version,
		Roles:          []string{es.RoleData, es.RoleMaster, es.RoleIngest},
		Attributes:     map[string]string{"zone": zone},
		DiskTotalBytes: disk,
	}
}

func masterNode(name string) *es.Node {
	return &es.Node{
		Name:    name,
		Version: "7.4.2",
		Roles:   []string{es.RoleMaster},
	}
}

func settings(persistent string) *es.ClusterGetSettingsResponse {
	return &es.ClusterGetSettingsResponse{Persistent: gjson.Parse(persistent)}
}

func TestPlan(t *testing.T) {
	c := &Cluster{
		Nodes: []*es.Node{
			dataNode("data-0", "7.4.2", "us-east-1a", 100*gib),
			dataNode("data-1", "7.1.1", "us-east-1b", 200*gib+1),
			dataNode("data-2", "7.4.2", "us-east-1c", 50*gib),
			dataNode("data-3", "7.4.2", "us-east-1d", 50*gib),
			masterNode("master-0"),
			masterNode("master-1"),
			masterNode("master-2"),
		},
		Settings: settings(`{
			"cluster": {"routing": {"allocation": {"awareness": {"attributes": "zone"}}}},
			"indices.fielddata.cache.size": "40%",
			"indices": {"query": {"bool": {"max_clause_count": "4096"}}},
			"search.max_buckets": "20000"
		}`),
	}

	req, err := Plan(context.Background(), c, testOptions)
	require.NoError(t, err)

	assert.Equal(t, "logs", aws.StringValue(req.DomainName))
	assert.Equal(t, "7.1", aws.StringValue(req.ElasticsearchVersion))

	cc := req.ElasticsearchClusterConfig
	assert.Equal(t, esconfig.ESPartitionInstanceTypeR5LargeElasticsearch, aws.StringValue(cc.InstanceType))
	assert.Equal(t, int64(4), aws.Int64Value(cc.InstanceCount))
	assert.True(t, aws.BoolValue(cc.DedicatedMasterEnabled))
	assert.Equal(t, int64(3), aws.Int64Value(cc.DedicatedMasterCount))
	assert.Equal(t, esconfig.ESPartitionInstanceTypeR5LargeElasticsearch, aws.StringValue(cc.DedicatedMasterType))
	assert.True(t, aws.BoolValue(cc.ZoneAwarenessEnabled))
	assert.Equal(t, int64(3), aws.Int64Value(cc.ZoneAwarenessConfig.AvailabilityZoneCount))

	assert.True(t, aws.BoolValue(req.EBSOptions.EBSEnabled))
	assert.Equal(t, esconfig.VolumeTypeGp2, aws.StringValue(req.EBSOptions.VolumeType))
	assert.Equal(t, int64(201), aws.Int64Value(req.EBSOptions.VolumeSize))

	assert.Equal(t, map[string]*string{
		"indices.fielddata.cache.size":        aws.String("40%"),
		"indices.query.bool.max_clause_count": aws.String("4096"),
	}, req.AdvancedOptions)
}

func TestPlan_SmallCluster(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := ctxlog.WithLogger(context.Background(), zap.New(core))

	c := &Cluster{
		Nodes: []*es.Node{
			dataNode("data-0", "6.8.3", "us-east-1a", 1*gib),
			dataNode("data-1", "6.8.3", "us-east-1a", 2*gib),
		},
		Settings: settings(`{"cluster.routing.allocation.awareness.attributes": "zone,rack"}`),
	}
	o := testOptions
	o.MasterInstanceType = esconfig.ESPartitionInstanceTypeM5LargeElasticsearch

	req, err := Plan(ctx, c, o)
	require.NoError(t, err)

	cc := req.ElasticsearchClusterConfig
	assert.Equal(t, "6.8", aws.StringValue(req.ElasticsearchVersion))
	assert.Equal(t, int64(2), aws.Int64Value(cc.InstanceCount))
	assert.False(t, aws.BoolValue(cc.DedicatedMasterEnabled))
	assert.Nil(t, cc.DedicatedMasterType)
	assert.False(t, aws.BoolValue(cc.ZoneAwarenessEnabled))
	assert.Nil(t, cc.ZoneAwarenessConfig)
	assert.Equal(t, int64(minVolumeSize), aws.Int64Value(req.EBSOptions.VolumeSize))
	assert.Nil(t, req.AdvancedOptions)

	assert.Equal(t, 1, logs.FilterField(zap.String("attribute", "zone")).Len())
}

func TestPlan_TwoZones(t *testing.T) {
	c := &Cluster{
		Nodes: []*es.Node{
			dataNode("data-0", "7.4.2", "a", 20*gib),
			dataNode("data-1", "7.4.2", "b", 20*gib),
			masterNode("master-0"),
		},
		Settings: &es.ClusterGetSettingsResponse{
			Defaults:  gjson.Parse(`{"cluster": {"routing": {"allocation": {"awareness": {"attributes": []}}}}}`),
			Transient: gjson.Parse(`{"cluster": {"routing": {"allocation": {"awareness": {"attributes": ["zone"]}}}}}`),
		},
	}
	o := testOptions
	o.MasterInstanceType = esconfig.ESPartitionInstanceTypeM5LargeElasticsearch

	req, err := Plan(context.Background(), c, o)
	require.NoError(t, err)
	cc := req.ElasticsearchClusterConfig
	assert.Equal(t, int64(2), aws.Int64Value(cc.ZoneAwarenessConfig.AvailabilityZoneCount))
	assert.Equal(t, esconfig.ESPartitionInstanceTypeM5LargeElasticsearch, aws.StringValue(cc.DedicatedMasterType))
	assert.Equal(t, int64(1), aws.Int64Value(cc.DedicatedMasterCount))
}

func TestPlan_Errors(t *testing.T) {
	tests := []struct {
		name    string
		cluster *Cluster
		options Options
	}{
		{
			name:    "no data nodes",
			cluster: &Cluster{Nodes: []*es.Node{masterNode("master-0")}},
			options: testOptions,
		},
		{
			name:    "bad version",
			cluster: &Cluster{Nodes: []*es.Node{dataNode("data-0", "seven", "a", gib)}},
			options: testOptions,
		},
		{
			name:    "short domain name",
			cluster: &Cluster{Nodes: []*es.Node{dataNode("data-0", "7.4.2", "a", gib)}},
			options: Options{DomainName: "lg", InstanceType: testOptions.InstanceType},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := Plan(context.Background(), tt.cluster, tt.options)
			assert.Error(t, err)
			assert.Nil(t, req)
		})
	}
	_, err := Plan(context.Background(), &Cluster{}, testOptions)
	assert.Equal(t, ErrNoDataNodes, err)
}

func TestParseVersion(t *testing.T) {
	v, err := parseVersion("7.10.2")
	require.NoError(t, err)
	assert.Equal(t, [2]int{7, 10}, v)

	_, err = parseVersion("7")
	assert.Error(t, err)

	got, err := lowestVersion([]*es.Node{
		{Name: "a", Version: "7.10.0"},
		{Name: "b", Version: "7.9.3"},
	})
	require.NoError(t, err)
	assert.Equal(t, "7.9", got)
}
