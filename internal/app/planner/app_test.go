package planner

import (
	"bytes"
	"net/http"
	"testing"

	elastic "github.com/olivere/elastic/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gock "gopkg.in/h2non/gock.v1"

	"github.com/mintel/esconfig/internal/pkg/testutil"
)

func newTestApp(t *testing.T, args ...string) (*App, *bytes.Buffer) {
	app := NewApp()
	_, err := app.Parse(args)
	require.NoError(t, err)
	out := &bytes.Buffer{}
	app.out = out
	return app, out
}

func TestNewApp_Flags(t *testing.T) {
	app, _ := newTestApp(t, "--domain", "logs", "--volume-type", "io1")
	assert.Equal(t, "logs", app.flags.DomainName)
	assert.Equal(t, "io1", app.flags.VolumeType)
	assert.Equal(t, "r5.large.elasticsearch", app.flags.InstanceType)
	assert.Empty(t, app.flags.MasterInstanceType)

	_, err := NewApp().Parse([]string{"--domain", "logs", "--instance-type", "huge"})
	assert.Error(t, err)
	_, err = NewApp().Parse(nil)
	assert.Error(t, err, "--domain is required")
}

func TestApp_run(t *testing.T) {
	ctx, _, teardown := testutil.ClientTestSetup(t)
	defer teardown()

	gock.New(elastic.DefaultURL).
		Get("/_nodes/stats/fs").
		Reply(http.StatusOK).
		BodyString(testutil.LoadTestData("nodes_stats_fs.json"))
	gock.New(elastic.DefaultURL).
		Get("/_nodes/_all").
		Reply(http.StatusOK).
		BodyString(testutil.LoadTestData("nodes_info.json"))
	gock.New(elastic.DefaultURL).
		Get("/_cluster/settings").
		MatchParam("include_defaults", "true").
		Reply(http.StatusOK).
		BodyString(testutil.LoadTestData("cluster_settings.json"))

	client, err := elastic.NewSimpleClient()
	require.NoError(t, err)

	app, out := newTestApp(t, "--domain", "logs", "--master-instance-type", "m5.large.elasticsearch")
	require.NoError(t, app.run(ctx, client))
	assert.True(t, gock.IsDone())

	assert.JSONEq(t, `{
		"DomainName": "logs",
		"ElasticsearchVersion": "7.4",
		"ElasticsearchClusterConfig": {
			"InstanceType": "r5.large.elasticsearch",
			"InstanceCount": 2,
			"DedicatedMasterEnabled": true,
			"ZoneAwarenessEnabled": true,
			"ZoneAwarenessConfig": {"AvailabilityZoneCount": 2},
			"DedicatedMasterType": "m5.large.elasticsearch",
			"DedicatedMasterCount": 3
		},
		"EBSOptions": {
			"EBSEnabled": true,
			"VolumeType": "gp2",
			"VolumeSize": 500
		},
		"AdvancedOptions": {
			"rest.action.multi.allow_explicit_index": "true",
			"indices.query.bool.max_clause_count": "1024"
		}
	}`, out.String())
}

func TestApp_run_Error(t *testing.T) {
	ctx, _, teardown := testutil.ClientTestSetup(t)
	defer teardown()

	gock.New(elastic.DefaultURL).
		Get("/_nodes").
		Times(4).
		Reply(http.StatusInternalServerError).
		BodyString(http.StatusText(http.StatusInternalServerError))
	gock.New(elastic.DefaultURL).
		Get("/_cluster/settings").
		Reply(http.StatusOK).
		BodyString(testutil.LoadTestData("cluster_settings.json"))

	client, err := elastic.NewSimpleClient()
	require.NoError(t, err)

	app, out := newTestApp(t, "--domain", "logs")
	assert.Error(t, app.run(ctx, client))
	assert.Empty(t, out.String())
}
