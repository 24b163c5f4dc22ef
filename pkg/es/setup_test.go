package es

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"testing"

	elastic "github.com/olivere/elastic/v7"
	"github.com/ory/dockertest"
	"github.com/ory/dockertest/docker"
	"github.com/stretchr/testify/require"
)

const mockURL = "http://127.0.0.1:9200"

// newMockClient returns a client that never sniffs or health checks,
// so that each call maps to exactly one gock interception.
func newMockClient(t *testing.T) *elastic.Client {
	c, err := elastic.NewSimpleClient(elastic.SetURL(mockURL))
	require.NoError(t, err)
	return c
}

func randomPrefix(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}

// runElasticsearch runs an Elasticsearch Docker container, returning its handler
// and a client connected to it.
func runElasticsearch(t *testing.T) (*dockertest.Resource, *elastic.Client) {
	if testing.Short() {
		t.Skipf("skipping during -short due to dependency on an Elasticsearch container")
	}

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("failed to connect to Docker: %s", err)
	}

	name := randomPrefix(6) + "-elasticsearch1"
	res, err := pool.RunWithOptions(&dockertest.RunOptions{
		Hostname:     name,
		Name:         name,
		Repository:   "docker.elastic.co/elasticsearch/elasticsearch-oss",
		Tag:          "7.4.2",
		ExposedPorts: []string{"9200/tcp"},
		Env: []string{
			"cluster.name=elasticsearch",
			"node.attr.zone=us-east-1a",
			"discovery.type=single-node",
			"ES_JAVA_OPTS=-Xms256m -Xmx256m",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.Ulimits = []docker.ULimit{
			{Name: "nofile", Soft: 65536, Hard: 65536},
		}
	})
	require.NoError(t, err)

	var client *elastic.Client
	if err := pool.Retry(func() error {
		u := "http://" + res.GetHostPort("9200/tcp")
		if client, err = elastic.NewSimpleClient(elastic.SetURL(u)); err != nil {
			return err
		}
		_, _, err = client.Ping(u).Do(context.Background())
		return err
	}); err != nil {
		_ = res.Close()
		t.Fatalf("error waiting for Elasticsearch container: %s", err)
	}

	return res, client
}
