package planner

import (
	"context"
	"strings"

	elastic "github.com/olivere/elastic/v7"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/mintel/esconfig/pkg/es"
)

const awarenessAttributesSetting = "cluster.routing.allocation.awareness.attributes"

// advancedOptions are the cluster settings Amazon Elasticsearch Service
// accepts as domain advanced options.
var advancedOptions = []string{
	"rest.action.multi.allow_explicit_index",
	"indices.fielddata.cache.size",
	"indices.query.bool.max_clause_count",
}

// Cluster is a snapshot of the topology and settings of a
// self-managed Elasticsearch cluster.
type Cluster struct {
	Nodes    []*es.Node
	Settings *es.ClusterGetSettingsResponse
}

// GetCluster reads nodes and settings from Elasticsearch concurrently.
func GetCluster(ctx context.Context, client *elastic.Client) (*Cluster, error) {
	g, ctx := errgroup.WithContext(ctx)
	c := &Cluster{}

	g.Go(func() error {
		nodes, err := es.NewNodesService(client).Do(ctx)
		if err != nil {
			return errors.Wrap(err, "error describing nodes")
		}
		c.Nodes = nodes
		return nil
	})

	g.Go(func() error {
		filter := make([]string, 0, len(advancedOptions)+1)
		for _, s := range append([]string{awarenessAttributesSetting}, advancedOptions...) {
			filter = append(filter, "*."+s)
		}
		settings, err := es.NewClusterGetSettingsService(client).
			Defaults(true).
			FilterPath(filter...).
			Do(ctx)
		if err != nil {
			return errors.Wrap(err, "error getting cluster settings")
		}
		c.Settings = settings
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return c, nil
}

// DataNodes returns the nodes holding data.
func (c *Cluster) DataNodes() []*es.Node {
	var out []*es.Node
	for _, n := range c.Nodes {
		if n.IsData() {
			out = append(out, n)
		}
	}
	return out
}

// DedicatedMasters returns the master-eligible nodes that hold no data.
func (c *Cluster) DedicatedMasters() []*es.Node {
	var out []*es.Node
	for _, n := range c.Nodes {
		if n.IsMasterEligible() && !n.IsData() {
			out = append(out, n)
		}
	}
	return out
}

// AwarenessAttribute returns the first shard allocation awareness
// attribute, or "" if awareness is off.
func (c *Cluster) AwarenessAttribute() string {
	if c.Settings == nil {
		return ""
	}
	v := c.Settings.Get(awarenessAttributesSetting)
	var attrs []string
	if v.IsArray() {
		for _, a := range v.Array() {
			attrs = append(attrs, a.String())
		}
	} else {
		attrs = strings.Split(v.String(), ",")
	}
	for _, a := range attrs {
		if a = strings.TrimSpace(a); a != "" {
			return a
		}
	}
	return ""
}
