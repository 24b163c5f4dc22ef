package planner

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/mintel/esconfig/pkg/ctxlog"
	"github.com/mintel/esconfig/pkg/es"
	"github.com/mintel/esconfig/pkg/esconfig"
	"github.com/mintel/esconfig/pkg/str"
)

const (
	gib = 1 << 30

	// minVolumeSize is the smallest EBS volume, in GiB, the service accepts.
	minVolumeSize = 10
)

// ErrNoDataNodes is returned by Plan for a cluster without data nodes.
var ErrNoDataNodes = errors.New("cluster has no data nodes")

// Options are the parts of a domain that can't be derived from
// the cluster.
type Options struct {
	DomainName         string
	InstanceType       string
	MasterInstanceType string
	VolumeType         string
}

// Plan derives a request to create an Amazon Elasticsearch Service
// domain shaped like the cluster c.
func Plan(ctx context.Context, c *Cluster, o Options) (*esconfig.CreateElasticsearchDomainRequest, error) {
	logger := ctxlog.L(ctx)

	data := c.DataNodes()
	if len(data) == 0 {
		return nil, ErrNoDataNodes
	}

	version, err := lowestVersion(c.Nodes)
	if err != nil {
		return nil, err
	}

	cluster := new(esconfig.ElasticsearchClusterConfig).
		SetInstanceType(o.InstanceType).
		SetInstanceCount(int64(len(data))).
		SetDedicatedMasterEnabled(false).
		SetZoneAwarenessEnabled(false)

	if masters := c.DedicatedMasters(); len(masters) > 0 {
		masterType := o.MasterInstanceType
		if masterType == "" {
			masterType = o.InstanceType
		}
		cluster.SetDedicatedMasterEnabled(true).
			SetDedicatedMasterCount(int64(len(masters))).
			SetDedicatedMasterType(masterType)
	}

	if attr := c.AwarenessAttribute(); attr != "" {
		zones := distinctAttribute(data, attr)
		switch {
		case zones >= 3:
			zones = 3
		case zones < 2:
			logger.Warn("shard allocation awareness is set but data nodes span fewer than two values",
				zap.String("attribute", attr),
				zap.Int("values", zones),
			)
			zones = 0
		}
		if zones > 0 {
			cluster.SetZoneAwarenessEnabled(true).
				SetZoneAwarenessConfig(new(esconfig.ZoneAwarenessConfig).SetAvailabilityZoneCount(int64(zones)))
		}
	}

	req := new(esconfig.CreateElasticsearchDomainRequest).
		SetDomainName(o.DomainName).
		SetElasticsearchVersion(version).
		SetElasticsearchClusterConfig(cluster).
		SetEBSOptions(new(esconfig.EBSOptions).
			SetEBSEnabled(true).
			SetVolumeType(o.VolumeType).
			SetVolumeSize(volumeSize(data)))

	if c.Settings != nil {
		for _, name := range advancedOptions {
			v := c.Settings.Get(name)
			if !v.Exists() || v.String() == "" {
				continue
			}
			if err := req.AddAdvancedOptionsEntry(name, v.String()); err != nil {
				return nil, err
			}
		}
	}

	if err := req.Validate(); err != nil {
		return nil, errors.Wrap(err, "planned domain is invalid")
	}
	logger.Debug("planned domain", zap.Stringer("request", req))
	return req, nil
}

// lowestVersion returns "major.minor" of the oldest node.
func lowestVersion(nodes []*es.Node) (string, error) {
	var lowest [2]int
	for i, n := range nodes {
		v, err := parseVersion(n.Version)
		if err != nil {
			return "", errors.Wrapf(err, "node %s", n.Name)
		}
		if i == 0 || v[0] < lowest[0] || (v[0] == lowest[0] && v[1] < lowest[1]) {
			lowest = v
		}
	}
	return fmt.Sprintf("%d.%d", lowest[0], lowest[1]), nil
}

func parseVersion(s string) ([2]int, error) {
	var v [2]int
	parts := strings.SplitN(s, ".", 3)
	if len(parts) < 2 {
		return v, errors.Errorf("invalid version %q", s)
	}
	for i := range v {
		n, err := strconv.Atoi(parts[i])
		if err != nil {
			return v, errors.Wrapf(err, "invalid version %q", s)
		}
		v[i] = n
	}
	return v, nil
}

func distinctAttribute(nodes []*es.Node, attr string) int {
	var values []string
	for _, n := range nodes {
		if v := n.Attributes[attr]; v != "" {
			values = append(values, v)
		}
	}
	return len(str.Uniq(values...))
}

// volumeSize is the largest data node filesystem, in whole GiB.
func volumeSize(nodes []*es.Node) int64 {
	var max int64
	for _, n := range nodes {
		if n.DiskTotalBytes > max {
			max = n.DiskTotalBytes
		}
	}
	size := int64(math.Ceil(float64(max) / gib))
	if size < minVolumeSize {
		size = minVolumeSize
	}
	return size
}
