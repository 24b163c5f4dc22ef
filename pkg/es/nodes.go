package es

import (
	"context"
	"errors"
	"net/url"
	"sort"

	elastic "github.com/olivere/elastic/v7" // Elasticsearch client.
	"github.com/tidwall/gjson"              // Dynamic JSON parsing.
	"go.uber.org/zap"                       // Logging.
	tomb "gopkg.in/tomb.v2"                 // Goroutine management.

	"github.com/mintel/esconfig/pkg/ctxlog" // Logger from context.
	"github.com/mintel/esconfig/pkg/str"    // String utilities.
)

// ErrInconsistentNodes is returned when NodesService gets different
// sets of nodes from Elasticsearch across API calls.
var ErrInconsistentNodes = errors.New("got inconsistent nodes from Elasticsearch")

// In case of ErrInconsistentNodes, retry this many times before giving up.
const defaultInconsistentNodesRetries = 3

// Node roles.
const (
	RoleData   = "data"
	RoleMaster = "master"
	RoleIngest = "ingest"
)

// Node is what the planner needs to know about a node of a
// self-managed cluster.
type Node struct {
	ID         string
	Name       string
	Version    string
	Roles      []string
	Attributes map[string]string

	// DiskTotalBytes is the total size of the filesystems holding
	// the node's data paths.
	DiskTotalBytes int64
}

// HasRole returns true if the node has the given role.
func (n *Node) HasRole(role string) bool {
	return str.In(role, n.Roles...)
}

// IsData returns true if the node holds data.
func (n *Node) IsData() bool { return n.HasRole(RoleData) }

// IsMasterEligible returns true if the node can be elected master.
func (n *Node) IsMasterEligible() bool { return n.HasRole(RoleMaster) }

// NodesService combines the nodes info and nodes filesystem
// stats APIs into a list of Node.
type NodesService struct {
	client *elastic.Client
	tries  int
}

// NewNodesService returns a new NodesService.
func NewNodesService(client *elastic.Client) *NodesService {
	return &NodesService{
		client: client,
		tries:  defaultInconsistentNodesRetries,
	}
}

// Do returns all nodes of the cluster, sorted by name.
func (s *NodesService) Do(ctx context.Context) ([]*Node, error) {
	logger := ctxlog.L(ctx)
	var nodes []*Node
	var err error
	for try := 0; try < s.tries; try++ {
		if try > 0 {
			logger.Warn("got error describing Elasticsearch nodes",
				zap.Error(err),
				zap.Int("try", try+1),
				zap.Int("max_tries", s.tries),
			)
		}
		nodes, err = s.nodes(ctx)
		if err != ErrInconsistentNodes {
			break
		}
	}
	return nodes, err
}

func (s *NodesService) nodes(ctx context.Context) ([]*Node, error) {
	t, ctx := tomb.WithContext(ctx)

	var info *elastic.NodesInfoResponse
	t.Go(func() error {
		var err error
		info, err = s.client.NodesInfo().Do(ctx)
		return err
	})

	var fs gjson.Result
	t.Go(func() error {
		params := url.Values{}
		params.Set("filter_path", "nodes.*.name,nodes.*.fs.total.total_in_bytes")
		res, err := s.client.PerformRequest(ctx, elastic.PerformRequestOptions{
			Method: "GET",
			Path:   "/_nodes/stats/fs",
			Params: params,
		})
		if err != nil {
			return err
		}
		if !gjson.ValidBytes(res.Body) {
			return ErrInvalidJSON
		}
		fs = gjson.ParseBytes(res.Body).Get("nodes")
		return nil
	})

	if err := t.Wait(); err != nil {
		return nil, err
	}

	byID := make(map[string]*Node, len(info.Nodes))
	for id, ni := range info.Nodes {
		byID[id] = &Node{
			ID:         id,
			Name:       ni.Name,
			Version:    ni.Version,
			Roles:      ni.Roles,
			Attributes: ni.Attributes,
		}
	}

	seen := 0
	var missing []string
	fs.ForEach(func(id, stats gjson.Result) bool {
		n, ok := byID[id.String()]
		if !ok {
			missing = append(missing, stats.Get("name").String())
			return true
		}
		seen++
		n.DiskTotalBytes = stats.Get("fs.total.total_in_bytes").Int()
		return true
	})
	if len(missing) > 0 || seen != len(byID) {
		ctxlog.L(ctx).Error("got info and stats responses with different nodes",
			zap.Int("info_nodes", len(byID)),
			zap.Int("stats_nodes", seen+len(missing)),
			zap.Strings("missing_from_info", missing),
		)
		return nil, ErrInconsistentNodes
	}

	nodes := make([]*Node, 0, len(byID))
	for _, n := range byID {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].Name < nodes[j].Name })
	return nodes, nil
}
