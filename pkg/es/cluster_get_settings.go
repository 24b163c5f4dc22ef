package es

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	elastic "github.com/olivere/elastic/v7" // Elasticsearch client.
	"github.com/tidwall/gjson"              // Dynamic JSON parsing.
)

// ErrInvalidJSON is returned when Elasticsearch answers with a body
// that can't be parsed.
var ErrInvalidJSON = errors.New("invalid json")

// ClusterGetSettingsService gets the settings of an Elasticsearch cluster.
// github.com/olivere/elastic doesn't provide this API.
type ClusterGetSettingsService struct {
	client          *elastic.Client
	includeDefaults bool
	human           *bool
	filterPath      []string
}

// NewClusterGetSettingsService returns a new ClusterGetSettingsService.
func NewClusterGetSettingsService(client *elastic.Client) *ClusterGetSettingsService {
	return &ClusterGetSettingsService{
		client: client,
	}
}

func (s *ClusterGetSettingsService) buildURL() (string, url.Values) {
	params := url.Values{}
	if s.includeDefaults {
		params.Set("include_defaults", "true")
	}
	if len(s.filterPath) > 0 {
		params.Set("filter_path", strings.Join(s.filterPath, ","))
	}
	if s.human != nil {
		params.Set("human", fmt.Sprintf("%v", *s.human))
	}
	return "/_cluster/settings", params
}

// Defaults indicates if Elasticsearch should include default settings values in the response.
func (s *ClusterGetSettingsService) Defaults(include bool) *ClusterGetSettingsService {
	s.includeDefaults = include
	return s
}

// FilterPath allows reducing the response, a mechanism known as
// response filtering and described here:
// https://www.elastic.co/guide/en/elasticsearch/reference/7.0/common-options.html#common-options-response-filtering.
func (s *ClusterGetSettingsService) FilterPath(filterPath ...string) *ClusterGetSettingsService {
	s.filterPath = append(s.filterPath, filterPath...)
	return s
}

// Human indicates whether to return version and creation date values
// in human-readable format (default: false).
func (s *ClusterGetSettingsService) Human(human bool) *ClusterGetSettingsService {
	s.human = &human
	return s
}

// Do executes the operation.
func (s *ClusterGetSettingsService) Do(ctx context.Context) (*ClusterGetSettingsResponse, error) {
	path, params := s.buildURL()
	res, err := s.client.PerformRequest(ctx, elastic.PerformRequestOptions{
		Method: "GET",
		Path:   path,
		Params: params,
	})
	if err != nil {
		return nil, err
	}

	body := string(res.Body)
	if !gjson.Valid(body) {
		return nil, ErrInvalidJSON
	}
	result := gjson.Parse(body)
	ret := &ClusterGetSettingsResponse{
		Persistent: result.Get("persistent"),
		Transient:  result.Get("transient"),
	}
	if s.includeDefaults {
		ret.Defaults = result.Get("defaults")
	}
	return ret, nil
}

// ClusterGetSettingsResponse represents the response from the Elasticsearch
// `GET /_cluster/settings` API.
type ClusterGetSettingsResponse struct {
	Persistent gjson.Result
	Transient  gjson.Result
	Defaults   gjson.Result
}

// Get returns the effective value of a dotted setting name such as
// "cluster.routing.allocation.awareness.attributes". Transient settings
// override persistent ones, which override defaults.
func (r *ClusterGetSettingsResponse) Get(name string) gjson.Result {
	for _, group := range []gjson.Result{r.Transient, r.Persistent, r.Defaults} {
		if !group.Exists() {
			continue
		}
		// Settings may come back nested or flat.
		if v := group.Get(name); v.Exists() {
			return v
		}
		if v := group.Get(strings.ReplaceAll(name, ".", `\.`)); v.Exists() {
			return v
		}
	}
	return gjson.Result{}
}
