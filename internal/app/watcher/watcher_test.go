package watcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/cenkalti/backoff"
	cache "github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/mintel/esconfig/mocks"
	"github.com/mintel/esconfig/pkg/ctxlog"
	"github.com/mintel/esconfig/pkg/esconfig"
)

func domainStatus(name string, processing bool, instances int64) *esconfig.ElasticsearchDomainStatus {
	return new(esconfig.ElasticsearchDomainStatus).
		SetDomainName(name).
		SetProcessing(processing).
		SetUpgradeProcessing(false).
		SetDeleted(false).
		SetElasticsearchClusterConfig(new(esconfig.ElasticsearchClusterConfig).SetInstanceCount(instances)).
		SetServiceSoftwareOptions(new(esconfig.ServiceSoftwareOptions).SetUpdateAvailable(true))
}

func optionStatus(state string) *esconfig.OptionStatus {
	return new(esconfig.OptionStatus).SetState(state)
}

func domainConfig(clusterState string) *esconfig.DescribeElasticsearchDomainConfigResult {
	return new(esconfig.DescribeElasticsearchDomainConfigResult).SetDomainConfig(
		new(esconfig.ElasticsearchDomainConfig).
			SetElasticsearchClusterConfig(new(esconfig.ElasticsearchClusterConfigStatus).
				SetStatus(optionStatus(clusterState))).
			SetEBSOptions(new(esconfig.EBSOptionsStatus).
				SetStatus(optionStatus(esconfig.OptionStateActive))),
	)
}

func compatibleVersions(targets ...string) *esconfig.GetCompatibleElasticsearchVersionsResult {
	return new(esconfig.GetCompatibleElasticsearchVersionsResult).SetCompatibleElasticsearchVersions(
		[]*esconfig.CompatibleVersionsMap{
			new(esconfig.CompatibleVersionsMap).SetSourceVersion("7.1").SetTargetVersions(aws.StringSlice(targets)),
		},
	)
}

func configRequest(domain string) *esconfig.DescribeElasticsearchDomainConfigRequest {
	return new(esconfig.DescribeElasticsearchDomainConfigRequest).SetDomainName(domain)
}

func versionsRequest(domain string) *esconfig.GetCompatibleElasticsearchVersionsRequest {
	return new(esconfig.GetCompatibleElasticsearchVersionsRequest).SetDomainName(domain)
}

type WatcherTestSuite struct {
	suite.Suite

	client *mocks.ESConfig
	inst   *Instrumentation
	logs   *observer.ObservedLogs
	ctx    context.Context
}

func (s *WatcherTestSuite) SetupTest() {
	s.client = &mocks.ESConfig{}
	s.client.Test(s.T())
	s.inst = NewInstrumentation("test", cache.New(cache.NoExpiration, 0))

	core, logs := observer.New(zapcore.DebugLevel)
	s.logs = logs
	s.ctx = ctxlog.WithLogger(context.Background(), zap.New(core))
}

func (s *WatcherTestSuite) TearDownTest() {
	s.client.AssertExpectations(s.T())
}

func (s *WatcherTestSuite) gauge(v *prometheus.GaugeVec, labels ...string) float64 {
	return testutil.ToFloat64(v.WithLabelValues(labels...))
}

func (s *WatcherTestSuite) TestPoll() {
	s.client.On("DescribeElasticsearchDomainsWithContext", mocks.AnyContext, mocks.DomainsRequest("logs", "metrics")).
		Return(new(esconfig.DescribeElasticsearchDomainsResult).SetDomainStatusList([]*esconfig.ElasticsearchDomainStatus{
			domainStatus("logs", true, 6),
			domainStatus("metrics", false, 3),
		}), nil).Twice()
	s.client.On("DescribeElasticsearchDomainConfigWithContext", mocks.AnyContext, configRequest("logs")).
		Return(domainConfig(esconfig.OptionStateProcessing), nil).Once()
	s.client.On("DescribeElasticsearchDomainConfigWithContext", mocks.AnyContext, configRequest("logs")).
		Return(domainConfig(esconfig.OptionStateActive), nil).Once()
	s.client.On("DescribeElasticsearchDomainConfigWithContext", mocks.AnyContext, configRequest("metrics")).
		Return(domainConfig(esconfig.OptionStateActive), nil).Twice()
	// Upgrade targets are cached, so they're only fetched once per domain.
	s.client.On("GetCompatibleElasticsearchVersionsWithContext", mocks.AnyContext, versionsRequest("logs")).
		Return(compatibleVersions("7.4", "7.7"), nil).Once()
	s.client.On("GetCompatibleElasticsearchVersionsWithContext", mocks.AnyContext, versionsRequest("metrics")).
		Return(compatibleVersions(), nil).Once()

	w := NewWatcher(s.client, []string{"logs", "metrics"}, s.inst, cache.New(cache.NoExpiration, 0))
	s.Require().NoError(w.Poll(s.ctx))

	s.Equal(1.0, s.gauge(s.inst.Processing, "logs"))
	s.Equal(0.0, s.gauge(s.inst.Processing, "metrics"))
	s.Equal(6.0, s.gauge(s.inst.InstanceCount, "logs"))
	s.Equal(1.0, s.gauge(s.inst.UpdateAvailable, "metrics"))
	s.Equal(0.0, s.gauge(s.inst.OptionActive, "logs", "ElasticsearchClusterConfig"))
	s.Equal(1.0, s.gauge(s.inst.OptionActive, "logs", "EBSOptions"))
	s.Equal(2.0, s.gauge(s.inst.UpgradeTargets, "logs"))
	s.Equal(0.0, s.gauge(s.inst.UpgradeTargets, "metrics"))
	s.Equal(0, s.logs.FilterMessage("option state changed").Len())

	s.Require().NoError(w.Poll(s.ctx))
	s.Equal(1.0, s.gauge(s.inst.OptionActive, "logs", "ElasticsearchClusterConfig"))

	changed := s.logs.FilterMessage("option state changed").All()
	if s.Len(changed, 1) {
		fields := changed[0].ContextMap()
		s.Equal("logs", fields["domain"])
		s.Equal("ElasticsearchClusterConfig", fields["option"])
		s.Equal(esconfig.OptionStateProcessing, fields["from"])
		s.Equal(esconfig.OptionStateActive, fields["to"])
	}
	s.Equal(2.0, testutil.ToFloat64(s.inst.Polls.WithLabelValues("success")))
}

// series returns the number of series c currently exports.
func series(c prometheus.Collector) int {
	ch := make(chan prometheus.Metric, 64)
	c.Collect(ch)
	close(ch)
	return len(ch)
}

func (s *WatcherTestSuite) TestPoll_DropsStaleSeries() {
	s.client.On("DescribeElasticsearchDomainsWithContext", mocks.AnyContext, mocks.DomainsRequest("logs", "metrics")).
		Return(new(esconfig.DescribeElasticsearchDomainsResult).SetDomainStatusList([]*esconfig.ElasticsearchDomainStatus{
			domainStatus("logs", false, 6),
			domainStatus("metrics", false, 3),
		}), nil).Once()
	s.client.On("DescribeElasticsearchDomainsWithContext", mocks.AnyContext, mocks.DomainsRequest("logs", "metrics")).
		Return(new(esconfig.DescribeElasticsearchDomainsResult).SetDomainStatusList([]*esconfig.ElasticsearchDomainStatus{
			domainStatus("logs", false, 6),
		}), nil).Once()
	s.client.On("DescribeElasticsearchDomainConfigWithContext", mocks.AnyContext, configRequest("logs")).
		Return(domainConfig(esconfig.OptionStateActive), nil).Once()
	// EBSOptions is no longer reported on the second poll.
	s.client.On("DescribeElasticsearchDomainConfigWithContext", mocks.AnyContext, configRequest("logs")).
		Return(new(esconfig.DescribeElasticsearchDomainConfigResult).SetDomainConfig(
			new(esconfig.ElasticsearchDomainConfig).
				SetElasticsearchClusterConfig(new(esconfig.ElasticsearchClusterConfigStatus).
					SetStatus(optionStatus(esconfig.OptionStateActive))),
		), nil).Once()
	s.client.On("DescribeElasticsearchDomainConfigWithContext", mocks.AnyContext, configRequest("metrics")).
		Return(domainConfig(esconfig.OptionStateActive), nil).Once()
	s.client.On("GetCompatibleElasticsearchVersionsWithContext", mocks.AnyContext, versionsRequest("logs")).
		Return(compatibleVersions("7.4"), nil).Once()
	s.client.On("GetCompatibleElasticsearchVersionsWithContext", mocks.AnyContext, versionsRequest("metrics")).
		Return(compatibleVersions("7.4"), nil).Once()

	targets := cache.New(cache.NoExpiration, 0)
	w := NewWatcher(s.client, []string{"logs", "metrics"}, s.inst, targets)
	s.Require().NoError(w.Poll(s.ctx))
	s.Equal(2, series(s.inst.Processing))
	s.Equal(4, series(s.inst.OptionActive))
	s.Equal(2, targets.ItemCount())

	s.Require().NoError(w.Poll(s.ctx))
	s.Equal(1, s.logs.FilterMessage("domain not found").Len())
	for _, v := range []*prometheus.GaugeVec{
		s.inst.Processing,
		s.inst.UpgradeProcessing,
		s.inst.Deleted,
		s.inst.InstanceCount,
		s.inst.UpdateAvailable,
		s.inst.UpgradeTargets,
	} {
		s.Equal(1, series(v))
		s.False(v.DeleteLabelValues("metrics"))
	}
	s.Equal(1, series(s.inst.OptionActive))
	s.Equal(1.0, s.gauge(s.inst.OptionActive, "logs", "ElasticsearchClusterConfig"))
	s.Equal(1, targets.ItemCount())
	_, ok := targets.Get("metrics")
	s.False(ok)
}

func (s *WatcherTestSuite) TestPoll_DeletedDomainDropsOptions() {
	s.client.On("DescribeElasticsearchDomainsWithContext", mocks.AnyContext, mocks.DomainsRequest("logs")).
		Return(new(esconfig.DescribeElasticsearchDomainsResult).SetDomainStatusList([]*esconfig.ElasticsearchDomainStatus{
			domainStatus("logs", false, 6),
		}), nil).Once()
	s.client.On("DescribeElasticsearchDomainsWithContext", mocks.AnyContext, mocks.DomainsRequest("logs")).
		Return(new(esconfig.DescribeElasticsearchDomainsResult).SetDomainStatusList([]*esconfig.ElasticsearchDomainStatus{
			domainStatus("logs", true, 6).SetDeleted(true),
		}), nil).Once()
	s.client.On("DescribeElasticsearchDomainConfigWithContext", mocks.AnyContext, configRequest("logs")).
		Return(domainConfig(esconfig.OptionStateActive), nil).Once()
	s.client.On("GetCompatibleElasticsearchVersionsWithContext", mocks.AnyContext, versionsRequest("logs")).
		Return(compatibleVersions(), nil).Once()

	w := NewWatcher(s.client, []string{"logs"}, s.inst, cache.New(cache.NoExpiration, 0))
	s.Require().NoError(w.Poll(s.ctx))
	s.Equal(2, series(s.inst.OptionActive))

	s.Require().NoError(w.Poll(s.ctx))
	s.Equal(0, series(s.inst.OptionActive))
	s.Equal(1.0, s.gauge(s.inst.Deleted, "logs"))
}

func (s *WatcherTestSuite) TestPoll_Batches() {
	names := []string{"d-1", "d-2", "d-3", "d-4", "d-5", "d-6", "d-7"}
	s.client.On("DescribeElasticsearchDomainsWithContext", mocks.AnyContext, mocks.DomainsRequest(names[:5]...)).
		Return(new(esconfig.DescribeElasticsearchDomainsResult), nil).Once()
	s.client.On("DescribeElasticsearchDomainsWithContext", mocks.AnyContext, mocks.DomainsRequest(names[5:]...)).
		Return(new(esconfig.DescribeElasticsearchDomainsResult).SetDomainStatusList([]*esconfig.ElasticsearchDomainStatus{
			domainStatus("d-6", false, 1).SetDeleted(true),
		}), nil).Once()

	w := NewWatcher(s.client, names, s.inst, cache.New(cache.NoExpiration, 0))
	s.Require().NoError(w.Poll(s.ctx))

	s.Equal(1.0, s.gauge(s.inst.Deleted, "d-6"))
	s.Equal(6, s.logs.FilterMessage("domain not found").Len())
}

func (s *WatcherTestSuite) TestPoll_Error() {
	s.client.On("DescribeElasticsearchDomainsWithContext", mocks.AnyContext, mock.Anything).
		Return(nil, errors.New("throttled")).Once()

	w := NewWatcher(s.client, []string{"logs"}, s.inst, cache.New(cache.NoExpiration, 0))
	err := w.Poll(s.ctx)
	s.Error(err)
	s.Contains(err.Error(), "throttled")
	s.Equal(1.0, testutil.ToFloat64(s.inst.Polls.WithLabelValues("error")))
}

func (s *WatcherTestSuite) TestPollRetry() {
	s.client.On("DescribeElasticsearchDomainsWithContext", mocks.AnyContext, mock.Anything).
		Return(nil, errors.New("throttled")).Twice()
	s.client.On("DescribeElasticsearchDomainsWithContext", mocks.AnyContext, mock.Anything).
		Return(new(esconfig.DescribeElasticsearchDomainsResult), nil).Once()

	w := NewWatcher(s.client, []string{"logs"}, s.inst, cache.New(cache.NoExpiration, 0))
	w.NewBackOff = func() backoff.BackOff { return &backoff.ZeroBackOff{} }
	s.Require().NoError(w.PollRetry(s.ctx, time.Minute))
	s.Equal(2, s.logs.FilterMessage("poll failed, retrying").Len())
}

func (s *WatcherTestSuite) TestPollRetry_GivesUp() {
	s.client.On("DescribeElasticsearchDomainsWithContext", mocks.AnyContext, mock.Anything).
		Return(nil, errors.New("throttled"))

	w := NewWatcher(s.client, []string{"logs"}, s.inst, cache.New(cache.NoExpiration, 0))
	w.NewBackOff = func() backoff.BackOff {
		b := backoff.NewExponentialBackOff()
		b.InitialInterval = time.Millisecond
		b.MaxInterval = 5 * time.Millisecond
		return b
	}
	s.Error(w.PollRetry(s.ctx, 30*time.Millisecond))
}

func (s *WatcherTestSuite) TestPollRetry_DeadlineWithoutMaxElapsed() {
	s.client.On("DescribeElasticsearchDomainsWithContext", mocks.AnyContext, mock.Anything).
		Return(nil, errors.New("throttled"))

	w := NewWatcher(s.client, []string{"logs"}, s.inst, cache.New(cache.NoExpiration, 0))
	// ConstantBackOff never stops on its own.
	w.NewBackOff = func() backoff.BackOff { return backoff.NewConstantBackOff(5 * time.Millisecond) }

	done := make(chan error, 1)
	go func() { done <- w.PollRetry(s.ctx, 30*time.Millisecond) }()
	select {
	case err := <-done:
		s.Error(err)
		s.Contains(err.Error(), "throttled")
	case <-time.After(5 * time.Second):
		s.FailNow("PollRetry did not give up after maxElapsed")
	}
}

func TestWatcher(t *testing.T) {
	suite.Run(t, new(WatcherTestSuite))
}

func TestHealthchecks(t *testing.T) {
	h := NewHealthchecks(prometheus.NewRegistry(), "test")
	ready := func() int {
		rec := httptest.NewRecorder()
		h.Handler.ReadyEndpoint(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
		return rec.Code
	}

	assert.Equal(t, http.StatusServiceUnavailable, ready())

	h.SetSessionCreated()
	assert.Equal(t, http.StatusServiceUnavailable, ready(), "not polled yet")
	assert.Equal(t, errNotPolled, h.poll.Check())

	h.SetPollResult(nil)
	assert.Equal(t, http.StatusOK, ready())

	h.SetPollResult(errors.New("throttled"))
	assert.Equal(t, http.StatusServiceUnavailable, ready())
	assert.EqualError(t, h.poll.Check(), "last poll failed: throttled")
}

func TestFlags_Tick(t *testing.T) {
	f := &Flags{PollInterval: 200 * time.Millisecond}
	done := make(chan struct{})
	c := f.Tick(done)

	select {
	case <-c:
	case <-time.After(100 * time.Millisecond):
		t.Fatal("expected an immediate tick")
	}
	select {
	case <-c:
	case <-time.After(time.Second):
		t.Fatal("expected a tick after the interval")
	}

	close(done)
	for range c {
	}
}

func TestNewFlags(t *testing.T) {
	app := kingpin.New("test", "")
	f := NewFlags(app)
	_, err := app.Parse([]string{"-d", "logs", "--domain", "metrics", "--interval", "30s"})
	require.NoError(t, err)
	assert.Equal(t, []string{"logs", "metrics"}, f.DomainNames)
	assert.Equal(t, 30*time.Second, f.PollInterval)
	assert.Equal(t, time.Hour, f.UpgradeTargetsTTL)

	app = kingpin.New("test", "")
	NewFlags(app)
	_, err = app.Parse(nil)
	assert.Error(t, err, "--domain is required")
}
