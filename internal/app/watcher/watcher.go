package watcher

import (
	"context"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/cenkalti/backoff"         // Backoff/retry utils.
	cache "github.com/patrickmn/go-cache" // In-memory cache.
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mintel/esconfig/internal/pkg/metrics"
	"github.com/mintel/esconfig/pkg/ctxlog"
	"github.com/mintel/esconfig/pkg/esconfig"
	"github.com/mintel/esconfig/pkg/esconfig/esconfigiface"
)

// describeBatchSize is the most domains DescribeElasticsearchDomains
// accepts per call.
const describeBatchSize = 5

// Watcher polls Amazon Elasticsearch Service domains and exports
// their state as Prometheus metrics.
type Watcher struct {
	client  esconfigiface.ESConfigAPI
	domains []string
	inst    *Instrumentation
	targets *cache.Cache

	// NewBackOff returns the backoff used between failed polls.
	NewBackOff func() backoff.BackOff

	// TargetsTTL is how long upgrade targets stay cached.
	TargetsTTL time.Duration

	mu      sync.Mutex
	options map[string]map[string]string // domain -> option group -> state
}

// NewWatcher returns a new Watcher. Upgrade targets of a domain are
// kept in targets for TargetsTTL, an hour by default.
func NewWatcher(client esconfigiface.ESConfigAPI, domains []string, inst *Instrumentation, targets *cache.Cache) *Watcher {
	return &Watcher{
		client:     client,
		domains:    domains,
		inst:       inst,
		targets:    targets,
		NewBackOff: func() backoff.BackOff { return backoff.NewExponentialBackOff() },
		TargetsTTL: time.Hour,
		options:    make(map[string]map[string]string),
	}
}

// PollRetry polls until success, retrying with w.NewBackOff for at most
// maxElapsed. A non-positive maxElapsed retries until ctx is done.
// A poll already in flight at the deadline is allowed to finish.
func (w *Watcher) PollRetry(ctx context.Context, maxElapsed time.Duration) error {
	logger := ctxlog.L(ctx)
	b := w.NewBackOff()
	if eb, ok := b.(*backoff.ExponentialBackOff); ok {
		eb.MaxElapsedTime = maxElapsed
	}
	retryCtx := ctx
	if maxElapsed > 0 {
		var cancel context.CancelFunc
		retryCtx, cancel = context.WithTimeout(ctx, maxElapsed)
		defer cancel()
	}
	return backoff.RetryNotify(
		func() error { return w.Poll(ctx) },
		backoff.WithContext(b, retryCtx),
		func(err error, d time.Duration) {
			logger.Warn("poll failed, retrying", zap.Error(err), zap.Duration("backoff", d))
		},
	)
}

// Poll describes all domains once and updates metrics.
func (w *Watcher) Poll(ctx context.Context) (err error) {
	timer := metrics.NewVecTimer(w.inst.PollDuration)
	defer func() {
		timer.ObserveErr(err)
		w.inst.Polls.With(prometheus.Labels{metrics.LabelStatus: metrics.Status(err)}).Inc()
	}()

	statuses, err := w.describeDomains(ctx)
	if err != nil {
		return err
	}

	found := make(map[string]bool, len(statuses))
	g, gctx := errgroup.WithContext(ctx)
	for _, s := range statuses {
		s := s
		found[aws.StringValue(s.DomainName)] = true
		g.Go(func() error { return w.pollDomain(gctx, s) })
	}
	for _, d := range w.domains {
		if !found[d] {
			ctxlog.L(ctx).Warn("domain not found", zap.String("domain", d))
			w.forget(d)
		}
	}
	return g.Wait()
}

// describeDomains describes w.domains in concurrent batches.
func (w *Watcher) describeDomains(ctx context.Context) ([]*esconfig.ElasticsearchDomainStatus, error) {
	g, ctx := errgroup.WithContext(ctx)
	batches := make([][]*esconfig.ElasticsearchDomainStatus, (len(w.domains)+describeBatchSize-1)/describeBatchSize)
	for i := range batches {
		i := i
		end := (i + 1) * describeBatchSize
		if end > len(w.domains) {
			end = len(w.domains)
		}
		names := w.domains[i*describeBatchSize : end]
		g.Go(func() error {
			in := new(esconfig.DescribeElasticsearchDomainsRequest).SetDomainNames(aws.StringSlice(names))
			out, err := w.client.DescribeElasticsearchDomainsWithContext(ctx, in)
			if err != nil {
				return errors.Wrapf(err, "error describing domains %v", names)
			}
			batches[i] = out.DomainStatusList
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	var statuses []*esconfig.ElasticsearchDomainStatus
	for _, b := range batches {
		statuses = append(statuses, b...)
	}
	return statuses, nil
}

func (w *Watcher) pollDomain(ctx context.Context, s *esconfig.ElasticsearchDomainStatus) error {
	domain := aws.StringValue(s.DomainName)
	ctx = ctxlog.WithDomain(ctx, domain)
	labels := prometheus.Labels{metrics.LabelDomain: domain}

	w.inst.Processing.With(labels).Set(boolGauge(aws.BoolValue(s.Processing)))
	w.inst.UpgradeProcessing.With(labels).Set(boolGauge(aws.BoolValue(s.UpgradeProcessing)))
	w.inst.Deleted.With(labels).Set(boolGauge(aws.BoolValue(s.Deleted)))
	if cc := s.ElasticsearchClusterConfig; cc != nil {
		w.inst.InstanceCount.With(labels).Set(float64(aws.Int64Value(cc.InstanceCount)))
	}
	if sw := s.ServiceSoftwareOptions; sw != nil {
		w.inst.UpdateAvailable.With(labels).Set(boolGauge(aws.BoolValue(sw.UpdateAvailable)))
	}

	if aws.BoolValue(s.Deleted) {
		w.updateOptions(ctx, domain, nil)
		return nil
	}

	out, err := w.client.DescribeElasticsearchDomainConfigWithContext(ctx,
		new(esconfig.DescribeElasticsearchDomainConfigRequest).SetDomainName(domain))
	if err != nil {
		return errors.Wrapf(err, "error describing config of domain %s", domain)
	}
	if out.DomainConfig != nil {
		w.updateOptions(ctx, domain, out.DomainConfig.OptionStatuses())
	}

	targets, err := w.upgradeTargets(ctx, domain)
	if err != nil {
		return err
	}
	w.inst.UpgradeTargets.With(labels).Set(float64(len(targets)))
	return nil
}

// updateOptions sets the option gauges and logs state changes
// since the previous poll.
func (w *Watcher) updateOptions(ctx context.Context, domain string, statuses map[string]*esconfig.OptionStatus) {
	logger := ctxlog.L(ctx)

	w.mu.Lock()
	prev := w.options[domain]
	cur := make(map[string]string, len(statuses))
	w.options[domain] = cur
	w.mu.Unlock()

	for option, st := range statuses {
		state := aws.StringValue(st.State)
		cur[option] = state
		w.inst.OptionActive.With(prometheus.Labels{
			metrics.LabelDomain: domain,
			metrics.LabelOption: option,
		}).Set(boolGauge(st.IsActive()))

		if old, ok := prev[option]; ok && old != state {
			logger.Info("option state changed",
				zap.String("option", option),
				zap.String("from", old),
				zap.String("to", state),
			)
		}
	}
	for option := range prev {
		if _, ok := cur[option]; !ok {
			w.inst.OptionActive.DeleteLabelValues(domain, option)
			logger.Debug("option group gone", zap.String("option", option))
		}
	}
}

// forget drops all state and metric series of a domain that is
// no longer returned by the API.
func (w *Watcher) forget(domain string) {
	w.mu.Lock()
	prev := w.options[domain]
	delete(w.options, domain)
	w.mu.Unlock()

	options := make([]string, 0, len(prev))
	for option := range prev {
		options = append(options, option)
	}
	w.inst.deleteDomain(domain, options)
	w.targets.Delete(domain)
}

// upgradeTargets returns the versions domain can be upgraded to.
func (w *Watcher) upgradeTargets(ctx context.Context, domain string) ([]string, error) {
	if v, ok := w.targets.Get(domain); ok {
		return v.([]string), nil
	}
	out, err := w.client.GetCompatibleElasticsearchVersionsWithContext(ctx,
		new(esconfig.GetCompatibleElasticsearchVersionsRequest).SetDomainName(domain))
	if err != nil {
		return nil, errors.Wrapf(err, "error getting upgrade targets of domain %s", domain)
	}
	targets := []string{}
	for _, m := range out.CompatibleElasticsearchVersions {
		targets = append(targets, aws.StringValueSlice(m.TargetVersions)...)
	}
	w.targets.Set(domain, targets, w.TargetsTTL)
	ctxlog.L(ctx).Debug("got upgrade targets", zap.Strings("targets", targets))
	return targets, nil
}
