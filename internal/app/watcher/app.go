// Package watcher implements an app that polls Amazon Elasticsearch
// Service domains and exports their state as Prometheus metrics.
package watcher

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	cache "github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
	tomb "gopkg.in/tomb.v2"

	"github.com/mintel/esconfig/internal/pkg/cmd"
	"github.com/mintel/esconfig/internal/pkg/metrics"
	"github.com/mintel/esconfig/pkg/ctxlog"
	"github.com/mintel/esconfig/pkg/esconfig"
	"github.com/mintel/esconfig/pkg/esconfig/esconfigiface"
)

const (
	Name  = "watcher"
	Usage = "Export the state of Amazon Elasticsearch Service domains as Prometheus metrics."
)

// App holds application state.
type App struct {
	*kingpin.Application

	flags   *Flags           // Command line flags
	health  *Healthchecks    // healthchecks HTTP handler
	inst    *Instrumentation // App-specific Prometheus metrics
	targets *cache.Cache     // Upgrade targets by domain

	// API clients.
	clients struct {
		ESConfig esconfigiface.ESConfigAPI
	}
}

// NewApp returns a new App.
func NewApp(r prometheus.Registerer) (*App, error) {
	namespace := cmd.BuildPromFQName("", Name)

	app := &App{
		Application: kingpin.New(filepath.Base(os.Args[0]), Usage),
		health:      NewHealthchecks(r, Name),
		targets:     cache.New(cache.NoExpiration, 10*time.Minute),
	}
	app.inst = NewInstrumentation(namespace, app.targets)
	if err := r.Register(app.inst); err != nil {
		return nil, err
	}
	app.flags = NewFlags(app.Application)

	// Add action to set up the AWS client after
	// flags are parsed.
	app.Action(func(*kingpin.ParseContext) error {
		httpClient, err := metrics.InstrumentHTTP(nil, r, namespace, map[string]string{"recipient": "aws"})
		if err != nil {
			return err
		}
		sess, err := app.flags.NewSession(aws.NewConfig().WithHTTPClient(httpClient))
		if err != nil {
			return err
		}
		if err := metrics.InstrumentAWS(&sess.Handlers, r, namespace, nil); err != nil {
			return err
		}
		app.clients.ESConfig = esconfig.New(sess)
		app.health.SetSessionCreated()
		return nil
	})

	return app, nil
}

// Main is the main method of App and should be called
// in main.main() after flag parsing.
func (app *App) Main(g prometheus.Gatherer) {
	logger, teardown := app.flags.SetupLogger()
	defer teardown()

	ctx, cancel := cmd.WithInterrupt(ctxlog.WithLogger(context.Background(), logger))
	defer cancel()

	t, ctx := tomb.WithContext(ctx)

	// Serve the healthchecks and Prometheus metrics.
	srv := app.flags.NewMonitoringServer(app.health.Handler, g)
	t.Go(func() error {
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	t.Go(func() error {
		<-t.Dying()
		return srv.Shutdown(context.Background())
	})

	w := NewWatcher(app.clients.ESConfig, app.flags.DomainNames, app.inst, app.targets)
	w.TargetsTTL = app.flags.UpgradeTargetsTTL
	t.Go(func() error {
		app.loop(ctx, w)
		return nil
	})

	if err := t.Wait(); err != nil && err != context.Canceled {
		logger.Fatal("error serving healthchecks/metrics", zap.Error(err))
	}
}

// loop polls on every tick until ctx is done.
func (app *App) loop(ctx context.Context, w *Watcher) {
	logger := ctxlog.L(ctx)
	for range app.flags.Tick(ctx.Done()) {
		err := w.PollRetry(ctx, app.flags.PollInterval)
		app.health.SetPollResult(err)
		if err != nil && ctx.Err() == nil {
			logger.Error("error polling domains", zap.Error(err))
		}
	}
}
