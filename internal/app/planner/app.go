// Package planner implements an app that reads a self-managed
// Elasticsearch cluster and prints a request to create an equivalent
// Amazon Elasticsearch Service domain.
package planner

import (
	"context"
	"io"
	"os"
	"path/filepath"

	elastic "github.com/olivere/elastic/v7"
	"go.uber.org/zap"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/mintel/esconfig/internal/pkg/cmd"
	"github.com/mintel/esconfig/pkg/ctxlog"
)

const (
	Name  = "planner"
	Usage = "Plan an Amazon Elasticsearch Service domain from a running Elasticsearch cluster."
)

// App holds application state.
type App struct {
	*kingpin.Application

	flags *Flags
	out   io.Writer
}

// NewApp returns a new App.
func NewApp() *App {
	app := &App{
		Application: kingpin.New(filepath.Base(os.Args[0]), Usage),
		out:         os.Stdout,
	}
	app.flags = NewFlags(app.Application)
	return app
}

// Main is the main method of App and should be called
// in main.main() after flag parsing.
func (app *App) Main() {
	logger, teardown := app.flags.SetupLogger()
	defer teardown()

	ctx, cancel := cmd.WithInterrupt(ctxlog.WithLogger(context.Background(), logger))
	defer cancel()

	client, err := app.flags.NewElasticsearchClient(ctx)
	if err != nil {
		logger.Fatal("error connecting to Elasticsearch", zap.Error(err))
	}
	defer client.Stop()

	if err := app.run(ctx, client); err != nil {
		logger.Fatal("error planning domain", zap.Error(err))
	}
}

func (app *App) run(ctx context.Context, client *elastic.Client) error {
	ctx = ctxlog.WithDomain(ctx, app.flags.DomainName)
	c, err := GetCluster(ctx, client)
	if err != nil {
		return err
	}
	req, err := Plan(ctx, c, app.flags.Options)
	if err != nil {
		return err
	}
	return cmd.WriteJSON(app.out, req)
}
