// Package domainctl implements a command line tool for inspecting
// and changing Amazon Elasticsearch Service domains.
package domainctl

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/google/uuid" // Random reservation names.
	"github.com/pkg/errors"
	"go.uber.org/zap"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/mintel/esconfig/internal/pkg/cmd"
	"github.com/mintel/esconfig/pkg/ctxlog"
	"github.com/mintel/esconfig/pkg/esconfig"
	"github.com/mintel/esconfig/pkg/esconfig/esconfigiface"
)

const (
	Name  = "domainctl"
	Usage = "Inspect and change Amazon Elasticsearch Service domains."
)

// Subcommand names.
const (
	cmdDescribe     = "describe"
	cmdPending      = "pending"
	cmdUpgradeCheck = "upgrade-check"
	cmdTag          = "tag"
	cmdPurchase     = "purchase"
	cmdHistory      = "history"
)

// describeBatchSize is the most domains DescribeElasticsearchDomains
// accepts per call.
const describeBatchSize = 5

// App holds application state.
type App struct {
	*kingpin.Application

	flags  *Flags
	out    io.Writer
	client esconfigiface.ESConfigAPI

	// newName returns a reservation name when none is given.
	newName func() string
}

// NewApp returns a new App.
func NewApp() *App {
	app := &App{
		Application: kingpin.New(filepath.Base(os.Args[0]), Usage),
		out:         os.Stdout,
		newName:     func() string { return "reservation-" + uuid.New().String() },
	}
	app.flags = NewFlags(app.Application)
	return app
}

// Main is the main method of App and should be called
// in main.main() with the subcommand returned by flag parsing.
func (app *App) Main(command string) {
	logger, teardown := app.flags.SetupLogger()
	defer teardown()

	ctx, cancel := cmd.WithInterrupt(ctxlog.WithLogger(context.Background(), logger))
	defer cancel()

	sess, err := app.flags.NewSession()
	if err != nil {
		logger.Fatal("error creating AWS session", zap.Error(err))
	}
	app.client = esconfig.New(sess)

	if err := app.run(ctx, command); err != nil {
		logger.Fatal("error running command", zap.String("command", command), zap.Error(err))
	}
}

func (app *App) run(ctx context.Context, command string) error {
	switch command {
	case cmdDescribe:
		return app.describe(ctx)
	case cmdPending:
		return app.pending(ctx)
	case cmdUpgradeCheck:
		return app.upgradeCheck(ctx)
	case cmdTag:
		return app.tag(ctx)
	case cmdPurchase:
		return app.purchase(ctx)
	case cmdHistory:
		return app.history(ctx)
	}
	return fmt.Errorf("unknown command %q", command)
}

func (app *App) describe(ctx context.Context) error {
	domains := app.flags.Describe.Domains
	var statuses []*esconfig.ElasticsearchDomainStatus
	for start := 0; start < len(domains); start += describeBatchSize {
		end := start + describeBatchSize
		if end > len(domains) {
			end = len(domains)
		}
		in := new(esconfig.DescribeElasticsearchDomainsRequest).SetDomainNames(aws.StringSlice(domains[start:end]))
		out, err := app.client.DescribeElasticsearchDomainsWithContext(ctx, in)
		if err != nil {
			return errors.Wrap(err, "error describing domains")
		}
		statuses = append(statuses, out.DomainStatusList...)
	}
	return cmd.WriteJSON(app.out, new(esconfig.DescribeElasticsearchDomainsResult).SetDomainStatusList(statuses))
}

func (app *App) pending(ctx context.Context) error {
	domain := app.flags.Pending.Domain
	out, err := app.client.DescribeElasticsearchDomainConfigWithContext(ctx,
		new(esconfig.DescribeElasticsearchDomainConfigRequest).SetDomainName(domain))
	if err != nil {
		return errors.Wrapf(err, "error describing config of domain %s", domain)
	}
	if out.DomainConfig == nil {
		return nil
	}
	for _, option := range out.DomainConfig.PendingOptions() {
		if _, err := fmt.Fprintln(app.out, option); err != nil {
			return err
		}
	}
	return nil
}

func (app *App) upgradeCheck(ctx context.Context) error {
	f := app.flags.UpgradeCheck
	out, err := app.client.UpgradeElasticsearchDomainWithContext(ctx, new(esconfig.UpgradeElasticsearchDomainRequest).
		SetDomainName(f.Domain).
		SetTargetVersion(f.Target).
		SetPerformCheckOnly(true))
	if err != nil {
		return errors.Wrapf(err, "error checking upgrade of domain %s to %s", f.Domain, f.Target)
	}
	ctxlog.L(ctx).Info("upgrade eligibility check started", zap.String("domain", f.Domain), zap.String("target", f.Target))
	return cmd.WriteJSON(app.out, out)
}

func (app *App) tag(ctx context.Context) error {
	f := app.flags.Tag
	keys := make([]string, 0, len(f.Tags))
	for k := range f.Tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	tags := make([]*esconfig.Tag, len(keys))
	for i, k := range keys {
		tags[i] = new(esconfig.Tag).SetKey(k).SetValue(f.Tags[k])
	}

	err := app.client.AddTagsWithContext(ctx, new(esconfig.AddTagsRequest).SetARN(f.ARN).SetTagList(tags))
	if err != nil {
		return errors.Wrapf(err, "error tagging %s", f.ARN)
	}
	ctxlog.L(ctx).Info("tagged", zap.String("arn", f.ARN), zap.Strings("keys", keys))
	return nil
}

func (app *App) purchase(ctx context.Context) error {
	f := app.flags.Purchase
	if f.Name == "" {
		f.Name = app.newName()
	}
	out, err := app.client.PurchaseReservedElasticsearchInstanceOfferingWithContext(ctx,
		new(esconfig.PurchaseReservedElasticsearchInstanceOfferingRequest).
			SetReservedElasticsearchInstanceOfferingId(f.Offering).
			SetReservationName(f.Name).
			SetInstanceCount(f.Count))
	if err != nil {
		return errors.Wrapf(err, "error purchasing offering %s", f.Offering)
	}
	return cmd.WriteJSON(app.out, out)
}

func (app *App) history(ctx context.Context) error {
	domain := app.flags.History.Domain
	in := new(esconfig.GetUpgradeHistoryRequest).SetDomainName(domain)
	var histories []*esconfig.UpgradeHistory
	for {
		out, err := app.client.GetUpgradeHistoryWithContext(ctx, in)
		if err != nil {
			return errors.Wrapf(err, "error getting upgrade history of domain %s", domain)
		}
		histories = append(histories, out.UpgradeHistories...)
		if aws.StringValue(out.NextToken) == "" {
			break
		}
		in = new(esconfig.GetUpgradeHistoryRequest).SetDomainName(domain).SetNextToken(aws.StringValue(out.NextToken))
	}
	return cmd.WriteJSON(app.out, new(esconfig.GetUpgradeHistoryResult).SetUpgradeHistories(histories))
}
