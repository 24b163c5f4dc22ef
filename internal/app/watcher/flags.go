package watcher

import (
	"time"

	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/mintel/esconfig/internal/pkg/cmd"
)

const (
	defaultPort          = 8080
	defaultLogLevel      = "INFO"
	defaultAWSMaxRetries = 5
)

// Flags holds command line flags for the watcher App.
type Flags struct {
	// Names of the domains to watch.
	DomainNames []string

	// The interval at which domains are polled.
	PollInterval time.Duration

	// How long to cache upgrade targets of a domain.
	UpgradeTargetsTTL time.Duration

	*cmd.AWSFlags
	*cmd.MonitoringFlags
}

// NewFlags returns a new Flags.
func NewFlags(app *kingpin.Application) *Flags {
	var f Flags

	app.Flag("domain", "Name of an Amazon Elasticsearch Service domain to watch.").
		Short('d').
		Required().
		PlaceHolder("DOMAIN_NAME").
		StringsVar(&f.DomainNames)

	app.Flag("interval", "The interval at which domains should be polled.").
		Short('i').
		Default("1m").
		DurationVar(&f.PollInterval)

	app.Flag("upgrade-targets.ttl", "How long to cache the Elasticsearch versions a domain can be upgraded to.").
		Default("1h").
		DurationVar(&f.UpgradeTargetsTTL)

	f.AWSFlags = cmd.NewAWSFlags(app, defaultAWSMaxRetries)
	f.MonitoringFlags = cmd.NewMonitoringFlags(app, defaultPort, defaultLogLevel)

	return &f
}

// Tick returns a channel that ticks right away and then every
// PollInterval, dropping ticks while the receiver is busy.
func (f *Flags) Tick(done <-chan struct{}) <-chan time.Time {
	c := make(chan time.Time)
	go func() {
		defer close(c)
		select {
		case c <- time.Now():
		case <-done:
			return
		}
		ticker := time.NewTicker(f.PollInterval)
		defer ticker.Stop()
		for {
			select {
			case t := <-ticker.C:
				select {
				case c <- t:
				default:
				}
			case <-done:
				return
			}
		}
	}()
	return c
}
