package planner

import (
	"time"

	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/mintel/esconfig/internal/pkg/cmd"
	"github.com/mintel/esconfig/pkg/esconfig"
)

const (
	defaultLogLevel               = "WARN"
	defaultElasticsearchRetryInit = 150 * time.Millisecond
	defaultElasticsearchRetryMax  = 30 * time.Second
)

// Flags holds command line flags for the planner App.
type Flags struct {
	Options

	*cmd.ElasticsearchFlags
	*cmd.LoggingFlags
}

// NewFlags returns a new Flags.
func NewFlags(app *kingpin.Application) *Flags {
	var f Flags

	app.Flag("domain", "Name of the Amazon Elasticsearch Service domain to plan.").
		Short('d').
		Required().
		PlaceHolder("DOMAIN_NAME").
		StringVar(&f.DomainName)

	app.Flag("instance-type", "Instance type of data nodes.").
		Default(esconfig.ESPartitionInstanceTypeR5LargeElasticsearch).
		EnumVar(&f.InstanceType, esconfig.ESPartitionInstanceType_Values()...)

	app.Flag("master-instance-type", "Instance type of dedicated master nodes. Defaults to --instance-type.").
		EnumVar(&f.MasterInstanceType, esconfig.ESPartitionInstanceType_Values()...)

	app.Flag("volume-type", "EBS volume type of data nodes.").
		Default(esconfig.VolumeTypeGp2).
		EnumVar(&f.VolumeType, esconfig.VolumeType_Values()...)

	f.ElasticsearchFlags = cmd.NewElasticsearchFlags(app, defaultElasticsearchRetryInit, defaultElasticsearchRetryMax)
	f.LoggingFlags = cmd.NewLoggingFlags(app, defaultLogLevel)

	return &f
}
