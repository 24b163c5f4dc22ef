package domainctl

import (
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/mintel/esconfig/internal/pkg/cmd"
)

const (
	defaultLogLevel      = "WARN"
	defaultAWSMaxRetries = 3
)

// Flags holds command line flags and arguments for the domainctl App.
type Flags struct {
	Describe struct {
		Domains []string
	}
	Pending struct {
		Domain string
	}
	UpgradeCheck struct {
		Domain string
		Target string
	}
	Tag struct {
		ARN  string
		Tags map[string]string
	}
	Purchase struct {
		Offering string
		Name     string
		Count    int64
	}
	History struct {
		Domain string
	}

	*cmd.AWSFlags
	*cmd.LoggingFlags
}

// NewFlags returns a new Flags and registers the subcommands on app.
func NewFlags(app *kingpin.Application) *Flags {
	var f Flags

	describe := app.Command(cmdDescribe, "Print the status of domains as JSON.")
	describe.Arg("domain", "Name of a domain.").Required().StringsVar(&f.Describe.Domains)

	pending := app.Command(cmdPending, "List the option groups of a domain whose changes are not active yet.")
	pending.Arg("domain", "Name of the domain.").Required().StringVar(&f.Pending.Domain)

	check := app.Command(cmdUpgradeCheck, "Check whether a domain can be upgraded to an Elasticsearch version.")
	check.Arg("domain", "Name of the domain.").Required().StringVar(&f.UpgradeCheck.Domain)
	check.Arg("target", "Elasticsearch version to upgrade to.").Required().StringVar(&f.UpgradeCheck.Target)

	tag := app.Command(cmdTag, "Attach tags to a domain.")
	tag.Arg("arn", "ARN of the domain.").Required().StringVar(&f.Tag.ARN)
	f.Tag.Tags = make(map[string]string)
	tag.Arg("tags", "Tags to attach, as KEY=VALUE.").Required().StringMapVar(&f.Tag.Tags)

	purchase := app.Command(cmdPurchase, "Purchase reserved instances.")
	purchase.Arg("offering", "ID of the reserved instance offering.").Required().StringVar(&f.Purchase.Offering)
	purchase.Flag("name", "Name of the reservation. Defaults to a random name.").
		PlaceHolder("NAME").
		StringVar(&f.Purchase.Name)
	purchase.Flag("count", "Number of instances to reserve.").
		Default("1").
		Int64Var(&f.Purchase.Count)

	history := app.Command(cmdHistory, "Print the upgrade history of a domain as JSON.")
	history.Arg("domain", "Name of the domain.").Required().StringVar(&f.History.Domain)

	f.AWSFlags = cmd.NewAWSFlags(app, defaultAWSMaxRetries)
	f.LoggingFlags = cmd.NewLoggingFlags(app, defaultLogLevel)

	return &f
}
