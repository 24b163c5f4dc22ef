package cmd

import (
	"strconv"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/ec2metadata"
	"github.com/aws/aws-sdk-go/aws/session"
)

// AWSFlags represents a set of flags for connecting to AWS.
type AWSFlags struct {
	// Name of AWS region to use.
	Region string

	// Name of a shared AWS credentials profile to use.
	Profile string

	// Max number of retries to attempt on connection error.
	MaxRetries int

	// Endpoint overrides the service endpoint. Mostly useful for testing.
	Endpoint string
}

// NewAWSFlags returns a new AWSFlags.
func NewAWSFlags(app Flagger, maxRetries int) *AWSFlags {
	var f AWSFlags

	app.Flag("aws.region", "Name of AWS region to use.").
		PlaceHolder("REGION_NAME").
		StringVar(&f.Region)

	app.Flag("aws.profile", "Name of AWS credentials profile to use.").
		PlaceHolder("PROFILE_NAME").
		StringVar(&f.Profile)

	app.Flag("aws.max-retries", "Max number of retries to attempt on connection failure.").
		Hidden().
		Default(strconv.Itoa(maxRetries)).
		IntVar(&f.MaxRetries)

	app.Flag("aws.endpoint", "Override the Elasticsearch Service endpoint URL.").
		Hidden().
		PlaceHolder("URL").
		StringVar(&f.Endpoint)

	return &f
}

// AWSConfig returns the aws.Config overrides set by these flags.
func (f *AWSFlags) AWSConfig() *aws.Config {
	cfg := aws.NewConfig().WithMaxRetries(f.MaxRetries)
	if f.Region != "" {
		cfg = cfg.WithRegion(f.Region)
	}
	if f.Endpoint != "" {
		cfg = cfg.WithEndpoint(f.Endpoint)
	}
	return cfg
}

// NewSession returns a session built from the shared AWS config
// and these flags.
//
// If no region is configured anywhere, the region is looked
// up from EC2 instance metadata.
func (f *AWSFlags) NewSession(cfgs ...*aws.Config) (*session.Session, error) {
	cfg := f.AWSConfig()
	cfg.MergeIn(cfgs...)
	sess, err := session.NewSessionWithOptions(session.Options{
		Config:            *cfg,
		Profile:           f.Profile,
		SharedConfigState: session.SharedConfigEnable,
	})
	if err != nil {
		return nil, err
	}

	if aws.StringValue(sess.Config.Region) == "" {
		metaClient := ec2metadata.New(sess)
		if region, err := metaClient.Region(); err == nil {
			sess.Config.Region = aws.String(region)
		}
	}

	return sess, nil
}
