package cmd

import (
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/stretchr/testify/assert" // Test assertions e.g. equality.
	"github.com/stretchr/testify/require"

	kingpin "gopkg.in/alecthomas/kingpin.v2" // Command line flag parsing.
)

func TestNewAWSFlags(t *testing.T) {
	app := kingpin.New("testapp", "usage")
	f := NewAWSFlags(app, 5)
	_, err := app.Parse([]string{
		"--aws.region", "us-east-2",
		"--aws.profile", "foobar",
		"--aws.max-retries", "1",
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, f.MaxRetries)
	assert.Equal(t, "us-east-2", f.Region)
	assert.Equal(t, "foobar", f.Profile)
	assert.Empty(t, f.Endpoint)
}

func TestAWSFlags_AWSConfig(t *testing.T) {
	f := &AWSFlags{
		Region:     "us-east-2",
		MaxRetries: 5,
		Endpoint:   "http://localhost:4571",
	}
	cfg := f.AWSConfig()
	assert.Equal(t, "us-east-2", aws.StringValue(cfg.Region))
	assert.Equal(t, 5, aws.IntValue(cfg.MaxRetries))
	assert.Equal(t, "http://localhost:4571", aws.StringValue(cfg.Endpoint))

	assert.Nil(t, (&AWSFlags{}).AWSConfig().Region)
}

func TestAWSFlags_NewSession(t *testing.T) {
	f := &AWSFlags{
		Region:     "eu-west-1",
		MaxRetries: 2,
	}
	sess, err := f.NewSession(aws.NewConfig().WithCredentials(
		credentials.NewStaticCredentials("AKID", "SECRET", ""),
	))
	require.NoError(t, err)
	assert.Equal(t, "eu-west-1", aws.StringValue(sess.Config.Region))
	assert.Equal(t, 2, aws.IntValue(sess.Config.MaxRetries))
}
