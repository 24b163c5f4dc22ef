// Package testutil contains miscellaneous testing utilities.
package testutil

import (
	"context"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httputil"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"go.uber.org/zap" // Logging.
	"go.uber.org/zap/zaptest"
	gock "gopkg.in/h2non/gock.v1" // HTTP request mocking.

	"github.com/mintel/esconfig/pkg/ctxlog"
)

// AWSEndpoint is the endpoint used by sessions returned from AWSSession.
const AWSEndpoint = "https://es.us-east-1.amazonaws.com"

// TestLogger returns a zap Logger that logs all messages to the given testing.TB.
// It replaces the zap global Logger and redirects the stdlib log to the test Logger.
func TestLogger(t *testing.T) (logger *zap.Logger, teardown func()) {
	logger = zaptest.NewLogger(t)
	teardownLogger1 := zap.ReplaceGlobals(logger)
	teardownLogger2 := zap.RedirectStdLog(logger)
	teardown = func() {
		teardownLogger2()
		teardownLogger1()
		_ = logger.Sync()
	}
	return
}

// GockLogObserver returns a gock.ObserverFunc that logs HTTP requests to a zap Logger.
func GockLogObserver(logger *zap.Logger) gock.ObserverFunc {
	return func(request *http.Request, mock gock.Mock) {
		bytes, _ := httputil.DumpRequestOut(request, true)
		logger.Debug("gock intercepted http request",
			zap.String("request", string(bytes)),
			zap.Bool("matches_mock", mock != nil),
		)
	}
}

// LoadTestData is a helper to load test data from a `testdata` directory relaive to the CWD.
func LoadTestData(name string) string {
	path := filepath.Join("testdata", name) // relative path
	data, err := ioutil.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("failed to load test data file %s: %s", name, err))
	}
	return string(data)
}

// AWSSession returns an AWS session with static credentials and a fixed
// endpoint, suitable for use with gock. Requests are never retried.
// The session's HTTP client always sends through gock's transport, even if
// the environment would make the SDK build its own transport.
func AWSSession(t *testing.T) *session.Session {
	sess, err := session.NewSession(&aws.Config{
		Region:      aws.String("us-east-1"),
		Endpoint:    aws.String(AWSEndpoint),
		Credentials: credentials.NewStaticCredentials("AKIDEXAMPLE", "SECRET", ""),
		MaxRetries:  aws.Int(0),
		HTTPClient:  &http.Client{Transport: gock.NewTransport()},
	})
	if err != nil {
		t.Fatalf("failed to create AWS session: %s", err)
	}
	return sess
}

// ClientTestSetup sets up zap test logging, intercepts HTTP requests using gock, and creates
// a context with the zap logger embedded.
func ClientTestSetup(t *testing.T) (ctx context.Context, logger *zap.Logger, teardown func()) {
	logger, teardownLogging := TestLogger(t)

	gock.Intercept()
	gock.Observe(GockLogObserver(logger))

	ctx, cancel := context.WithCancel(ctxlog.WithLogger(context.Background(), logger))

	teardown = func() {
		cancel()
		gock.OffAll()
		gock.Observe(nil)
		teardownLogging()
	}

	return
}
