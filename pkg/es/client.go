// Package es holds extensions to the Elasticsearch client used to read the
// topology and settings of a self-managed cluster.
package es

import (
	"context"
	"time"

	"github.com/cenkalti/backoff"           // Backoff/retry utils
	elastic "github.com/olivere/elastic/v7" // Elasticsearch client.
)

// DialContextRetry returns a new Elasticsearch client that uses
// exponential backoff to retry in case of errors. More importantly, it
// uses retry/backoff for the initial connection to Elasticsearch,
// which the standard elastic.NewClient() func doesn't.
//
// Dialing is retried until max has elapsed. If the max duration <= 0,
// a client without retry is returned.
// DialContextRetry won't retry on non-connection errors.
func DialContextRetry(ctx context.Context, init, max time.Duration, options ...elastic.ClientOptionFunc) (*elastic.Client, error) {
	if max <= 0 {
		return elastic.DialContext(ctx, options...)
	}
	options = append(options, elastic.SetRetrier(
		elastic.NewBackoffRetrier(elastic.NewExponentialBackoff(init, max)),
	))

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = init
	b.MaxInterval = max
	b.MaxElapsedTime = max

	var client *elastic.Client
	err := backoff.Retry(func() error {
		c, err := elastic.DialContext(ctx, options...)
		if err == nil {
			client = c
			return nil
		}
		if !elastic.IsConnErr(err) {
			return backoff.Permanent(err)
		}
		return err
	}, backoff.WithContext(b, ctx))
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}
	return client, nil
}
