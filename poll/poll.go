package poll

import (
	"errors"
	"fmt"
	"log"
	"time"

	"ec2-latent-worker/resources"
)

const (
	// DefaultInterval is the delay between status queries.
	DefaultInterval = 5 * time.Second
	// DefaultNotFoundRetries bounds the spot-request flavor of waiting,
	// where the request ID may lag behind the create call.
	DefaultNotFoundRetries = 10
	// TolerateNotFound makes the waiter treat "not found yet" as still
	// pending with no ceiling. Used for instance waits, where propagation
	// lag is expected and the launch call has already succeeded.
	TolerateNotFound = -1
)

// Fetcher queries the current status of a remote resource.
type Fetcher func() (string, error)

type Config struct {
	// Resource identifies what is being waited on, for log lines only.
	Resource string
	// Pending reports whether a status still awaits a terminal resolution.
	Pending func(status string) bool
	// Interval between queries; DefaultInterval when zero.
	Interval time.Duration
	// NotFoundRetries bounds how many "not found yet" responses are
	// tolerated before giving up. Zero treats not-found as fatal,
	// TolerateNotFound retries with no ceiling.
	NotFoundRetries int
	Logger          *log.Logger
}

// WaitForStatus polls fetch until it reports a status outside c.Pending and
// returns that status along with the time spent waiting. NotFoundError
// responses are retried according to c.NotFoundRetries; any other error
// propagates unchanged. A progress line is logged for every full minute of
// waiting.
func WaitForStatus(fetch Fetcher, c Config) (string, time.Duration, error) {
	interval := c.Interval
	if interval == 0 {
		interval = DefaultInterval
	}

	var elapsed time.Duration
	notFoundResponses := 0

	status, err := fetch()
	for {
		if err != nil {
			var notFound resources.NotFoundError
			if !errors.As(err, &notFound) {
				return "", elapsed, err
			}
			if c.NotFoundRetries == 0 {
				return "", elapsed, err
			}
			notFoundResponses++
			if c.NotFoundRetries > 0 && notFoundResponses > c.NotFoundRetries {
				return "", elapsed, fmt.Errorf("giving up on %s after %d not-found responses: %s", c.Resource, notFoundResponses, err)
			}
			if c.Logger != nil {
				c.Logger.Printf("failed to find %s, retrying\n", c.Resource)
			}
		} else if !c.Pending(status) {
			return status, elapsed, nil
		}

		time.Sleep(interval)
		elapsed += interval
		if c.Logger != nil && elapsed%time.Minute == 0 {
			c.Logger.Printf("has waited %d minutes on %s\n", int(elapsed/time.Minute), c.Resource)
		}

		status, err = fetch()
	}
}
