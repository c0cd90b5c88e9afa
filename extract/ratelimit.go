package extract

import (
	"context"
	"sync"

	"github.com/gujnews/khabar"
	"golang.org/x/time/rate"
)

var _ khabar.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter spaces out renders against each news site. Every host
// gets its own token bucket, so extractions for different sites proceed
// in parallel while repeated hits on one site are throttled. There is
// no burst allowance: a batch of URLs from the same paper is paced at
// exactly the configured rate.
type DomainLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	rps     float64
}

// NewDomainLimiter creates a DomainLimiter allowing rps renders per
// second per host. Buckets are created on first contact with a host and
// kept for the process lifetime.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		buckets: make(map[string]*rate.Limiter),
		rps:     rps,
	}
}

// Wait blocks until the domain's bucket permits another render, or the
// context is canceled.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	d.mu.Lock()
	bucket, ok := d.buckets[domain]
	if !ok {
		bucket = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.buckets[domain] = bucket
	}
	d.mu.Unlock()

	return bucket.Wait(ctx)
}
