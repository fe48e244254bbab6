package quote

import (
	"context"
	"sync"
	"time"

	"hoteldesk/internal/adapters"
	"hoteldesk/internal/domain"

	"github.com/sirupsen/logrus"
)

// State of a single booking form's price estimate.
type State string

const (
	// StateIdle: room, check-in or check-out still missing.
	StateIdle State = "idle"
	// StateReady: inputs complete, a query is scheduled.
	StateReady State = "ready"
	// StateQuerying: a rate calculation is in flight.
	StateQuerying State = "querying"
	// StateQuoted: an estimate is displayed until an input changes.
	StateQuoted State = "quoted"
)

const (
	defaultDebounce   = 300 * time.Millisecond
	perRequestTimeout = 5 * time.Second
)

// Orchestrator keeps one draft's price estimate in sync with its inputs
// without flooding the backend. Input changes are debounced; every issued
// request carries a monotonically increasing sequence number and only the
// response matching the latest issued sequence is applied, so a slow stale
// response can never overwrite a newer quote.
type Orchestrator struct {
	calc     adapters.RateCalculator
	cache    adapters.QuoteCache
	debounce time.Duration

	mu     sync.Mutex
	state  State
	query  domain.RateQuery
	quote  *domain.RateQuote
	seq    uint64
	timer  *time.Timer
	closed bool
}

func New(calc adapters.RateCalculator, cache adapters.QuoteCache, debounce time.Duration) *Orchestrator {
	if debounce < 0 {
		debounce = defaultDebounce
	}
	return &Orchestrator{calc: calc, cache: cache, debounce: debounce, state: StateIdle}
}

// SetQuery feeds a fresh input tuple. An unchanged tuple is a no-op; an
// incomplete one drops back to Idle and invalidates any in-flight request;
// a complete one schedules a debounced recalculation superseding whatever
// was previously scheduled or in flight.
func (o *Orchestrator) SetQuery(q domain.RateQuery) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return
	}
	if o.state != StateIdle && q.Fingerprint() == o.query.Fingerprint() {
		return
	}

	o.query = q
	o.seq++
	if o.timer != nil {
		o.timer.Stop()
		o.timer = nil
	}

	if !q.Complete() {
		o.state = StateIdle
		return
	}

	o.state = StateReady
	seq := o.seq
	o.timer = time.AfterFunc(o.debounce, func() { o.issue(seq) })
}

func (o *Orchestrator) issue(seq uint64) {
	o.mu.Lock()
	if o.closed || seq != o.seq {
		o.mu.Unlock()
		return
	}
	q := o.query
	o.state = StateQuerying
	o.mu.Unlock()

	if o.cache != nil {
		if amount, ok := o.cache.Get(q.Fingerprint()); ok {
			o.apply(seq, q, amount, true)
			return
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), perRequestTimeout)
	defer cancel()

	amount, err := o.calc.CalculateRate(ctx, q)
	if err != nil {
		// Never surfaced to the user: the amount field stays editable as a
		// fallback and the previous quote, if any, remains displayed.
		logrus.WithError(err).WithFields(logrus.Fields{
			"room_id":   q.RoomID,
			"check_in":  q.CheckIn,
			"check_out": q.CheckOut,
		}).Warn("Rate calculation failed, keeping previous quote")

		o.mu.Lock()
		if seq == o.seq && o.state == StateQuerying {
			if o.quote != nil {
				o.state = StateQuoted
			} else {
				o.state = StateReady
			}
		}
		o.mu.Unlock()
		return
	}

	o.apply(seq, q, amount, false)
}

func (o *Orchestrator) apply(seq uint64, q domain.RateQuery, amount float64, fromCache bool) {
	o.mu.Lock()
	if o.closed || seq != o.seq {
		// A newer query was issued while this one was in flight.
		o.mu.Unlock()
		return
	}
	o.quote = &domain.RateQuote{Amount: amount, ReceivedAt: time.Now().UTC()}
	o.state = StateQuoted
	o.mu.Unlock()

	if !fromCache && o.cache != nil {
		o.cache.Set(q.Fingerprint(), amount)
	}
}

func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Quote returns the currently displayed estimate, if any.
func (o *Orchestrator) Quote() (domain.RateQuote, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.quote == nil {
		return domain.RateQuote{}, false
	}
	return *o.quote, true
}

// Close invalidates pending work; late responses are discarded.
func (o *Orchestrator) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.closed = true
	o.seq++
	if o.timer != nil {
		o.timer.Stop()
		o.timer = nil
	}
}
