// Package query runs weather lookups keyed on the debounced city. Requests
// for the same key share one in-flight call; starting a different key cancels
// the previous one so the latest query wins.
package query

import (
	"context"
	"strconv"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"weatherdash/internal/domain"
)

// DefaultMinLength is the longest query that does not trigger a fetch
const DefaultMinLength = 2

// Fetcher retrieves the current weather for a city
type Fetcher interface {
	Current(ctx context.Context, city string) (*domain.Report, error)
}

// ResultMsg carries the outcome of a started query
type ResultMsg struct {
	Seq    uint64
	Key    string
	Report *domain.Report
	Err    error
}

// Normalize returns the dedup key for a raw query
func Normalize(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// Enabled reports whether key is long enough to be fetched
func Enabled(key string, minLen int) bool {
	return len([]rune(strings.TrimSpace(key))) > minLen
}

// Runner executes queries against a Fetcher
type Runner struct {
	fetcher Fetcher
	base    context.Context
	logger  *zap.Logger
	group   singleflight.Group

	mu          sync.Mutex
	seq         uint64
	gen         uint64
	inflightKey string
	inflightCtx context.Context
	cancel      context.CancelFunc
}

// NewRunner creates a runner whose requests are bound to ctx
func NewRunner(ctx context.Context, fetcher Fetcher, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		fetcher: fetcher,
		base:    ctx,
		logger:  logger.Named("query"),
	}
}

// Start begins fetching key and returns the command delivering its ResultMsg
func (r *Runner) Start(key string) tea.Cmd {
	city := strings.TrimSpace(key)
	norm := Normalize(key)

	r.mu.Lock()
	r.seq++
	seq := r.seq
	if r.cancel == nil || r.inflightKey != norm || r.inflightCtx.Err() != nil {
		if r.cancel != nil {
			r.cancel()
		}
		r.inflightCtx, r.cancel = context.WithCancel(r.base)
		r.inflightKey = norm
		r.gen++
	}
	ctx := r.inflightCtx
	// a cancelled call for the same key may still be in the group
	flightKey := norm + "#" + strconv.FormatUint(r.gen, 10)
	r.mu.Unlock()

	r.logger.Debug("query started", zap.Uint64("seq", seq), zap.String("key", norm))

	return func() tea.Msg {
		report, err := r.do(ctx, flightKey, city)
		return ResultMsg{Seq: seq, Key: key, Report: report, Err: err}
	}
}

func (r *Runner) do(ctx context.Context, flightKey, city string) (*domain.Report, error) {
	ch := r.group.DoChan(flightKey, func() (interface{}, error) {
		return r.fetcher.Current(ctx, city)
	})

	select {
	case res := <-ch:
		if res.Shared {
			r.logger.Debug("query shared in-flight request", zap.String("key", flightKey))
		}
		if res.Err != nil {
			return nil, res.Err
		}
		report, _ := res.Val.(*domain.Report)
		return report, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Current reports whether seq belongs to the most recently started query
func (r *Runner) Current(seq uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return seq == r.seq
}

// Cancel aborts the in-flight request and invalidates outstanding results
func (r *Runner) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.inflightKey = ""
}
