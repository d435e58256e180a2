// Package fetch assembles a best-effort complete dataset out of many small
// paginated upstream batches.
package fetch

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/fantasyboard/fb-tui/internal/auth"
	"github.com/fantasyboard/fb-tui/internal/fantasy"
)

const (
	// BatchSize is the fixed page size requested from the upstream.
	BatchSize = 25

	defaultMaxAttempts = 3
	defaultBackoffBase = time.Second
)

// BatchFetcher issues one upstream call per batch. *fantasy.Client
// satisfies this; tests substitute their own.
type BatchFetcher interface {
	Players(ctx context.Context, selector fantasy.Selector) ([]fantasy.Player, error)
}

// Orchestrator loops the batch fetcher until one of the stop conditions is
// met: the record budget is reached, a batch comes back shorter than
// requested, two consecutive batches are empty, or a batch fails all its
// retry attempts. Batches are issued strictly sequentially; the upstream
// rate-limits aggressively and the start offset must advance monotonically
// to keep the performance ranking intact.
type Orchestrator struct {
	fetcher     BatchFetcher
	batchSize   int
	maxAttempts int
	backoffBase time.Duration
	sleep       func(ctx context.Context, d time.Duration) error
	progressFn  func(collected int)
}

func NewOrchestrator(fetcher BatchFetcher) *Orchestrator {
	return &Orchestrator{
		fetcher:     fetcher,
		batchSize:   BatchSize,
		maxAttempts: defaultMaxAttempts,
		backoffBase: defaultBackoffBase,
		sleep:       sleepCtx,
	}
}

// OnProgress registers a callback invoked after every successful batch with
// the number of records collected so far. Used to surface fetch progress in
// the UI.
func (o *Orchestrator) OnProgress(fn func(collected int)) {
	o.progressFn = fn
}

// progress is the loop accumulator. Keeping it explicit makes each
// termination condition testable on its own.
type progress struct {
	start     int
	collected []fantasy.Player
	emptyRuns int
}

// FetchAll collects up to maxRecords for the selector. It never fails:
// when a batch exhausts its attempts the loop stops and whatever has been
// collected so far is returned. Partial data beats no data.
func (o *Orchestrator) FetchAll(ctx context.Context, selector fantasy.Selector, maxRecords int) []fantasy.Player {
	state := progress{}

	for len(state.collected) < maxRecords {
		if ctx.Err() != nil {
			break
		}

		batchSel := selector
		batchSel.Start = state.start
		batchSel.Count = o.batchSize

		batch, errBatch := o.fetchBatch(ctx, batchSel)

		// Advance regardless of outcome so a retried window is never
		// refetched out of order.
		state.start += o.batchSize

		if errBatch != nil {
			slog.Warn("Batch failed all attempts, returning partial dataset",
				slog.Int("start", batchSel.Start), slog.Int("collected", len(state.collected)),
				slog.String("error", errBatch.Error()))

			break
		}

		if len(batch) == 0 {
			state.emptyRuns++
			// One empty batch can be transient noise; two in a row is the
			// end of the data.
			if state.emptyRuns >= 2 {
				break
			}

			continue
		}

		state.collected = append(state.collected, batch...)
		state.emptyRuns = 0

		if o.progressFn != nil {
			o.progressFn(len(state.collected))
		}

		if len(batch) < o.batchSize {
			// Upstream exhaustion heuristic. A final batch that happens to
			// exactly fill the page slips through and costs one extra,
			// correctly empty, request.
			break
		}
	}

	return state.collected
}

func (o *Orchestrator) fetchBatch(ctx context.Context, selector fantasy.Selector) ([]fantasy.Player, error) {
	var lastErr error

	for attempt := 1; attempt <= o.maxAttempts; attempt++ {
		if attempt > 1 {
			delay := o.backoffBase * (1 << (attempt - 2))
			slog.Debug("Retrying batch", slog.Int("attempt", attempt),
				slog.Int("start", selector.Start), slog.Duration("delay", delay))

			if err := o.sleep(ctx, delay); err != nil {
				return nil, err
			}
		}

		batch, errBatch := o.fetcher.Players(ctx, selector)
		if errBatch == nil {
			return batch, nil
		}

		if errors.Is(errBatch, auth.ErrSessionExpired) {
			// Terminal for the whole session; retrying would not even
			// reach the network.
			return nil, errBatch
		}

		lastErr = errBatch
	}

	return nil, lastErr
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
