package enrichment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"velo-altitude/internal/climb"
)

// Item status values
const (
	StatusEnriched = "enriched"
	StatusCached   = "cached"
	StatusFailed   = "failed"
)

// BatchOptions selects what EnrichBatch does for every climb.
type BatchOptions struct {
	// Side restricts enrichment to one side index; nil enriches all sides
	Side  *int
	Seed  *uint64
	Force bool
}

// BatchItem is the outcome for one climb side.
type BatchItem struct {
	ClimbID string `json:"climbId"`
	Side    string `json:"side,omitempty"`
	Status  string `json:"status"`
	Error   string `json:"error,omitempty"`
}

// BatchReport summarizes an EnrichBatch run.
type BatchReport struct {
	RunID      string           `json:"runId"`
	StartedAt  time.Time        `json:"startedAt"`
	FinishedAt time.Time        `json:"finishedAt"`
	Enriched   int              `json:"enriched"`
	Cached     int              `json:"cached"`
	Failed     int              `json:"failed"`
	Items      []BatchItem      `json:"items"`
	Records    []*EnrichedClimb `json:"records"`
}

func (r *BatchReport) add(item BatchItem, record *EnrichedClimb) {
	switch item.Status {
	case StatusEnriched:
		r.Enriched++
	case StatusCached:
		r.Cached++
	case StatusFailed:
		r.Failed++
	}
	r.Items = append(r.Items, item)
	if record != nil {
		r.Records = append(r.Records, record)
	}
}

// EnrichBatch enriches climbs one after another, spacing store writes by the
// configured write interval. A failing climb is recorded in the report and the
// batch continues; only context cancellation stops it early.
func (s *Service) EnrichBatch(ctx context.Context, climbs []climb.ClimbSummary, opts BatchOptions) (*BatchReport, error) {
	report := &BatchReport{
		RunID:     uuid.NewString(),
		StartedAt: s.opts.Now().UTC(),
		Items:     make([]BatchItem, 0, len(climbs)),
	}
	logger := s.logger.With("run", report.RunID)
	logger.Info("starting batch enrichment", "climbs", len(climbs), "force", opts.Force)

	limiter := rate.NewLimiter(rate.Inf, 1)
	if s.opts.WriteInterval > 0 {
		limiter = rate.NewLimiter(rate.Every(s.opts.WriteInterval), 1)
	}

	for _, summary := range climbs {
		for _, sideIndex := range sideIndexes(summary, opts.Side) {
			if err := ctx.Err(); err != nil {
				report.FinishedAt = s.opts.Now().UTC()
				logger.Warn("batch enrichment cancelled", "processed", len(report.Items))
				return report, err
			}

			req := Request{Climb: summary, Side: sideIndex, Seed: opts.Seed, Force: opts.Force}
			item := BatchItem{ClimbID: summary.Key()}
			if side, err := summary.Side(sideIndex); err == nil {
				item.Side = climb.Slugify(side.Name)
			}

			record, cached, err := s.enrich(ctx, req, limiter.Wait)
			switch {
			case err != nil:
				item.Status = StatusFailed
				item.Error = err.Error()
				logger.Error("failed to enrich climb", "climb", item.ClimbID, "side", sideIndex, "error", err)
			case cached:
				item.Status = StatusCached
			default:
				item.Status = StatusEnriched
			}
			report.add(item, record)
		}
	}

	report.FinishedAt = s.opts.Now().UTC()
	logger.Info("finished batch enrichment",
		"enriched", report.Enriched,
		"cached", report.Cached,
		"failed", report.Failed,
		"duration", report.FinishedAt.Sub(report.StartedAt),
	)
	return report, nil
}

// sideIndexes lists the sides to process. A climb without sides still yields
// one index so its validation failure shows up in the report.
func sideIndexes(summary climb.ClimbSummary, only *int) []int {
	if only != nil {
		return []int{*only}
	}
	if len(summary.Sides) == 0 {
		return []int{0}
	}
	indexes := make([]int, len(summary.Sides))
	for i := range indexes {
		indexes[i] = i
	}
	return indexes
}

// String renders a one-line summary of the report.
func (r *BatchReport) String() string {
	return fmt.Sprintf("run %s: %d enriched, %d cached, %d failed", r.RunID, r.Enriched, r.Cached, r.Failed)
}
