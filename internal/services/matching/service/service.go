// Package service implements the matching engine: candidate generation for draft requests,
// the orchestrator run after a found item is stored, and the request initiated search
package service

import (
	"bytes"
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"lostfound/internal/core/features"
	"lostfound/internal/core/normalize"
	"lostfound/internal/core/similarity"
	perr "lostfound/internal/platform/errors"
	"lostfound/internal/platform/logger"
	"lostfound/internal/platform/metrics"
	str "lostfound/internal/platform/strings"
	invdom "lostfound/internal/services/inventory/domain"
	"lostfound/internal/services/matching/domain"
	notifydom "lostfound/internal/services/notify/domain"

	"github.com/google/uuid"
)

// Defaults and fixed limits of the engine
const (
	DefaultThreshold         = 60
	DefaultWorkers           = 4
	DefaultNotifyConcurrency = 4

	CandidateLimit = 5
	SearchLimit    = 10

	minTokenLen = 3
)

// Config for the matching service
type Config struct {
	Threshold         int // kept when score >= Threshold, clamped into [0,100]
	Workers           int
	NotifyConcurrency int
}

// Service implements domain.ServicePort
type Service struct {
	Inventory invdom.ReaderPort
	Notify    notifydom.Dispatcher
	Scorer    *similarity.Scorer
	Sink      domain.RunSink
	Cfg       Config

	now func() time.Time
}

// New constructs a matching service. A nil sink drops telemetry
func New(inv invdom.ReaderPort, disp notifydom.Dispatcher, sc *similarity.Scorer, sink domain.RunSink, cfg Config) *Service {
	if inv == nil {
		panic("matching.Service requires an inventory reader")
	}
	if disp == nil {
		panic("matching.Service requires a dispatcher")
	}
	if sc == nil {
		panic("matching.Service requires a scorer")
	}
	if sink == nil {
		sink = nopSink{}
	}
	w := cfg.Workers
	if w <= 0 {
		w = DefaultWorkers
	}
	nc := cfg.NotifyConcurrency
	if nc <= 0 {
		nc = DefaultNotifyConcurrency
	}
	return &Service{
		Inventory: inv,
		Notify:    disp,
		Scorer:    sc,
		Sink:      sink,
		Cfg: Config{
			Threshold:         min(max(cfg.Threshold, 0), 100),
			Workers:           w,
			NotifyConcurrency: nc,
		},
		now: time.Now,
	}
}

// Tokens lowercases name and description, splits on whitespace and keeps the distinct
// tokens of at least three characters in order of first appearance. Compatibility and
// width forms are kept so each token matches the stored text it came from under ILIKE
func Tokens(name, description string) []string {
	fields := strings.Fields(normalize.Fold(name + " " + description))
	seen := make(map[string]struct{}, len(fields))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) < minTokenLen {
			continue
		}
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}

// CheckMatches lists up to five available items a draft request may be describing, newest first.
// A draft with no usable tokens and no category returns an empty list without a storage call
func (s *Service) CheckMatches(ctx context.Context, in domain.CheckInput) ([]invdom.FoundItem, error) {
	toks := Tokens(in.Name, in.Description)
	if len(toks) == 0 && in.CategoryID == nil {
		return []invdom.FoundItem{}, nil
	}
	xs, err := s.Inventory.Candidates(ctx, invdom.CandidateQuery{
		Tokens:     toks,
		CategoryID: in.CategoryID,
		Limit:      CandidateLimit,
	})
	if err != nil {
		logger.C(ctx).Warn().Err(err).Int("tokens", len(toks)).Msg("candidate search failed")
		return nil, err
	}
	if len(xs) > CandidateLimit {
		xs = xs[:CandidateLimit]
	}
	return xs, nil
}

// OnFoundItemCreated scores item against every active request, keeps the ones at or above the
// threshold and sends each requester a notice. It never fails: an inventory error yields an
// empty batch with Err set, and delivery errors are reported per outcome
func (s *Service) OnFoundItemCreated(ctx context.Context, item invdom.FoundItem) domain.Batch {
	start := s.now()
	log := logger.C(ctx).With().Str("item_id", item.ID.String()).Logger()

	b := domain.Batch{
		Item:      item,
		Results:   []domain.MatchResult{},
		Outcomes:  []domain.Outcome{},
		Threshold: s.Cfg.Threshold,
	}

	reqs, err := s.Inventory.ActiveRequests(ctx)
	if err != nil {
		log.Error().Err(err).Msg("load active requests; run counts as zero matches")
		b.Err = err
		s.finish(ctx, &log, &b, start)
		return b
	}

	b.Scanned = len(reqs)
	b.Results = s.rank(item, reqs)
	b.Outcomes = s.notify(ctx, &log, item, b.Results)
	s.finish(ctx, &log, &b, start)
	return b
}

// SearchForRequest lists up to ten available items for a stored request: same category when the
// request has one, and the first word of its name contained in the item name or description
func (s *Service) SearchForRequest(ctx context.Context, requestID uuid.UUID) ([]invdom.FoundItem, error) {
	lr, err := s.Inventory.GetLostRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	return s.Inventory.SearchAvailable(ctx, invdom.ItemSearch{
		Token:      str.FirstField(lr.Name),
		CategoryID: lr.CategoryID,
		Limit:      SearchLimit,
	})
}

// Extract returns the features of text in display form
func (s *Service) Extract(text string) features.Summary {
	return s.Scorer.Extractor().Extract(text).Summary()
}

// TextSimilarity scores two free texts in [0,100]
func (s *Service) TextSimilarity(a, b string) float64 { return s.Scorer.TextSimilarity(a, b) }

// Score scores a found record against a request record
func (s *Service) Score(found, req similarity.Record) similarity.Result {
	return s.Scorer.MatchScore(found, req)
}

// rank scores every request on the worker group, drops the ones under the threshold and sorts
// the rest by score desc, request age asc, then id
func (s *Service) rank(item invdom.FoundItem, reqs []invdom.LostRequest) []domain.MatchResult {
	found := ItemRecord(item)
	scored := make([]similarity.Result, len(reqs))

	sem := make(chan struct{}, s.Cfg.Workers)
	wg := sync.WaitGroup{}
	for i := range reqs {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer func() { <-sem; wg.Done() }()
			scored[i] = s.Scorer.MatchScore(found, RequestRecord(reqs[i]))
		}(i)
	}
	wg.Wait()

	out := make([]domain.MatchResult, 0, len(reqs))
	for i, r := range scored {
		if r.Score < s.Cfg.Threshold {
			continue
		}
		out = append(out, domain.MatchResult{
			RequestID: reqs[i].ID,
			Request:   reqs[i],
			Score:     r.Score,
			Reasons:   r.Reasons,
		})
	}
	slices.SortFunc(out, compareResults)
	return out
}

func compareResults(a, b domain.MatchResult) int {
	if c := cmp.Compare(b.Score, a.Score); c != 0 {
		return c
	}
	if c := a.Request.CreatedAt.Compare(b.Request.CreatedAt); c != 0 {
		return c
	}
	return bytes.Compare(a.RequestID[:], b.RequestID[:])
}

// notify sends one notice per result on a bounded task group. Each task owns its outcome slot
func (s *Service) notify(ctx context.Context, log *logger.Logger, item invdom.FoundItem, results []domain.MatchResult) []domain.Outcome {
	out := make([]domain.Outcome, len(results))

	sem := make(chan struct{}, s.Cfg.NotifyConcurrency)
	wg := sync.WaitGroup{}
	for i := range results {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer func() { <-sem; wg.Done() }()
			r := results[i]
			o := domain.Outcome{RequestID: r.RequestID, Recipient: r.Request.OwnerAddress}
			o.Err = s.dispatch(ctx, notifydom.Notice{
				RecipientAddress: r.Request.OwnerAddress,
				ItemName:         item.Name,
				Score:            r.Score,
				LocationLabel:    item.LocationLabel,
				ImageRef:         item.ImageRef,
				RequestID:        r.RequestID,
				ItemID:           item.ID,
			})
			if o.Err != nil {
				log.Warn().Err(o.Err).
					Str("recipient", o.Recipient).
					Str("request_id", r.RequestID.String()).
					Int("score", r.Score).
					Msg("match notice failed")
			}
			metrics.ObserveNotice(o.Err)
			out[i] = o
		}(i)
	}
	wg.Wait()
	return out
}

// dispatch turns a dispatcher panic into that notice's error
func (s *Service) dispatch(ctx context.Context, n notifydom.Notice) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = perr.PanicErrf("dispatcher panic: %v", p)
		}
	}()
	return s.Notify.Dispatch(ctx, n)
}

// finish stamps the duration and records metrics and the telemetry row
func (s *Service) finish(ctx context.Context, log *logger.Logger, b *domain.Batch, start time.Time) {
	b.Duration = s.now().Sub(start)

	scores := make([]int, len(b.Results))
	for i, r := range b.Results {
		scores[i] = r.Score
	}
	metrics.ObserveMatchRun(b.Duration, b.Scanned, scores, b.Err != nil)

	notified := b.Notified()
	rec := domain.RunRecord{
		RunID:     uuid.New(),
		ItemID:    b.Item.ID,
		Scanned:   b.Scanned,
		Matched:   len(b.Results),
		Notified:  notified,
		Failed:    len(b.Outcomes) - notified,
		Threshold: b.Threshold,
		Duration:  b.Duration,
		CreatedAt: start.UTC(),
	}
	if err := s.Sink.Record(ctx, rec); err != nil {
		log.Warn().Err(err).Msg("record match run")
	}

	log.Info().
		Int("scanned", rec.Scanned).
		Int("matched", rec.Matched).
		Int("notified", rec.Notified).
		Int("failed", rec.Failed).
		Dur("took", b.Duration).
		Msg("match run")
}

// ItemRecord is the scorer's view of a found item
func ItemRecord(it invdom.FoundItem) similarity.Record {
	return similarity.Record{Name: it.Name, Description: it.Description, CategoryID: it.CategoryID, LocationID: it.LocationID}
}

// RequestRecord is the scorer's view of a lost request
func RequestRecord(lr invdom.LostRequest) similarity.Record {
	return similarity.Record{Name: lr.Name, Description: lr.Description, CategoryID: lr.CategoryID, LocationID: lr.LocationID}
}

type nopSink struct{}

func (nopSink) Record(context.Context, domain.RunRecord) error { return nil }
