package service

import (
	"context"
	"errors"
	"sort"

	"crustacean/tracker/internal/band"
	"crustacean/tracker/internal/domain"
	"crustacean/tracker/internal/market"
	"crustacean/tracker/internal/notify"
	"crustacean/tracker/internal/parser"
	"crustacean/tracker/internal/report"
	"crustacean/tracker/internal/state"
	"crustacean/tracker/internal/store"

	"golang.org/x/sync/errgroup"

	log "github.com/sirupsen/logrus"
)

type Service struct {
	source       band.PostSource
	historyStore store.HistoryStore
	stateManager state.Manager
	notifier     notify.Notifier
	renderer     *report.Renderer
	outputDir    string
	categories   []domain.Category
	threshold    float64
	maxWorkers   int
}

func NewService(
	source band.PostSource,
	historyStore store.HistoryStore,
	stateManager state.Manager,
	notifier notify.Notifier,
	renderer *report.Renderer,
	outputDir string,
	categories []domain.Category,
	threshold float64,
	maxWorkers int,
) *Service {
	return &Service{
		source:       source,
		historyStore: historyStore,
		stateManager: stateManager,
		notifier:     notifier,
		renderer:     renderer,
		outputDir:    outputDir,
		categories:   categories,
		threshold:    threshold,
		maxWorkers:   maxWorkers,
	}
}

// Ingest runs one day's pipeline end to end: fetch the market post, parse
// and summarize it, append today's minimum prices to the history, evaluate
// alerts and regenerate the report pages.
func (s *Service) Ingest(ctx context.Context) error {
	date, text, err := s.source.FetchMarketPost(ctx)
	if err != nil {
		if errors.Is(err, band.ErrNoPost) {
			log.Warn("No market post found today, nothing to ingest")
			return nil
		}
		return err
	}

	entries := parser.Parse(text)
	if len(entries) == 0 {
		log.Warnf("Market post for %s contained no parseable price lines", date)
		return nil
	}
	log.Infof("Parsed %d price entries for %s", len(entries), date)

	grouped := market.Group(entries, s.categories)
	summaries := market.Summarize(grouped)
	if len(summaries) == 0 {
		log.Warnf("No tracked category matched any entry for %s", date)
		return nil
	}

	lastDate, err := s.stateManager.GetLastIngestedDate()
	if err != nil {
		return err
	}
	if lastDate == date {
		log.Warnf("Date %s already ingested, skipping to avoid duplicate history rows", date)
		return nil
	}

	if _, err := s.historyStore.Load(); err != nil {
		return err
	}

	todayPrices := market.MinPrices(summaries)
	s.historyStore.Append(date, todayPrices)
	if err := s.historyStore.Save(); err != nil {
		return err
	}
	log.Infof("Recorded %d categories for %s, history now holds %d records",
		len(todayPrices), date, len(s.historyStore.Records()))

	alerts := market.Evaluate(s.historyStore.Records(), todayPrices, s.categories, s.threshold)
	if len(alerts) > 0 {
		// A failed notification never rolls back the already persisted day.
		if err := s.notifier.SendAlerts(ctx, alerts); err != nil {
			log.Errorf("Failed to send notification: %v", err)
		}
	} else {
		log.Info("No category is meaningfully below its historical mean today")
	}

	if err := s.renderPages(date, text, summaries); err != nil {
		return err
	}

	return s.stateManager.SetLastIngestedDate(date)
}

// Rebuild reconstructs the history store from the daily summary pages kept
// in the output directory, replacing whatever the store currently holds.
func (s *Service) Rebuild(ctx context.Context) error {
	pages, err := report.SummaryPages(s.outputDir)
	if err != nil {
		return err
	}
	if len(pages) == 0 {
		log.Warnf("No summary pages found under %s, nothing to rebuild", s.outputDir)
		return nil
	}

	recordsChan := make(chan []domain.HistoryRecord, len(pages))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxWorkers)

	for _, page := range pages {
		page := page
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			summaries, err := report.ReadSummaryFile(page)
			if err != nil {
				return err
			}

			date := report.PageDate(page)
			records := make([]domain.HistoryRecord, 0, len(summaries))
			for _, summary := range summaries {
				if !s.tracked(summary.Item) {
					continue
				}
				records = append(records, domain.HistoryRecord{
					Date:  date,
					Item:  summary.Item,
					Price: summary.Min,
				})
			}
			recordsChan <- records
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	close(recordsChan)

	records := make([]domain.HistoryRecord, 0, len(pages)*len(s.categories))
	for batch := range recordsChan {
		records = append(records, batch...)
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].Item != records[j].Item {
			return records[i].Item < records[j].Item
		}
		return records[i].Date < records[j].Date
	})

	s.historyStore.Replace(records)
	if err := s.historyStore.Save(); err != nil {
		return err
	}
	log.Infof("Rebuilt history with %d records from %d pages", len(records), len(pages))

	if err := s.renderer.RenderHistoryTable(records); err != nil {
		return err
	}
	return s.renderer.RenderIndex()
}

// Report regenerates the cumulative table and index pages from the store
// without fetching anything.
func (s *Service) Report(ctx context.Context) error {
	records, err := s.historyStore.Load()
	if err != nil {
		return err
	}

	if err := s.renderer.RenderHistoryTable(records); err != nil {
		return err
	}
	return s.renderer.RenderIndex()
}

func (s *Service) renderPages(date, text string, summaries []domain.CategorySummary) error {
	if _, err := s.renderer.RenderRawPost(date, text); err != nil {
		return err
	}
	if _, err := s.renderer.RenderDailySummary(date, summaries); err != nil {
		return err
	}
	if err := s.renderer.RenderHistoryTable(s.historyStore.Records()); err != nil {
		return err
	}
	return s.renderer.RenderIndex()
}

func (s *Service) tracked(category domain.Category) bool {
	for _, c := range s.categories {
		if c == category {
			return true
		}
	}
	return false
}
