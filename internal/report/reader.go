package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"crustacean/tracker/internal/domain"

	"github.com/PuerkitoBio/goquery"
)

// SummaryPages lists the daily summary pages in dir, oldest first.
func SummaryPages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	pages := make([]string, 0)
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), summaryPageSuffix) {
			pages = append(pages, filepath.Join(dir, entry.Name()))
		}
	}
	return pages, nil
}

// PageDate extracts the YYYYMMDD prefix from a summary page path.
func PageDate(path string) string {
	return strings.SplitN(filepath.Base(path), "_", 2)[0]
}

// ReadSummaryPage parses a rendered daily summary page back into category
// summaries. Rows with missing or non-numeric cells are skipped.
func ReadSummaryPage(r io.Reader) ([]domain.CategorySummary, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse summary page: %w", err)
	}

	summaries := make([]domain.CategorySummary, 0)
	doc.Find("tr").Each(func(i int, row *goquery.Selection) {
		cols := row.Find("td")
		if cols.Length() < 4 {
			return // header row or malformed
		}

		item := strings.TrimSpace(cols.Eq(0).Text())
		min, err1 := strconv.Atoi(strings.TrimSpace(cols.Eq(1).Text()))
		mid, err2 := strconv.Atoi(strings.TrimSpace(cols.Eq(2).Text()))
		max, err3 := strconv.Atoi(strings.TrimSpace(cols.Eq(3).Text()))
		if item == "" || err1 != nil || err2 != nil || err3 != nil {
			return
		}

		summaries = append(summaries, domain.CategorySummary{
			Item: domain.Category(item),
			Min:  min,
			Mid:  mid,
			Max:  max,
		})
	})

	return summaries, nil
}

// ReadSummaryFile is ReadSummaryPage over a file on disk.
func ReadSummaryFile(path string) ([]domain.CategorySummary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open summary page %s: %w", path, err)
	}
	defer file.Close()

	return ReadSummaryPage(file)
}
