package report

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"crustacean/tracker/internal/domain"

	log "github.com/sirupsen/logrus"
)

const summaryPageSuffix = "_crustaceans.html"
const rawPageSuffix = "_raw.html"

var summaryTemplate = template.Must(template.New("summary").Parse(`<!DOCTYPE html>
<html lang="ko">
<head>
  <meta charset="UTF-8">
  <title>{{ .Date }} 갑각류 시세 요약</title>
  <style>
    table { border-collapse: collapse; width: 100%; }
    th, td { border: 1px solid #ccc; padding: 8px; text-align: center; }
    th { background-color: #f2f2f2; }
  </style>
</head>
<body>
  <h1>{{ .Date }} 줄포상회 갑각류 시세 요약</h1>
  <table>
    <tr><th>품목</th><th>최소(원)</th><th>중간(원)</th><th>최대(원)</th></tr>
    {{ range .Summaries }}
    <tr><td>{{ .Item }}</td><td>{{ .Min }}</td><td>{{ .Mid }}</td><td>{{ .Max }}</td></tr>
    {{ end }}
  </table>
</body>
</html>
`))

var rawTemplate = template.Must(template.New("raw").Parse(`<!DOCTYPE html>
<html lang="ko">
<head>
  <meta charset="UTF-8">
  <title>줄포상회 {{ .Date }} 시세표</title>
</head>
<body>
  <h1>줄포상회 {{ .Date }} 시세표</h1>
  <div>{{ .Content }}</div>
</body>
</html>
`))

var historyTemplate = template.Must(template.New("history").Parse(`<!DOCTYPE html>
<html lang="ko">
<head>
  <meta charset="UTF-8">
  <title>줄포상회 갑각류 누적 시세</title>
  <style>
    body { font-family: sans-serif; }
    table { border-collapse: collapse; width: 100%; }
    th, td { border: 1px solid #ccc; padding: 6px; text-align: center; }
    th { background-color: #f2f2f2; }
  </style>
</head>
<body>
  <h1>줄포상회 갑각류 누적 시세</h1>
  <table>
    <tr><th>date</th><th>item</th><th>price</th></tr>
    {{ range .Records }}
    <tr><td>{{ .Date }}</td><td>{{ .Item }}</td><td>{{ .Price }}</td></tr>
    {{ end }}
  </table>
</body>
</html>
`))

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="ko">
<head>
  <meta charset="UTF-8">
  <title>줄포상회 시세표 목록</title>
</head>
<body>
  <h1>줄포상회 시세표 목록</h1>
  <ul>
    {{ range .Days }}
    <li>{{ .Readable }}<ul>
      {{ range .Pages }}
      <li><a href="{{ .File }}">{{ .Label }}</a></li>
      {{ end }}
    </ul></li>
    {{ end }}
  </ul>
</body>
</html>
`))

// Renderer writes the static report pages into the output directory.
type Renderer struct {
	outputDir string
}

func NewRenderer(outputDir string) *Renderer {
	return &Renderer{outputDir: outputDir}
}

// RenderDailySummary writes the per-day min/mid/max table page and returns
// its filename.
func (r *Renderer) RenderDailySummary(date string, summaries []domain.CategorySummary) (string, error) {
	filename := date + summaryPageSuffix

	data := struct {
		Date      string
		Summaries []domain.CategorySummary
	}{
		Date:      readableDate(date),
		Summaries: summaries,
	}

	if err := r.renderToFile(summaryTemplate, filename, data); err != nil {
		return "", err
	}

	log.Infof("Wrote daily summary page %s", filename)
	return filename, nil
}

// RenderRawPost preserves the posting text as a page of its own.
func (r *Renderer) RenderRawPost(date, content string) (string, error) {
	filename := date + rawPageSuffix

	data := struct {
		Date    string
		Content string
	}{
		Date:    readableDate(date),
		Content: content,
	}

	if err := r.renderToFile(rawTemplate, filename, data); err != nil {
		return "", err
	}
	return filename, nil
}

// RenderHistoryTable writes the cumulative table page over the full record
// set.
func (r *Renderer) RenderHistoryTable(records []domain.HistoryRecord) error {
	data := struct {
		Records []domain.HistoryRecord
	}{Records: records}

	return r.renderToFile(historyTemplate, "crustacean_prices_table.html", data)
}

type indexPage struct {
	File  string
	Label string
}

type indexDay struct {
	Date     string
	Readable string
	Pages    []indexPage
}

// RenderIndex regenerates index.html from the pages currently present in
// the output directory, grouped per date.
func (r *Renderer) RenderIndex() error {
	entries, err := os.ReadDir(r.outputDir)
	if err != nil {
		return fmt.Errorf("failed to list output dir %s: %w", r.outputDir, err)
	}

	grouped := make(map[string][]string)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".html") || name == "index.html" {
			continue
		}
		date := strings.SplitN(strings.TrimSuffix(name, ".html"), "_", 2)[0]
		grouped[date] = append(grouped[date], name)
	}

	days := make([]indexDay, 0, len(grouped))
	for date, files := range grouped {
		sort.Strings(files)
		pages := make([]indexPage, 0, len(files))
		for _, file := range files {
			pages = append(pages, indexPage{File: file, Label: pageLabel(file)})
		}
		days = append(days, indexDay{Date: date, Readable: readableDate(date), Pages: pages})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })

	data := struct {
		Days []indexDay
	}{Days: days}

	return r.renderToFile(indexTemplate, "index.html", data)
}

func (r *Renderer) renderToFile(tmpl *template.Template, filename string, data any) error {
	if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir %s: %w", r.outputDir, err)
	}

	path := filepath.Join(r.outputDir, filename)
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	if err := tmpl.Execute(file, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", path, err)
	}
	return nil
}

func pageLabel(filename string) string {
	switch {
	case strings.Contains(filename, "raw"):
		return "원문"
	case strings.Contains(filename, "crustaceans"):
		return "갑각류 요약"
	case strings.Contains(filename, "prices_table"):
		return "누적 시세"
	default:
		return "기타"
	}
}

// readableDate renders YYYYMMDD as "YYYY년 M월 D일", falling back to the
// raw string for anything that does not look like a date.
func readableDate(date string) string {
	if len(date) != 8 {
		return date
	}
	month, err1 := strconv.Atoi(date[4:6])
	day, err2 := strconv.Atoi(date[6:])
	if err1 != nil || err2 != nil {
		return date
	}
	return fmt.Sprintf("%s년 %d월 %d일", date[:4], month, day)
}
