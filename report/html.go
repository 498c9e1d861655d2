package report

import (
	"fmt"
	"html/template"
	"io"
	"os"

	"github.com/tsawler/redline/model"
)

var htmlTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Comparison Results</title>
<style>
body { font-family: Helvetica, Arial, sans-serif; margin: 2rem auto; max-width: 50rem; color: #222; }
h1 { text-align: center; }
hr { border: none; border-top: 1px solid #222; margin: 2rem 0; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #222; padding: 0.4rem 0.6rem; text-align: left; }
th { background: #dcdcdc; text-align: center; }
td.score { text-align: center; }
.files { display: flex; justify-content: space-between; }
.total { font-size: 2.5rem; font-weight: bold; }
.stat { font-size: 1.4rem; font-weight: bold; }
.label { font-size: 0.85rem; color: #555; }
</style>
</head>
<body>
<h1>Comparison Results</h1>

<div class="files">
<div>
<strong>{{.Old.Name}}</strong><br>
{{.Old.Pages}} pages ({{.Old.SizeKB}} KB)<br>
{{.Old.Modified.Format "Jan 2, 2006 15:04"}}
</div>
<div>
<strong>{{.New.Name}}</strong><br>
{{.New.Pages}} pages ({{.New.SizeKB}} KB)<br>
{{.New.Modified.Format "Jan 2, 2006 15:04"}}
</div>
</div>
<hr>

<h2>Change Statistics</h2>
<p><span class="total">{{.Summary.TotalChanges}}</span> <span class="label">Total Changes</span></p>
<p><span class="stat">{{.Summary.Replacements}}</span> <span class="label">Replacements</span>
&nbsp; <span class="stat">{{.Summary.Insertions}}</span> <span class="label">Insertions</span>
&nbsp; <span class="stat">{{.Summary.Deletions}}</span> <span class="label">Deletions</span>
&nbsp; <span class="stat">{{.Summary.StylingChanges}}</span> <span class="label">Styling</span></p>
<hr>

<h2>Similarity Analysis</h2>
<table>
<tr><th>Metric</th><th>Score</th><th>Description</th></tr>
{{range .Metrics}}<tr><td>{{.Metric}}</td><td class="score">{{.Score}}</td><td>{{.Description}}</td></tr>
{{end}}</table>
<hr>

<h2>Legend: Change Types Explained</h2>
{{range .Legend}}<h3>{{.Title}}</h3>
<ul>
{{range .Items}}<li>{{.}}</li>
{{end}}</ul>
{{end}}
</body>
</html>
`))

// WriteHTML renders the report as a standalone HTML page.
func (r *Report) WriteHTML(w io.Writer) error {
	data := struct {
		Old, New Info
		Summary  model.ChangeSummary
		Metrics  []metricRow
		Legend   []legendSection
	}{
		Old:     r.Old,
		New:     r.New,
		Summary: r.Summary,
		Metrics: r.metricRows(),
		Legend:  legendSections,
	}
	if err := htmlTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("render HTML report: %w", err)
	}
	return nil
}

// SaveHTML writes the HTML report to a file.
func (r *Report) SaveHTML(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create HTML report: %w", err)
	}

	if err := r.WriteHTML(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
