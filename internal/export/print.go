package export

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/quangdm/cloudscore/internal/models"
	"github.com/quangdm/cloudscore/internal/scoring"
)

// WritePrintDocument renders an A4-landscape HTML document the caller can
// open in a browser and print. Layout follows the in-app print export:
// record header, roster table with per-student average and band, then the
// class summary.
func WritePrintDocument(w io.Writer, rec *models.GradeRecord, columns []string) error {
	type row struct {
		Ordinal int
		Name    string
		Scores  []string
		Average string
		Band    string
	}

	rows := make([]row, 0, len(rec.Students))
	for i, st := range rec.Students {
		r := row{Ordinal: i + 1, Name: st.Name}
		for _, col := range columns {
			r.Scores = append(r.Scores, st.Scores[col])
		}
		if avg, ok := scoring.Average(st, rec.ScoreColumns); ok {
			r.Average = fmt.Sprintf("%.2f", avg)
			r.Band = bandLabels[scoring.Classify(avg)]
		} else {
			r.Average = "-"
		}
		rows = append(rows, r)
	}

	data := struct {
		RecordName  string
		RecordClass string
		Columns     []string
		Rows        []row
		Summary     scoring.Summary
		PrintedAt   string
	}{
		RecordName:  rec.RecordName,
		RecordClass: rec.RecordClass,
		Columns:     columns,
		Rows:        rows,
		Summary:     scoring.Summarize(rec.Students, rec.ScoreColumns),
		PrintedAt:   time.Now().Format("02/01/2006 15:04"),
	}
	if data.RecordName == "" {
		data.RecordName = "Bảng điểm"
	}

	return printTmpl.Execute(w, data)
}

var bandLabels = map[scoring.Band]string{
	scoring.BandExcellent: "Giỏi",
	scoring.BandGood:      "Khá",
	scoring.BandAverage:   "Trung bình",
	scoring.BandWeak:      "Yếu",
}

var printTmpl = template.Must(template.New("print").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>{{.RecordName}}</title>
<style>
	@page { size: A4 landscape; margin: 15mm; }
	body { font-family: 'Times New Roman', serif; font-size: 13px; margin: 0; padding: 20px; }
	.header { text-align: center; margin-bottom: 18px; }
	.header h1 { font-size: 18px; margin: 0 0 4px; }
	.header .meta { color: #444; }
	table { width: 100%; border-collapse: collapse; }
	th, td { border: 1px solid #333; padding: 4px 6px; text-align: center; }
	td.name { text-align: left; }
	.summary { margin-top: 16px; }
	.summary td, .summary th { border: none; text-align: left; padding: 2px 12px 2px 0; }
</style>
</head>
<body>
<div class="header">
	<h1>{{.RecordName}}</h1>
	<div class="meta">{{if .RecordClass}}Lớp: {{.RecordClass}} · {{end}}In lúc {{.PrintedAt}}</div>
</div>
<table>
	<thead>
		<tr>
			<th>STT</th>
			<th>Họ và tên</th>
			{{range .Columns}}<th>{{.}}</th>{{end}}
			<th>TB</th>
			<th>Xếp loại</th>
		</tr>
	</thead>
	<tbody>
		{{range .Rows}}<tr>
			<td>{{.Ordinal}}</td>
			<td class="name">{{.Name}}</td>
			{{range .Scores}}<td>{{.}}</td>{{end}}
			<td>{{.Average}}</td>
			<td>{{.Band}}</td>
		</tr>
		{{end}}
	</tbody>
</table>
{{if gt .Summary.Graded 0}}
<table class="summary">
	<tr>
		<td>Giỏi: {{.Summary.Excellent.Count}} ({{.Summary.Excellent.Percent}}%)</td>
		<td>Khá: {{.Summary.Good.Count}} ({{.Summary.Good.Percent}}%)</td>
		<td>Trung bình: {{.Summary.Average.Count}} ({{.Summary.Average.Percent}}%)</td>
		<td>Yếu: {{.Summary.Weak.Count}} ({{.Summary.Weak.Percent}}%)</td>
	</tr>
	<tr>
		<td>Điểm TB lớp: {{.Summary.ClassAverage}}</td>
		<td>Cao nhất: {{.Summary.Highest}}</td>
		<td>Thấp nhất: {{.Summary.Lowest}}</td>
		<td></td>
	</tr>
</table>
{{end}}
</body>
</html>
`))
