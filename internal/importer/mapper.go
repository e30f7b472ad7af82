// Package importer turns raw spreadsheet grids into gradebook records.
// Detection is advisory: the user adjusts the mapping before Commit, which
// is the only step that creates students.
package importer

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/quangdm/cloudscore/internal/gradebook"
	"github.com/quangdm/cloudscore/internal/models"
)

var (
	ErrEmptySheet     = errors.New("sheet has no data rows")
	ErrNoNameColumn   = errors.New("no name column selected")
	ErrNoScoreColumns = errors.New("no score columns selected")
)

var (
	nameKeywords  = []string{"tên", "họ tên", "học sinh", "name", "student", "họ và tên"}
	classKeywords = []string{"lớp", "class", "nhóm", "group"}
	scoreKeywords = []string{"điểm", "score", "test", "kiểm tra", "bài", "kỳ"}
)

// Columns where values parse as numbers in [0, 100] this often are assumed
// to be score columns even without a keyword in the header.
const (
	numericRatioThreshold = 0.6
	numericSampleRows     = 10
)

// Mapping assigns grid columns to record fields. Column indexes are zero
// based; -1 means not assigned.
type Mapping struct {
	NameColumn   int
	ClassColumn  int
	ScoreColumns []int
}

// HeaderName returns the header cell for a column, falling back to a
// positional label for blank headers.
func HeaderName(rows [][]string, idx int) string {
	if len(rows) > 0 && idx < len(rows[0]) {
		if name := strings.TrimSpace(rows[0][idx]); name != "" {
			return name
		}
	}
	return fmt.Sprintf("Cột %d", idx+1)
}

// Detect classifies the grid's columns. The name and class columns are the
// first headers matching their keyword sets; score columns match a score
// keyword or a mostly numeric sample, and never overlap name/class.
func Detect(rows [][]string) Mapping {
	m := Mapping{NameColumn: -1, ClassColumn: -1}
	if len(rows) == 0 {
		return m
	}

	headers := make([]string, len(rows[0]))
	for i := range rows[0] {
		headers[i] = gradebook.NormalizeForCompare(HeaderName(rows, i))
	}

	m.NameColumn = firstMatch(headers, nameKeywords)
	m.ClassColumn = firstMatch(headers, classKeywords)

	for i, h := range headers {
		if i == m.NameColumn || i == m.ClassColumn {
			continue
		}
		if containsAny(h, scoreKeywords) || isNumericColumn(rows, i) {
			m.ScoreColumns = append(m.ScoreColumns, i)
		}
	}
	return m
}

func firstMatch(headers []string, keywords []string) int {
	for i, h := range headers {
		if containsAny(h, keywords) {
			return i
		}
	}
	return -1
}

func containsAny(header string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(header, gradebook.NormalizeForCompare(kw)) {
			return true
		}
	}
	return false
}

func isNumericColumn(rows [][]string, idx int) bool {
	if len(rows) < 3 {
		return false
	}
	sample := min(numericSampleRows, len(rows)-1)
	numeric := 0
	for i := 1; i <= sample; i++ {
		cell := ""
		if idx < len(rows[i]) {
			cell = strings.TrimSpace(rows[i][idx])
		}
		if cell == "" {
			continue
		}
		v, err := strconv.ParseFloat(strings.ReplaceAll(cell, ",", "."), 64)
		if err == nil && v >= 0 && v <= 100 {
			numeric++
		}
	}
	return float64(numeric)/float64(sample) > numericRatioThreshold
}

// Validate reports whether the mapping can be committed. Both failures are
// user-facing: nothing is ever defaulted silently.
func (m Mapping) Validate(rows [][]string) error {
	if len(rows) < 2 {
		return ErrEmptySheet
	}
	if m.NameColumn < 0 {
		return ErrNoNameColumn
	}
	if len(m.ScoreColumns) == 0 {
		return ErrNoScoreColumns
	}
	return nil
}

// Commit builds a new record from the grid. Rows with a blank name cell are
// skipped. Numeric cells are re-serialized rounded to two decimals, anything
// else is carried over as text, and empty cells stay empty strings so the
// imported roster shows every selected column per student.
func Commit(rows [][]string, m Mapping, recordName string) (*models.GradeRecord, error) {
	if err := m.Validate(rows); err != nil {
		return nil, err
	}

	columnNames := make([]string, len(m.ScoreColumns))
	for i, idx := range m.ScoreColumns {
		columnNames[i] = HeaderName(rows, idx)
	}

	var students []models.Student
	for _, row := range rows[1:] {
		name := cell(row, m.NameColumn)
		if name == "" {
			continue
		}
		scores := make(map[string]string, len(m.ScoreColumns))
		for i, idx := range m.ScoreColumns {
			scores[columnNames[i]] = processValue(cell(row, idx))
		}
		students = append(students, models.Student{Name: name, Scores: scores})
	}

	rec := models.NewRecord()
	rec.RecordName = recordName
	rec.RecordClass = DetectClass(rows, m.ClassColumn)
	if rec.RecordClass == "" {
		rec.RecordClass = "Import từ Excel"
	}
	rec.ScoreColumns = columnNames
	rec.Students = students
	return rec, nil
}

// DetectClass picks the most frequent non-empty value of the class column;
// the first value to reach the winning count wins ties.
func DetectClass(rows [][]string, classColumn int) string {
	if classColumn < 0 || len(rows) < 2 {
		return ""
	}
	counts := map[string]int{}
	var order []string
	for _, row := range rows[1:] {
		v := cell(row, classColumn)
		if v == "" {
			continue
		}
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}

	best := ""
	for _, v := range order {
		if best == "" || counts[v] > counts[best] {
			best = v
		}
	}
	return best
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func processValue(raw string) string {
	if raw == "" {
		return ""
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return raw
	}
	rounded := math.Round(v*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
