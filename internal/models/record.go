package models

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/go-playground/validator/v10"
)

// DefaultScoreColumns seeds a freshly created record.
var DefaultScoreColumns = []string{"Điểm giữa kỳ", "Điểm cuối kỳ"}

// Student is owned by its record's Students slice; the slice position is the
// handle used for edit and delete. Scores keep raw strings so a cell can hold
// a mark ("8,5") or free text ("x").
type Student struct {
	Name   string            `json:"name" validate:"required"`
	Scores map[string]string `json:"scores"`
}

type GradeRecord struct {
	ID           string    `json:"id" validate:"required"`
	RecordName   string    `json:"recordName" validate:"required"`
	RecordClass  string    `json:"recordClass"`
	IsPublic     bool      `json:"isPublic"`
	ScoreColumns []string  `json:"scoreColumns"`
	Students     []Student `json:"students" validate:"dive"`
	LastModified time.Time `json:"lastModified"`

	// ExistsInDatabase is local bookkeeping, never sent to the proxy.
	ExistsInDatabase bool `json:"-"`
}

func NewRecord() *GradeRecord {
	return &GradeRecord{
		ID:           GenerateID(),
		ScoreColumns: append([]string(nil), DefaultScoreColumns...),
		Students:     []Student{},
		LastModified: time.Now(),
	}
}

// GenerateID matches the record_<unix-ms>_<base36 suffix> shape the proxy
// already stores.
func GenerateID() string {
	return fmt.Sprintf("record_%d_%s", time.Now().UnixMilli(), randBase36(9))
}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

func randBase36(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = base36[rand.Intn(len(base36))]
	}
	return string(b)
}

// Clone returns a deep copy, used for draft snapshots so later edits don't
// leak into an already captured draft.
func (r *GradeRecord) Clone() *GradeRecord {
	out := *r
	out.ScoreColumns = append([]string(nil), r.ScoreColumns...)
	out.Students = make([]Student, len(r.Students))
	for i, s := range r.Students {
		out.Students[i] = s.Clone()
	}
	return &out
}

func (s Student) Clone() Student {
	scores := make(map[string]string, len(s.Scores))
	for k, v := range s.Scores {
		scores[k] = v
	}
	return Student{Name: s.Name, Scores: scores}
}

func (r *GradeRecord) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

func (s *Student) Validate() error {
	validate := validator.New()
	return validate.Struct(s)
}
