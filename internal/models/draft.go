package models

import "time"

// Draft is the single-slot autosave snapshot of an in-progress edit session.
type Draft struct {
	Record     *GradeRecord `json:"record"`
	Timestamp  time.Time    `json:"timestamp"`
	IsEditMode bool         `json:"isEditMode"`
}

func (d *Draft) Age(now time.Time) time.Duration {
	return now.Sub(d.Timestamp)
}
