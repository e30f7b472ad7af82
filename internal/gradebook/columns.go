package gradebook

import (
	"slices"
	"strings"

	"github.com/quangdm/cloudscore/internal/models"
)

// AddColumn appends a score column. New students see it immediately; existing
// students simply have no value under it yet.
func AddColumn(rec *models.GradeRecord, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyColumnName
	}
	if slices.Contains(rec.ScoreColumns, name) {
		return ErrDuplicateColumn
	}
	rec.ScoreColumns = append(rec.ScoreColumns, name)
	return nil
}

// RenameColumn renames in place and cascades across every student's scores
// and the visible-columns selection. Validation happens before any student is
// touched, so a failure leaves the record untouched.
func RenameColumn(rec *models.GradeRecord, visible []string, oldName, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return ErrEmptyColumnName
	}
	if newName == oldName {
		return nil
	}
	idx := slices.Index(rec.ScoreColumns, oldName)
	if idx < 0 {
		return ErrColumnNotFound
	}
	if slices.Contains(rec.ScoreColumns, newName) {
		return ErrDuplicateColumn
	}

	rec.ScoreColumns[idx] = newName
	for i := range rec.Students {
		scores := rec.Students[i].Scores
		if v, ok := scores[oldName]; ok {
			scores[newName] = v
			delete(scores, oldName)
		}
	}
	if vi := slices.Index(visible, oldName); vi >= 0 {
		visible[vi] = newName
	}
	return nil
}

// RemoveColumn drops the column, deletes its value from every student and
// from the visibility selection. The updated selection is returned; an
// emptied selection means "show all" only at read time, never eagerly here.
// Confirmation is the caller's concern.
func RemoveColumn(rec *models.GradeRecord, visible []string, name string) ([]string, error) {
	idx := slices.Index(rec.ScoreColumns, name)
	if idx < 0 {
		return visible, ErrColumnNotFound
	}
	rec.ScoreColumns = slices.Delete(rec.ScoreColumns, idx, idx+1)
	for i := range rec.Students {
		delete(rec.Students[i].Scores, name)
	}
	if vi := slices.Index(visible, name); vi >= 0 {
		visible = slices.Delete(visible, vi, vi+1)
	}
	return visible, nil
}
