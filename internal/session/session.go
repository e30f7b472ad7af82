// Package session owns one open record edit: the record itself, the
// session-scoped filter state, dirty tracking and the debounced draft
// autosave. All mutations flow through here so cascades stay centralized and
// every edit arms the autosave timer.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/quangdm/cloudscore/internal/draft"
	"github.com/quangdm/cloudscore/internal/gradebook"
	"github.com/quangdm/cloudscore/internal/metrics"
	"github.com/quangdm/cloudscore/internal/models"
	"github.com/quangdm/cloudscore/internal/scoring"
	"github.com/quangdm/cloudscore/internal/view"
)

// AutosaveDelay is the quiet period after the last mutation before the draft
// snapshot is written. Every mutation resets it; a burst of edits produces
// one save.
const AutosaveDelay = 3 * time.Second

const draftSaveTimeout = 5 * time.Second

var ErrRecordNameRequired = errors.New("record name is required")

type Session struct {
	Filters view.State

	record   *models.GradeRecord
	editMode bool
	drafts   draft.Store
	delay    time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending *models.Draft
}

// Open starts an edit session. Filter state always starts fresh; it never
// carries over from a previously opened record.
func Open(rec *models.GradeRecord, editMode bool, drafts draft.Store) *Session {
	return &Session{
		Filters:  view.NewState(),
		record:   rec,
		editMode: editMode,
		drafts:   drafts,
		delay:    AutosaveDelay,
	}
}

// Restore resumes an edit session from a recovered draft.
func Restore(d *models.Draft, drafts draft.Store) *Session {
	return Open(d.Record, d.IsEditMode, drafts)
}

func (s *Session) Record() *models.GradeRecord { return s.record }
func (s *Session) EditMode() bool              { return s.editMode }

// --- mutations ---

func (s *Session) AddColumn(name string) error {
	if err := gradebook.AddColumn(s.record, name); err != nil {
		return err
	}
	s.markDirty("column_add")
	return nil
}

func (s *Session) RenameColumn(oldName, newName string) error {
	if err := gradebook.RenameColumn(s.record, s.Filters.VisibleColumns, oldName, newName); err != nil {
		return err
	}
	if s.Filters.PresenceColumn == oldName {
		s.Filters.PresenceColumn = newName
	}
	s.markDirty("column_rename")
	return nil
}

// RemoveColumn applies a destructive removal. The caller is responsible for
// having confirmed it with the user first.
func (s *Session) RemoveColumn(name string) error {
	visible, err := gradebook.RemoveColumn(s.record, s.Filters.VisibleColumns, name)
	if err != nil {
		return err
	}
	s.Filters.VisibleColumns = visible
	if s.Filters.PresenceColumn == name {
		s.Filters.PresenceColumn = ""
		s.Filters.Presence = view.PresenceAll
	}
	s.markDirty("column_remove")
	return nil
}

func (s *Session) SaveStudent(index int, name string, scores map[string]string) error {
	if err := gradebook.AddOrUpdateStudent(s.record, index, name, scores); err != nil {
		return err
	}
	s.markDirty("student_save")
	return nil
}

func (s *Session) SetScore(index int, column, value string) {
	gradebook.SetScore(s.record, index, column, value)
	s.markDirty("score_edit")
}

// RemoveStudent applies a confirmed student delete.
func (s *Session) RemoveStudent(index int) {
	gradebook.RemoveStudent(s.record, index)
	s.markDirty("student_remove")
}

func (s *Session) BatchImport(text string) int {
	imported := gradebook.BatchImport(s.record, text)
	if imported > 0 {
		metrics.StudentsImported.WithLabelValues("batch").Add(float64(imported))
		s.markDirty("batch_import")
	}
	return imported
}

// --- projections & statistics ---

func (s *Session) VisibleStudents() []models.Student {
	return view.FilterStudents(s.record.Students, s.record.ScoreColumns, s.Filters)
}

func (s *Session) VisibleColumns() []string {
	return view.VisibleColumns(s.record.ScoreColumns, s.Filters.VisibleColumns)
}

// ApplyVisibility stores the user's checked set in canonical form: empty and
// everything-checked both collapse to "show all".
func (s *Session) ApplyVisibility(checked []string) {
	s.Filters.VisibleColumns = view.CanonicalSelection(checked, s.record.ScoreColumns)
}

func (s *Session) Statistics() scoring.Summary {
	return scoring.Summarize(s.record.Students, s.record.ScoreColumns)
}

func (s *Session) IsTextColumn(column string) bool {
	return gradebook.IsTextColumn(s.record, column)
}

// --- autosave ---

// markDirty snapshots the record on the mutating goroutine, before the timer
// can fire. The timer only ever persists an already captured snapshot, so it
// never reads the live record while the next mutation is writing it.
func (s *Session) markDirty(kind string) {
	metrics.MutationsTotal.WithLabelValues(kind).Inc()
	snapshot := &models.Draft{
		Record:     s.record.Clone(),
		Timestamp:  time.Now(),
		IsEditMode: s.editMode,
	}
	s.mu.Lock()
	s.pending = snapshot
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, s.autosave)
	s.mu.Unlock()
}

func (s *Session) autosave() {
	s.mu.Lock()
	snapshot := s.pending
	s.pending = nil
	s.mu.Unlock()
	if snapshot == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), draftSaveTimeout)
	defer cancel()
	if err := s.drafts.Save(ctx, snapshot); err != nil {
		// Draft failures never interrupt editing.
		logger.Error.Printf("Draft autosave failed: %v", err)
		return
	}
	metrics.DraftSavesTotal.Inc()
}

// cancelAutosave stops the pending timer so a stale draft can't fire after
// an explicit save or delete already persisted the record.
func (s *Session) cancelAutosave() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.pending = nil
	s.mu.Unlock()
}

// DiscardDraft cancels pending autosave and clears the stored slot.
func (s *Session) DiscardDraft(ctx context.Context) {
	s.cancelAutosave()
	if err := s.drafts.Clear(ctx); err != nil {
		logger.Error.Printf("Failed to clear draft: %v", err)
	}
}
