package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/quangdm/cloudscore/internal/remote"
)

// Persist pushes the record through the proxy, creating or updating based on
// edit mode. On success the pending autosave is cancelled and the draft slot
// cleared, so the draft can never resurface after a real save.
func (s *Session) Persist(ctx context.Context, client *remote.Client) error {
	rec := s.record
	rec.RecordName = strings.TrimSpace(rec.RecordName)
	if rec.RecordName == "" {
		return ErrRecordNameRequired
	}
	if err := rec.Validate(); err != nil {
		return fmt.Errorf("record failed validation: %w", err)
	}
	rec.LastModified = time.Now()

	if err := client.SaveRecord(ctx, rec); err != nil {
		return err
	}

	rec.ExistsInDatabase = true
	s.editMode = true
	s.DiscardDraft(ctx)
	return nil
}

// Delete removes the record at the proxy and drops the local draft.
func (s *Session) Delete(ctx context.Context, client *remote.Client) error {
	if err := client.DeleteRecord(ctx, s.record.ID); err != nil {
		return err
	}
	s.DiscardDraft(ctx)
	return nil
}
