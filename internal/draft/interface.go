package draft

import (
	"context"
	"time"

	"github.com/quangdm/cloudscore/internal/models"
)

// MaxAge is the staleness cutoff: drafts older than this are discarded on
// load instead of being offered for recovery.
const MaxAge = 24 * time.Hour

// DefaultSlot is the single key the snapshot lives under.
const DefaultSlot = "cloudscore_autosave"

// Store is a single-slot snapshot of one in-progress edit. Save overwrites,
// Load returns nil when the slot is empty or stale (clearing it as a side
// effect in the stale case), Clear empties it. Failures are non-fatal to the
// session: they degrade to "no draft available".
type Store interface {
	Save(ctx context.Context, d *models.Draft) error
	Load(ctx context.Context) (*models.Draft, error)
	Clear(ctx context.Context) error
	Close() error
}
