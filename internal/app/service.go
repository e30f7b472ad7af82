package app

import (
	"context"
	"fmt"
	"time"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/quangdm/cloudscore/internal/draft"
	"github.com/quangdm/cloudscore/internal/models"
	"github.com/quangdm/cloudscore/internal/remote"
	"github.com/quangdm/cloudscore/internal/session"
)

// Service wires the collaborators one edit session needs: the record proxy
// client and the draft store. It also tracks the loaded record list so the
// overview search and open-by-id work against one snapshot.
type Service struct {
	Config  *Config
	Remote  *remote.Client
	Drafts  draft.Store
	Confirm *session.Confirmer

	records []models.GradeRecord
}

func NewService(configPath string) (*Service, error) {
	config, err := LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	drafts, err := draft.NewStore(config.Draft.DSN, config.Draft.Slot)
	if err != nil {
		return nil, fmt.Errorf("failed to init draft store: %w", err)
	}

	client := remote.NewClient(config.Proxy.URL, time.Duration(config.Proxy.TimeoutSeconds)*time.Second)

	return &Service{
		Config:  config,
		Remote:  client,
		Drafts:  drafts,
		Confirm: session.NewConfirmer(),
	}, nil
}

// LoadRecords refreshes the in-memory record list from the proxy.
func (s *Service) LoadRecords(ctx context.Context) ([]models.GradeRecord, error) {
	records, err := s.Remote.ListRecords(ctx)
	if err != nil {
		return nil, err
	}
	s.records = records
	return records, nil
}

func (s *Service) Records() []models.GradeRecord { return s.records }

// FindRecord resolves an id against the loaded list. A miss is defensive:
// under sequential use it means the caller holds a stale id.
func (s *Service) FindRecord(id string) (*models.GradeRecord, bool) {
	for i := range s.records {
		if s.records[i].ID == id {
			return &s.records[i], true
		}
	}
	logger.Error.Printf("Record %s not found in loaded list", id)
	return nil, false
}

// OpenRecord starts an edit session. A nil record opens a new empty one.
func (s *Service) OpenRecord(rec *models.GradeRecord) *session.Session {
	if rec == nil {
		return session.Open(models.NewRecord(), false, s.Drafts)
	}
	return session.Open(rec, rec.ExistsInDatabase, s.Drafts)
}

// PendingDraft offers a recoverable draft, if a fresh one exists. Failures
// degrade to "no draft" by contract.
func (s *Service) PendingDraft(ctx context.Context) *models.Draft {
	d, err := s.Drafts.Load(ctx)
	if err != nil {
		logger.Error.Printf("Draft load failed: %v", err)
		return nil
	}
	return d
}

func (s *Service) Close() error {
	if err := s.Drafts.Close(); err != nil {
		return fmt.Errorf("errors while closing: %v", err)
	}
	return nil
}
