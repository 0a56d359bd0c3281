package service

import (
	"context"

	"medical-directory-admin/internal/domain/entity"
	"medical-directory-admin/internal/domain/repository"
	"medical-directory-admin/internal/rolemeta"
	"medical-directory-admin/pkg/metrics"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc/pool"
	"gorm.io/gorm"
)

// EnrichedEntry is a base entry together with its merged metadata
type EnrichedEntry struct {
	Entry    entity.DirectoryEntry
	Metadata map[string]any
}

// EntryEnricher joins base entries with their satellite rows.
type EntryEnricher interface {
	// Enrich issues one lookup per distinct role and preserves input order.
	Enrich(ctx context.Context, entries []entity.DirectoryEntry) []EnrichedEntry
}

type entryEnricher struct {
	db           *gorm.DB
	log          *logrus.Logger
	metadataRepo repository.RoleMetadataRepository
	metrics      *metrics.Metrics
}

func NewEntryEnricher(db *gorm.DB, log *logrus.Logger, metadataRepo repository.RoleMetadataRepository, m *metrics.Metrics) EntryEnricher {
	return &entryEnricher{
		db:           db,
		log:          log,
		metadataRepo: metadataRepo,
		metrics:      m,
	}
}

type roleLookup struct {
	role    entity.Role
	byEntry map[uuid.UUID]map[string]any
}

func (e *entryEnricher) Enrich(ctx context.Context, entries []entity.DirectoryEntry) []EnrichedEntry {
	out := make([]EnrichedEntry, 0, len(entries))
	if len(entries) == 0 {
		return out
	}

	idsByRole := make(map[entity.Role][]uuid.UUID)
	for _, entry := range entries {
		if entry.Role.IsValid() {
			idsByRole[entry.Role] = append(idsByRole[entry.Role], entry.ID)
		}
	}

	byRole := make(map[entity.Role]map[uuid.UUID]map[string]any, len(idsByRole))
	if len(idsByRole) > 0 {
		p := pool.NewWithResults[roleLookup]().WithMaxGoroutines(len(idsByRole))
		for role, ids := range idsByRole {
			p.Go(func() roleLookup {
				return roleLookup{role: role, byEntry: e.lookup(ctx, role, ids)}
			})
		}
		for _, res := range p.Wait() {
			byRole[res.role] = res.byEntry
		}
	}

	for _, entry := range entries {
		out = append(out, EnrichedEntry{
			Entry:    entry,
			Metadata: MergeMetadata(byRole[entry.Role][entry.ID], entry.Metadata),
		})
	}
	return out
}

// lookup never fails: errors are logged and yield an empty map.
func (e *entryEnricher) lookup(ctx context.Context, role entity.Role, ids []uuid.UUID) map[uuid.UUID]map[string]any {
	out := make(map[uuid.UUID]map[string]any, len(ids))
	e.metrics.IncrementSatelliteLookup(string(role))

	rows, err := e.metadataRepo.FindByEntryIDs(ctx, e.db, role, ids)
	if err != nil {
		e.log.WithFields(logrus.Fields{
			"role":    role,
			"entries": len(ids),
		}).Warnf("Failed to load role metadata: %+v", err)
		return out
	}
	for _, md := range rows {
		out[md.EntryKey()] = rolemeta.ToMap(md)
	}
	return out
}

// MergeMetadata overlays the ad-hoc metadata of a base entry on its satellite metadata.
func MergeMetadata(satellite map[string]any, adHoc entity.JSON) map[string]any {
	out := make(map[string]any, len(satellite)+len(adHoc))
	for k, v := range satellite {
		out[k] = v
	}
	for k, v := range adHoc {
		out[k] = v
	}
	return out
}
