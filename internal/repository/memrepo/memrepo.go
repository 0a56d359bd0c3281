// Package memrepo keeps every repository in memory. It mirrors the postgres
// constraints the lifecycle code relies on and lets callers inject failures.
package memrepo

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"medical-directory-admin/internal/domain/entity"
	domainRepo "medical-directory-admin/internal/domain/repository"
	"medical-directory-admin/internal/rolemeta"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Operation names accepted by FailOn and Calls
const (
	OpEntryCreate        = "entry.create"
	OpEntryUpdate        = "entry.update"
	OpEntryUpdateStatus  = "entry.update_status"
	OpEntryDelete        = "entry.delete"
	OpMetadataFind       = "metadata.find"
	OpMetadataCreate     = "metadata.create"
	OpMetadataUpdate     = "metadata.update"
	OpMetadataDelete     = "metadata.delete"
	OpAccountCreate      = "account.create"
	OpAccountUpdate      = "account.update"
	OpAccountSetActive   = "account.set_active"
	OpProfileUpsert      = "profile.upsert"
	OpProfileVerify      = "profile.verify"
	OpAuditCreate        = "audit.create"
	OpEntryFindByAccount = "entry.find_by_account_role"
)

// Store is the shared state behind the repositories
type Store struct {
	mu         sync.Mutex
	entries    map[uuid.UUID]entity.DirectoryEntry
	satellites map[entity.Role]map[uuid.UUID]entity.RoleMetadata
	accounts   map[uuid.UUID]entity.Account
	profiles   map[uuid.UUID]entity.AccountProfile
	auditLogs  []entity.AuditLog
	failures   map[string][]error
	calls      map[string]int
	now        func() time.Time
}

func New() *Store {
	return &Store{
		entries:    make(map[uuid.UUID]entity.DirectoryEntry),
		satellites: make(map[entity.Role]map[uuid.UUID]entity.RoleMetadata),
		accounts:   make(map[uuid.UUID]entity.Account),
		profiles:   make(map[uuid.UUID]entity.AccountProfile),
		failures:   make(map[string][]error),
		calls:      make(map[string]int),
		now:        time.Now,
	}
}

// FailOn makes the next call of op return err. Repeated calls queue errors.
func (s *Store) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = append(s.failures[op], err)
}

// Calls returns how many times op ran.
func (s *Store) Calls(op string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[op]
}

// enter records a call to op and pops an injected failure. Callers hold mu.
func (s *Store) enter(op string) error {
	s.calls[op]++
	queue := s.failures[op]
	if len(queue) == 0 {
		return nil
	}
	s.failures[op] = queue[1:]
	return queue[0]
}

// SeedAccount stores account as-is.
func (s *Store) SeedAccount(account entity.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[account.ID] = account
}

// Account returns a copy of the stored account.
func (s *Store) Account(id uuid.UUID) (entity.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[id]
	return a, ok
}

// Profile returns a copy of the stored profile.
func (s *Store) Profile(accountID uuid.UUID) (entity.AccountProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[accountID]
	return p, ok
}

// Satellite returns the stored satellite row of an entry.
func (s *Store) Satellite(role entity.Role, entryID uuid.UUID) (entity.RoleMetadata, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	md, ok := s.satellites[role][entryID]
	return md, ok
}

// EntryCount returns the number of stored base entries.
func (s *Store) EntryCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// AuditLogs returns every recorded audit log.
func (s *Store) AuditLogs() []entity.AuditLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.AuditLog(nil), s.auditLogs...)
}

func (s *Store) Entries() domainRepo.DirectoryEntryRepository {
	return &entryRepo{s}
}

func (s *Store) Metadata() domainRepo.RoleMetadataRepository {
	return &metadataRepo{s}
}

func (s *Store) Accounts() domainRepo.AccountRepository {
	return &accountRepo{s}
}

func (s *Store) Profiles() domainRepo.AccountProfileRepository {
	return &profileRepo{s}
}

func (s *Store) Audit() domainRepo.AuditLogRepository {
	return &auditRepo{s}
}

func duplicateKey(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint, Message: "duplicate key value violates unique constraint"}
}

// cloneMetadata copies md through its canonical map so stored rows never alias callers.
func cloneMetadata(md entity.RoleMetadata) entity.RoleMetadata {
	out := rolemeta.Normalize(md.Role(), rolemeta.ToMap(md))
	out.SetEntryKey(md.EntryKey())
	return out
}

// Directory entries

type entryRepo struct{ s *Store }

func (r *entryRepo) Create(ctx context.Context, db *gorm.DB, entry *entity.DirectoryEntry) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(OpEntryCreate); err != nil {
		return err
	}
	if entry.AccountID != nil {
		for _, e := range s.entries {
			if e.AccountID != nil && *e.AccountID == *entry.AccountID && e.Role == entry.Role {
				return duplicateKey("uq_directory_entries_account_role")
			}
		}
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.Status == "" {
		entry.Status = entity.EntryStatusPending
	}
	entry.CreatedAt = s.now()
	entry.UpdatedAt = entry.CreatedAt
	s.entries[entry.ID] = *entry
	return nil
}

func (r *entryRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.DirectoryEntry, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (r *entryRepo) FindByAccountID(ctx context.Context, db *gorm.DB, accountID uuid.UUID) (*entity.DirectoryEntry, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	var found *entity.DirectoryEntry
	for _, e := range s.entries {
		if e.AccountID != nil && *e.AccountID == accountID {
			if found == nil || e.CreatedAt.Before(found.CreatedAt) {
				found = &e
			}
		}
	}
	return found, nil
}

func (r *entryRepo) FindByAccountAndRole(ctx context.Context, db *gorm.DB, accountID uuid.UUID, role entity.Role) (*entity.DirectoryEntry, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(OpEntryFindByAccount); err != nil {
		return nil, err
	}
	for _, e := range s.entries {
		if e.AccountID != nil && *e.AccountID == accountID && e.Role == role {
			return &e, nil
		}
	}
	return nil, nil
}

func (r *entryRepo) FindAll(ctx context.Context, db *gorm.DB, filter entity.EntryFilter) ([]entity.DirectoryEntry, int64, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	matched := []entity.DirectoryEntry{}
	search := strings.ToLower(filter.Search)
	for _, e := range s.entries {
		if filter.Role != "" && e.Role != filter.Role {
			continue
		}
		if filter.Status != "" && e.Status != filter.Status {
			continue
		}
		if filter.Region != "" && e.Region != filter.Region {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(e.Name+" "+e.Email+" "+e.Phone), search) {
			continue
		}
		matched = append(matched, e)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	total := int64(len(matched))
	if filter.Limit > 0 {
		start := filter.Offset()
		if start > len(matched) {
			start = len(matched)
		}
		end := start + filter.Limit
		if end > len(matched) {
			end = len(matched)
		}
		matched = matched[start:end]
	}
	return matched, total, nil
}

func (r *entryRepo) Update(ctx context.Context, db *gorm.DB, entry *entity.DirectoryEntry) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(OpEntryUpdate); err != nil {
		return err
	}
	existing, ok := s.entries[entry.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	entry.CreatedAt = existing.CreatedAt
	entry.UpdatedAt = s.now()
	s.entries[entry.ID] = *entry
	return nil
}

func (r *entryRepo) UpdateStatus(ctx context.Context, db *gorm.DB, id uuid.UUID, status entity.EntryStatus) (int64, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(OpEntryUpdateStatus); err != nil {
		return 0, err
	}
	e, ok := s.entries[id]
	if !ok {
		return 0, nil
	}
	e.Status = status
	e.UpdatedAt = s.now()
	s.entries[id] = e
	return 1, nil
}

func (r *entryRepo) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(OpEntryDelete); err != nil {
		return 0, err
	}
	if _, ok := s.entries[id]; !ok {
		return 0, nil
	}
	delete(s.entries, id)
	return 1, nil
}

// Satellite rows

type metadataRepo struct{ s *Store }

func (r *metadataRepo) FindByEntryIDs(ctx context.Context, db *gorm.DB, role entity.Role, entryIDs []uuid.UUID) ([]entity.RoleMetadata, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(OpMetadataFind); err != nil {
		return nil, err
	}
	out := []entity.RoleMetadata{}
	for _, id := range entryIDs {
		if md, ok := s.satellites[role][id]; ok {
			out = append(out, cloneMetadata(md))
		}
	}
	return out, nil
}

func (r *metadataRepo) FindByEntryID(ctx context.Context, db *gorm.DB, role entity.Role, entryID uuid.UUID) (entity.RoleMetadata, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	md, ok := s.satellites[role][entryID]
	if !ok {
		return nil, nil
	}
	return cloneMetadata(md), nil
}

func (r *metadataRepo) Create(ctx context.Context, db *gorm.DB, md entity.RoleMetadata) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(OpMetadataCreate); err != nil {
		return err
	}
	if _, ok := s.entries[md.EntryKey()]; !ok {
		return &pgconn.PgError{Code: "23503", ConstraintName: md.TableName() + "_entry_id_fkey"}
	}
	if s.satellites[md.Role()] == nil {
		s.satellites[md.Role()] = make(map[uuid.UUID]entity.RoleMetadata)
	}
	if _, ok := s.satellites[md.Role()][md.EntryKey()]; ok {
		return duplicateKey(md.TableName() + "_pkey")
	}
	s.satellites[md.Role()][md.EntryKey()] = cloneMetadata(md)
	return nil
}

func (r *metadataRepo) Update(ctx context.Context, db *gorm.DB, md entity.RoleMetadata) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(OpMetadataUpdate); err != nil {
		return err
	}
	if _, ok := s.satellites[md.Role()][md.EntryKey()]; !ok {
		return nil
	}
	s.satellites[md.Role()][md.EntryKey()] = cloneMetadata(md)
	return nil
}

func (r *metadataRepo) Delete(ctx context.Context, db *gorm.DB, role entity.Role, entryID uuid.UUID) (int64, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(OpMetadataDelete); err != nil {
		return 0, err
	}
	if _, ok := s.satellites[role][entryID]; !ok {
		return 0, nil
	}
	delete(s.satellites[role], entryID)
	return 1, nil
}

// Accounts

type accountRepo struct{ s *Store }

func (r *accountRepo) Create(ctx context.Context, db *gorm.DB, account *entity.Account) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(OpAccountCreate); err != nil {
		return err
	}
	for _, a := range s.accounts {
		if strings.EqualFold(a.Email, account.Email) {
			return duplicateKey("uq_accounts_email")
		}
	}
	account.CreatedAt = s.now()
	account.UpdatedAt = account.CreatedAt
	s.accounts[account.ID] = *account
	return nil
}

func (r *accountRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Account, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *accountRepo) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.Account, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if strings.EqualFold(a.Email, email) {
			return &a, nil
		}
	}
	return nil, nil
}

func (r *accountRepo) Update(ctx context.Context, db *gorm.DB, account *entity.Account) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(OpAccountUpdate); err != nil {
		return err
	}
	account.UpdatedAt = s.now()
	s.accounts[account.ID] = *account
	return nil
}

func (r *accountRepo) SetActive(ctx context.Context, db *gorm.DB, id uuid.UUID, active bool) (int64, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(OpAccountSetActive); err != nil {
		return 0, err
	}
	a, ok := s.accounts[id]
	if !ok {
		return 0, nil
	}
	a.IsActive = active
	s.accounts[id] = a
	return 1, nil
}

func (r *accountRepo) UpdateAvatar(ctx context.Context, db *gorm.DB, id uuid.UUID, avatarURL string) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	a.AvatarURL = avatarURL
	s.accounts[id] = a
	return nil
}

// Account profiles

type profileRepo struct{ s *Store }

func (r *profileRepo) FindByAccountID(ctx context.Context, db *gorm.DB, accountID uuid.UUID) (*entity.AccountProfile, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[accountID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *profileRepo) Upsert(ctx context.Context, db *gorm.DB, profile *entity.AccountProfile) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(OpProfileUpsert); err != nil {
		return err
	}
	stored, ok := s.profiles[profile.AccountID]
	merged := entity.JSON{}
	if ok {
		merged = stored.Metadata.Clone()
	} else {
		stored = entity.AccountProfile{
			AccountID:          profile.AccountID,
			VerificationStatus: entity.EntryStatusPending,
			CreatedAt:          s.now(),
		}
	}
	for k, v := range profile.Metadata {
		merged[k] = v
	}
	stored.Biography = profile.Biography
	stored.Specialization = profile.Specialization
	stored.LicenseNumber = profile.LicenseNumber
	stored.Address = profile.Address
	stored.Website = profile.Website
	stored.WorkingHours = profile.WorkingHours
	stored.Services = profile.Services
	stored.Metadata = merged
	stored.UpdatedAt = s.now()
	s.profiles[profile.AccountID] = stored
	return nil
}

func (r *profileRepo) UpsertVerification(ctx context.Context, db *gorm.DB, accountID uuid.UUID, status entity.EntryStatus, verifiedAt *time.Time) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(OpProfileVerify); err != nil {
		return err
	}
	stored, ok := s.profiles[accountID]
	if !ok {
		stored = entity.AccountProfile{AccountID: accountID, CreatedAt: s.now()}
	}
	stored.VerificationStatus = status
	stored.VerifiedAt = verifiedAt
	stored.UpdatedAt = s.now()
	s.profiles[accountID] = stored
	return nil
}

// Audit logs

type auditRepo struct{ s *Store }

func (r *auditRepo) Create(ctx context.Context, db *gorm.DB, log *entity.AuditLog) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(OpAuditCreate); err != nil {
		return err
	}
	log.ID = int64(len(s.auditLogs) + 1)
	log.CreatedAt = s.now()
	s.auditLogs = append(s.auditLogs, *log)
	return nil
}

func (r *auditRepo) FindAll(ctx context.Context, db *gorm.DB, page, limit int) ([]entity.AuditLog, int64, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	logs := make([]entity.AuditLog, 0, len(s.auditLogs))
	for i := len(s.auditLogs) - 1; i >= 0; i-- {
		logs = append(logs, s.auditLogs[i])
	}
	total := int64(len(logs))
	if limit > 0 {
		if page < 1 {
			page = 1
		}
		start := (page - 1) * limit
		if start > len(logs) {
			start = len(logs)
		}
		end := start + limit
		if end > len(logs) {
			end = len(logs)
		}
		logs = logs[start:end]
	}
	return logs, total, nil
}

func (r *auditRepo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.AuditLog, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.auditLogs {
		if l.ID == id {
			return &l, nil
		}
	}
	return nil, nil
}
