package usecase

//go:generate mockgen -source=directory_entry_usecase.go -destination=mocks/directory_entry_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"strings"
	"time"

	"medical-directory-admin/internal/converter"
	"medical-directory-admin/internal/delivery/dto"
	"medical-directory-admin/internal/delivery/http/middleware"
	"medical-directory-admin/internal/domain/entity"
	"medical-directory-admin/internal/domain/repository"
	pgrepo "medical-directory-admin/internal/repository"
	"medical-directory-admin/internal/rolemeta"
	"medical-directory-admin/internal/service"
	"medical-directory-admin/pkg/metrics"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var (
	ErrEntryNotFound    = errors.New("directory entry not found")
	ErrEntryConflict    = errors.New("a directory entry already exists for this account and role")
	ErrPasswordRequired = errors.New("password is required")
	ErrInvalidStatus    = errors.New("invalid status, expected one of pending, approved, rejected")
	ErrInvalidRole      = errors.New("invalid role")
	ErrRoleChange       = errors.New("the role of a directory entry cannot be changed")
)

const (
	entryUniqueConstraint = "uq_directory_entries_account_role"
	entryEntityName       = "directory_entry"

	defaultListLimit = 20
	maxListLimit     = 100
)

// ValidationError lists the labels of the required fields a payload is missing.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

type DirectoryEntryUsecase interface {
	List(ctx context.Context, req *dto.ListDirectoryEntriesRequest) (*dto.DirectoryEntryListResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.DirectoryEntryResponse, error)
	Create(ctx context.Context, req *dto.CreateDirectoryEntryRequest) (*dto.DirectoryEntryWriteResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateDirectoryEntryRequest) (*dto.DirectoryEntryWriteResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateDirectoryEntryStatusRequest) (*dto.DirectoryEntryResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type directoryEntryUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	entryRepo    repository.DirectoryEntryRepository
	metadataRepo repository.RoleMetadataRepository
	accountRepo  repository.AccountRepository
	profileRepo  repository.AccountProfileRepository
	provisioner  service.AccountProvisioner
	enricher     service.EntryEnricher
	auditService service.AuditService
	metrics      *metrics.Metrics
	tracer       trace.Tracer
	now          func() time.Time
}

func NewDirectoryEntryUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	entryRepo repository.DirectoryEntryRepository,
	metadataRepo repository.RoleMetadataRepository,
	accountRepo repository.AccountRepository,
	profileRepo repository.AccountProfileRepository,
	provisioner service.AccountProvisioner,
	enricher service.EntryEnricher,
	auditService service.AuditService,
	m *metrics.Metrics,
) DirectoryEntryUsecase {
	return &directoryEntryUsecase{
		db:           db,
		log:          log,
		entryRepo:    entryRepo,
		metadataRepo: metadataRepo,
		accountRepo:  accountRepo,
		profileRepo:  profileRepo,
		provisioner:  provisioner,
		enricher:     enricher,
		auditService: auditService,
		metrics:      m,
		tracer:       otel.Tracer("medical-directory-admin/usecase"),
		now:          time.Now,
	}
}

func (u *directoryEntryUsecase) List(ctx context.Context, req *dto.ListDirectoryEntriesRequest) (resp *dto.DirectoryEntryListResponse, err error) {
	ctx, span := u.tracer.Start(ctx, "DirectoryEntry.List")
	defer func() { u.finish(span, "list", err) }()

	filter := entity.EntryFilter{
		Region: strings.TrimSpace(req.Region),
		Search: strings.TrimSpace(req.Search),
		Page:   req.Page,
		Limit:  req.Limit,
	}
	if req.Role != "" {
		role, ok := parseRole(req.Role)
		if !ok {
			return nil, ErrInvalidRole
		}
		filter.Role = role
	}
	if req.Status != "" {
		status, ok := entity.ParseEntryStatus(req.Status)
		if !ok {
			return nil, ErrInvalidStatus
		}
		filter.Status = status
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = defaultListLimit
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}

	entries, total, err := u.entryRepo.FindAll(ctx, u.db, filter)
	if err != nil {
		u.log.Warnf("Failed to find directory entries: %+v", err)
		return nil, err
	}

	enriched := u.enricher.Enrich(ctx, entries)
	// listings never expose a status outside the enumeration
	for i := range enriched {
		enriched[i].Entry.Status = enriched[i].Entry.Status.OrPending()
	}

	return &dto.DirectoryEntryListResponse{
		Entries: converter.EnrichedEntriesToResponses(enriched),
		Total:   total,
		Page:    filter.Page,
		Limit:   filter.Limit,
	}, nil
}

func (u *directoryEntryUsecase) Get(ctx context.Context, id uuid.UUID) (resp *dto.DirectoryEntryResponse, err error) {
	ctx, span := u.tracer.Start(ctx, "DirectoryEntry.Get", trace.WithAttributes(attribute.String("entry.id", id.String())))
	defer func() { u.finish(span, "get", err) }()

	entry, err := u.findEntry(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.enrichOne(ctx, entry), nil
}

func (u *directoryEntryUsecase) Create(ctx context.Context, req *dto.CreateDirectoryEntryRequest) (resp *dto.DirectoryEntryWriteResponse, err error) {
	ctx, span := u.tracer.Start(ctx, "DirectoryEntry.Create", trace.WithAttributes(attribute.String("entry.role", req.Role)))
	defer func() { u.finish(span, "create", err) }()

	role, ok := parseRole(req.Role)
	if !ok {
		return nil, ErrInvalidRole
	}

	md := rolemeta.Normalize(role, req.Metadata)
	if missing := rolemeta.Validate(role, md); len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}
	extras := rolemeta.Extras(role, req.Metadata)

	email := normalizeEmail(req.Email)
	account, err := u.accountRepo.FindByEmail(ctx, u.db, email)
	if err != nil {
		u.log.Warnf("Failed to find account by email: %+v", err)
		return nil, err
	}
	// an existing account keeps its credentials
	if account == nil && strings.TrimSpace(req.Password) == "" {
		return nil, ErrPasswordRequired
	}
	if account != nil {
		if err := u.ensureNoConflict(ctx, account.ID, role, uuid.Nil); err != nil {
			return nil, err
		}
	}

	provisioned, err := u.provisioner.EnsureAccount(ctx, service.ProvisionRequest{
		Role:      role,
		Name:      req.Name,
		Email:     email,
		Phone:     req.Phone,
		Region:    req.Region,
		SubRegion: req.SubRegion,
		Bio:       req.Bio,
		Avatar:    converter.AvatarPayloadToUpload(req.Avatar),
		Password:  req.Password,
		Metadata:  service.MergeMetadata(rolemeta.ToMap(md), extras),
	})
	if err != nil {
		u.log.Warnf("Failed to provision account: %+v", err)
		return nil, err
	}

	accountID := provisioned.AccountID
	entry := &entity.DirectoryEntry{
		AccountID: &accountID,
		Role:      role,
		Name:      strings.TrimSpace(req.Name),
		Email:     email,
		Phone:     strings.TrimSpace(req.Phone),
		Region:    strings.TrimSpace(req.Region),
		SubRegion: strings.TrimSpace(req.SubRegion),
		AvatarURL: provisioned.AvatarURL,
		Bio:       strings.TrimSpace(req.Bio),
		Status:    entity.EntryStatusPending,
		Metadata:  adHocMetadata(extras),
	}
	if err := u.entryRepo.Create(ctx, u.db, entry); err != nil {
		if pgrepo.IsDuplicateKeyError(err, entryUniqueConstraint) {
			return nil, ErrEntryConflict
		}
		u.log.Warnf("Failed to create directory entry: %+v", err)
		return nil, err
	}

	md.SetEntryKey(entry.ID)
	if err := u.metadataRepo.Create(ctx, u.db, md); err != nil {
		u.log.Warnf("Failed to create role metadata: %+v", err)
		u.compensate(ctx, "entry", entry.ID, func(ctx context.Context) error {
			_, err := u.entryRepo.Delete(ctx, u.db, entry.ID)
			return err
		})
		return nil, err
	}

	created, err := u.reload(ctx, entry.ID)
	if err != nil {
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, actorFromContext(ctx), entity.AuditActionEntryCreate, entryEntityName, entry.ID.String(), created); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return &dto.DirectoryEntryWriteResponse{
		Entry:             *created,
		TemporaryPassword: provisioned.TemporaryPassword,
	}, nil
}

func (u *directoryEntryUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateDirectoryEntryRequest) (resp *dto.DirectoryEntryWriteResponse, err error) {
	ctx, span := u.tracer.Start(ctx, "DirectoryEntry.Update", trace.WithAttributes(attribute.String("entry.id", id.String())))
	defer func() { u.finish(span, "update", err) }()

	existing, err := u.findEntry(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Role != nil {
		role, ok := parseRole(*req.Role)
		if !ok {
			return nil, ErrInvalidRole
		}
		if role != existing.Role {
			return nil, ErrRoleChange
		}
	}
	role := existing.Role
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	current, err := u.metadataRepo.FindByEntryID(ctx, u.db, role, existing.ID)
	if err != nil {
		u.log.Warnf("Failed to find role metadata: %+v", err)
		return nil, err
	}

	raw := rolemeta.Merge(service.MergeMetadata(rolemeta.ToMap(current), existing.Metadata), req.Metadata)
	md := rolemeta.Normalize(role, raw)
	if missing := rolemeta.Validate(role, md); len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}
	extras := rolemeta.Extras(role, raw)

	before := *existing
	before.Metadata = existing.Metadata.Clone()
	oldValue := u.enrichOne(ctx, &before)

	updated := *existing
	assign(&updated.Name, req.Name)
	assign(&updated.Phone, req.Phone)
	assign(&updated.Region, req.Region)
	assign(&updated.SubRegion, req.SubRegion)
	assign(&updated.Bio, req.Bio)
	if req.Email != nil {
		updated.Email = normalizeEmail(*req.Email)
	}

	// a move onto an account that already lists this role is rejected before anything is written
	target, err := u.accountRepo.FindByEmail(ctx, u.db, updated.Email)
	if err != nil {
		u.log.Warnf("Failed to find account by email: %+v", err)
		return nil, err
	}
	if target != nil && (existing.AccountID == nil || *existing.AccountID != target.ID) {
		if err := u.ensureNoConflict(ctx, target.ID, role, existing.ID); err != nil {
			return nil, err
		}
	}

	provisioned, err := u.provisioner.EnsureAccount(ctx, service.ProvisionRequest{
		Role:      role,
		Name:      updated.Name,
		Email:     updated.Email,
		Phone:     updated.Phone,
		Region:    updated.Region,
		SubRegion: updated.SubRegion,
		Bio:       updated.Bio,
		Avatar:    converter.AvatarPayloadToUpload(req.Avatar),
		Metadata:  service.MergeMetadata(rolemeta.ToMap(md), extras),
	})
	if err != nil {
		u.log.Warnf("Failed to provision account: %+v", err)
		return nil, err
	}

	moved := existing.AccountID == nil || *existing.AccountID != provisioned.AccountID
	if moved {
		if err := u.ensureNoConflict(ctx, provisioned.AccountID, role, existing.ID); err != nil {
			return nil, err
		}
		accountID := provisioned.AccountID
		updated.AccountID = &accountID
	}
	if provisioned.AvatarURL != "" {
		updated.AvatarURL = provisioned.AvatarURL
	}
	updated.Metadata = adHocMetadata(extras)

	if err := u.entryRepo.Update(ctx, u.db, &updated); err != nil {
		if pgrepo.IsDuplicateKeyError(err, entryUniqueConstraint) {
			return nil, ErrEntryConflict
		}
		u.log.Warnf("Failed to update directory entry: %+v", err)
		return nil, err
	}

	md.SetEntryKey(existing.ID)
	if current != nil {
		err = u.metadataRepo.Update(ctx, u.db, md)
	} else {
		err = u.metadataRepo.Create(ctx, u.db, md)
	}
	if err != nil {
		u.log.Warnf("Failed to save role metadata: %+v", err)
		u.compensate(ctx, "entry", existing.ID, func(ctx context.Context) error {
			return u.entryRepo.Update(ctx, u.db, &before)
		})
		return nil, err
	}

	if moved {
		if err := u.syncAccountState(ctx, provisioned.AccountID, updated.Status.OrPending()); err != nil {
			u.log.WithFields(logrus.Fields{
				"entry_id":   existing.ID,
				"account_id": provisioned.AccountID,
			}).Warnf("Failed to sync account with entry status: %+v", err)

			u.compensate(ctx, "entry", existing.ID, func(ctx context.Context) error {
				return u.entryRepo.Update(ctx, u.db, &before)
			})
			u.compensate(ctx, "metadata", existing.ID, func(ctx context.Context) error {
				if current == nil {
					_, err := u.metadataRepo.Delete(ctx, u.db, role, existing.ID)
					return err
				}
				return u.metadataRepo.Update(ctx, u.db, current)
			})
			return nil, err
		}
	}

	saved, err := u.reload(ctx, existing.ID)
	if err != nil {
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, actorFromContext(ctx), entity.AuditActionEntryUpdate, entryEntityName, existing.ID.String(), oldValue, saved); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return &dto.DirectoryEntryWriteResponse{
		Entry:             *saved,
		TemporaryPassword: provisioned.TemporaryPassword,
	}, nil
}

// UpdateStatus writes the entry status, the account activation and the profile verification
// concurrently. When one of them fails the others are reverted on a best-effort basis.
func (u *directoryEntryUsecase) UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateDirectoryEntryStatusRequest) (resp *dto.DirectoryEntryResponse, err error) {
	ctx, span := u.tracer.Start(ctx, "DirectoryEntry.UpdateStatus", trace.WithAttributes(
		attribute.String("entry.id", id.String()),
		attribute.String("entry.status", req.Status),
	))
	defer func() { u.finish(span, "update_status", err) }()

	status, ok := entity.ParseEntryStatus(req.Status)
	if !ok {
		return nil, ErrInvalidStatus
	}

	entry, err := u.findEntry(ctx, id)
	if err != nil {
		return nil, err
	}

	var account *entity.Account
	var profile *entity.AccountProfile
	if entry.AccountID != nil {
		if account, err = u.accountRepo.FindByID(ctx, u.db, *entry.AccountID); err != nil {
			u.log.Warnf("Failed to find account by ID: %+v", err)
			return nil, err
		}
		if profile, err = u.profileRepo.FindByAccountID(ctx, u.db, *entry.AccountID); err != nil {
			u.log.Warnf("Failed to find account profile: %+v", err)
			return nil, err
		}
	}

	verifiedAt := u.verifiedAt(status)

	var (
		g                                   errgroup.Group
		entryDone, accountDone, profileDone bool
	)
	g.Go(func() error {
		rows, err := u.entryRepo.UpdateStatus(ctx, u.db, entry.ID, status)
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrEntryNotFound
		}
		entryDone = true
		return nil
	})
	// staff accounts are activated out of band and never toggled by a listing
	if account != nil && account.RoleLabel != entity.RoleLabelAdmin {
		g.Go(func() error {
			if _, err := u.accountRepo.SetActive(ctx, u.db, account.ID, status == entity.EntryStatusApproved); err != nil {
				return err
			}
			accountDone = true
			return nil
		})
	}
	if account != nil {
		g.Go(func() error {
			if err := u.profileRepo.UpsertVerification(ctx, u.db, account.ID, status, verifiedAt); err != nil {
				return err
			}
			profileDone = true
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		u.log.WithFields(logrus.Fields{
			"entry_id": entry.ID,
			"status":   status,
		}).Warnf("Failed to update directory entry status: %+v", err)

		if entryDone {
			u.compensate(ctx, "entry_status", entry.ID, func(ctx context.Context) error {
				_, err := u.entryRepo.UpdateStatus(ctx, u.db, entry.ID, entry.Status.OrPending())
				return err
			})
		}
		if accountDone {
			u.compensate(ctx, "account_active", entry.ID, func(ctx context.Context) error {
				_, err := u.accountRepo.SetActive(ctx, u.db, account.ID, account.IsActive)
				return err
			})
		}
		if profileDone {
			previous, previousAt := entity.EntryStatusPending, (*time.Time)(nil)
			if profile != nil {
				previous, previousAt = profile.VerificationStatus.OrPending(), profile.VerifiedAt
			}
			u.compensate(ctx, "profile_verification", entry.ID, func(ctx context.Context) error {
				return u.profileRepo.UpsertVerification(ctx, u.db, account.ID, previous, previousAt)
			})
		}
		return nil, err
	}

	saved, err := u.reload(ctx, entry.ID)
	if err != nil {
		return nil, err
	}

	oldValue := map[string]any{"status": entry.Status}
	newValue := map[string]any{"status": status}
	if err := u.auditService.LogUpdate(ctx, actorFromContext(ctx), entity.AuditActionEntryStatus, entryEntityName, entry.ID.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return saved, nil
}

// Delete removes the satellite row first, then the base entry. The linked account is kept.
func (u *directoryEntryUsecase) Delete(ctx context.Context, id uuid.UUID) (err error) {
	ctx, span := u.tracer.Start(ctx, "DirectoryEntry.Delete", trace.WithAttributes(attribute.String("entry.id", id.String())))
	defer func() { u.finish(span, "delete", err) }()

	entry, err := u.findEntry(ctx, id)
	if err != nil {
		return err
	}
	oldValue := u.enrichOne(ctx, entry)

	var satellite entity.RoleMetadata
	if entry.Role.IsValid() {
		satellite, err = u.metadataRepo.FindByEntryID(ctx, u.db, entry.Role, entry.ID)
		if err != nil {
			u.log.Warnf("Failed to find role metadata: %+v", err)
			return err
		}
		if _, err := u.metadataRepo.Delete(ctx, u.db, entry.Role, entry.ID); err != nil {
			u.log.Warnf("Failed to delete role metadata: %+v", err)
			return err
		}
	}

	rows, err := u.entryRepo.Delete(ctx, u.db, entry.ID)
	if err != nil {
		u.log.Warnf("Failed to delete directory entry: %+v", err)
		if satellite != nil {
			u.compensate(ctx, "metadata", entry.ID, func(ctx context.Context) error {
				return u.metadataRepo.Create(ctx, u.db, satellite)
			})
		}
		return err
	}
	if rows == 0 {
		return ErrEntryNotFound
	}

	if err := u.auditService.LogDelete(ctx, actorFromContext(ctx), entity.AuditActionEntryDelete, entryEntityName, entry.ID.String(), oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return nil
}

// syncAccountState gives an account the activation and verification an entry of the given
// status implies. Used when an entry moves onto another account.
func (u *directoryEntryUsecase) syncAccountState(ctx context.Context, accountID uuid.UUID, status entity.EntryStatus) error {
	account, err := u.accountRepo.FindByID(ctx, u.db, accountID)
	if err != nil {
		return err
	}
	if account == nil {
		return nil
	}
	if account.RoleLabel != entity.RoleLabelAdmin {
		if _, err := u.accountRepo.SetActive(ctx, u.db, account.ID, status == entity.EntryStatusApproved); err != nil {
			return err
		}
	}
	return u.profileRepo.UpsertVerification(ctx, u.db, account.ID, status, u.verifiedAt(status))
}

func (u *directoryEntryUsecase) verifiedAt(status entity.EntryStatus) *time.Time {
	if status != entity.EntryStatusApproved {
		return nil
	}
	at := u.now()
	return &at
}

// findEntry looks the entry up by its ID, then by the ID of its linked account.
func (u *directoryEntryUsecase) findEntry(ctx context.Context, id uuid.UUID) (*entity.DirectoryEntry, error) {
	entry, err := u.entryRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find directory entry by ID: %+v", err)
		return nil, err
	}
	if entry != nil {
		return entry, nil
	}

	entry, err = u.entryRepo.FindByAccountID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find directory entry by account ID: %+v", err)
		return nil, err
	}
	if entry == nil {
		return nil, ErrEntryNotFound
	}
	return entry, nil
}

func (u *directoryEntryUsecase) ensureNoConflict(ctx context.Context, accountID uuid.UUID, role entity.Role, self uuid.UUID) error {
	other, err := u.entryRepo.FindByAccountAndRole(ctx, u.db, accountID, role)
	if err != nil {
		u.log.Warnf("Failed to find directory entry by account and role: %+v", err)
		return err
	}
	if other != nil && other.ID != self {
		return ErrEntryConflict
	}
	return nil
}

func (u *directoryEntryUsecase) reload(ctx context.Context, id uuid.UUID) (*dto.DirectoryEntryResponse, error) {
	entry, err := u.entryRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to reload directory entry: %+v", err)
		return nil, err
	}
	if entry == nil {
		return nil, ErrEntryNotFound
	}
	return u.enrichOne(ctx, entry), nil
}

func (u *directoryEntryUsecase) enrichOne(ctx context.Context, entry *entity.DirectoryEntry) *dto.DirectoryEntryResponse {
	enriched := u.enricher.Enrich(ctx, []entity.DirectoryEntry{*entry})
	resp := converter.EnrichedEntryToResponse(enriched[0])
	return &resp
}

// compensate undoes a committed write after a later step failed. It outlives the request context.
func (u *directoryEntryUsecase) compensate(ctx context.Context, step string, entryID uuid.UUID, undo func(context.Context) error) {
	ctx = context.WithoutCancel(ctx)
	u.metrics.IncrementCompensation(step)

	outcome := "succeeded"
	if err := undo(ctx); err != nil {
		outcome = "failed"
		u.log.WithFields(logrus.Fields{
			"entry_id": entryID,
			"step":     step,
		}).Errorf("Failed to compensate directory entry write: %+v", err)
	}

	details := map[string]any{"step": step, "outcome": outcome}
	if err := u.auditService.LogUpdate(ctx, actorFromContext(ctx), entity.AuditActionCompensation, entryEntityName, entryID.String(), nil, details); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}
}

func (u *directoryEntryUsecase) finish(span trace.Span, operation string, err error) {
	u.metrics.ObserveOperation(operation, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func parseRole(s string) (entity.Role, bool) {
	role := entity.Role(strings.ToLower(strings.TrimSpace(s)))
	return role, role.IsValid()
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func assign(dst *string, value *string) {
	if value != nil {
		*dst = strings.TrimSpace(*value)
	}
}

func adHocMetadata(extras map[string]any) entity.JSON {
	if len(extras) == 0 {
		return nil
	}
	return entity.JSON(extras)
}

func actorFromContext(ctx context.Context) *uuid.UUID {
	if id, ok := middleware.GetUserIDFromContext(ctx); ok && id != uuid.Nil {
		return &id
	}
	return nil
}
