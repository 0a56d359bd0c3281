package usecase_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"medical-directory-admin/internal/delivery/dto"
	"medical-directory-admin/internal/domain/entity"
	"medical-directory-admin/internal/repository/memrepo"
	"medical-directory-admin/internal/service"
	"medical-directory-admin/internal/service/mocks"
	"medical-directory-admin/internal/usecase"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var errStorage = errors.New("storage unavailable")

type DirectoryEntrySuite struct {
	suite.Suite
	ctx      context.Context
	store    *memrepo.Store
	identity *mocks.MockIdentityProvider
	storage  *mocks.MockObjectStorage
	usecase  usecase.DirectoryEntryUsecase
}

func TestDirectoryEntrySuite(t *testing.T) {
	suite.Run(t, new(DirectoryEntrySuite))
}

func (s *DirectoryEntrySuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	log := logrus.New()
	log.SetOutput(io.Discard)

	s.ctx = context.Background()
	s.store = memrepo.New()
	s.identity = mocks.NewMockIdentityProvider(ctrl)
	s.storage = mocks.NewMockObjectStorage(ctrl)

	provisioner := service.NewAccountProvisioner(nil, log, s.store.Accounts(), s.store.Profiles(), s.identity, s.storage, nil, 12)
	enricher := service.NewEntryEnricher(nil, log, s.store.Metadata(), nil)
	auditService := service.NewAuditService(nil, log, s.store.Audit())

	s.usecase = usecase.NewDirectoryEntryUsecase(
		nil,
		log,
		s.store.Entries(),
		s.store.Metadata(),
		s.store.Accounts(),
		s.store.Profiles(),
		provisioner,
		enricher,
		auditService,
		nil,
	)
}

// expectNewIdentity expects the identity to be created for the normalized form of email.
func (s *DirectoryEntrySuite) expectNewIdentity(email string) uuid.UUID {
	id := uuid.New()
	email = strings.ToLower(strings.TrimSpace(email))
	s.identity.EXPECT().
		CreateUser(gomock.Any(), email, gomock.Any(), gomock.Any()).
		Return(&entity.Identity{ID: id, Email: email}, nil)
	return id
}

func doctorRequest(email string) *dto.CreateDirectoryEntryRequest {
	return &dto.CreateDirectoryEntryRequest{
		Role:     "doctor",
		Name:     "Dr Amina Belkacem",
		Email:    email,
		Phone:    "0555001122",
		Region:   "16",
		Bio:      "Cardiologue",
		Password: "secret1",
		Metadata: map[string]any{
			"specialization":   "Cardiologie",
			"licenseNumber":    "LN-42",
			"consultation_fee": "2500",
			"parking":          "yes",
		},
	}
}

func clinicRequest(email string) *dto.CreateDirectoryEntryRequest {
	return &dto.CreateDirectoryEntryRequest{
		Role:     "clinic",
		Name:     "Clinique El Azhar",
		Email:    email,
		Password: "secret1",
		Metadata: map[string]any{
			"legal_name":          "SARL El Azhar",
			"registration_number": "RC-77",
			"address":             "12 rue Didouche Mourad",
		},
	}
}

func (s *DirectoryEntrySuite) createDoctor(email string) *dto.DirectoryEntryWriteResponse {
	s.expectNewIdentity(email)
	resp, err := s.usecase.Create(s.ctx, doctorRequest(email))
	s.Require().NoError(err)
	return resp
}

func strPtr(v string) *string { return &v }

// Create

func (s *DirectoryEntrySuite) TestCreate_MissingRoleFieldsAreListed() {
	req := doctorRequest("doc@example.com")
	req.Metadata = map[string]any{"specialization": ""}

	_, err := s.usecase.Create(s.ctx, req)

	var validationErr *usecase.ValidationError
	s.Require().ErrorAs(err, &validationErr)
	s.Equal([]string{"Spécialité", "Numéro de licence"}, validationErr.Fields)
	s.Equal(0, s.store.EntryCount())
	s.Equal(0, s.store.Calls(memrepo.OpAccountCreate))
}

func (s *DirectoryEntrySuite) TestCreate_PasswordRequiredForNewAccount() {
	req := doctorRequest("doc@example.com")
	req.Password = ""

	_, err := s.usecase.Create(s.ctx, req)

	s.ErrorIs(err, usecase.ErrPasswordRequired)
	s.Equal(0, s.store.EntryCount())
}

func (s *DirectoryEntrySuite) TestCreate_InvalidRole() {
	req := doctorRequest("doc@example.com")
	req.Role = "veterinarian"

	_, err := s.usecase.Create(s.ctx, req)
	s.ErrorIs(err, usecase.ErrInvalidRole)
}

func (s *DirectoryEntrySuite) TestCreate_StoresPendingEntryWithMergedMetadata() {
	resp := s.createDoctor("Doc@Example.com")

	entry := resp.Entry
	s.Equal("pending", entry.Status)
	s.Equal("doctor", entry.Role)
	s.Equal("doc@example.com", entry.Email)
	s.Empty(resp.TemporaryPassword)
	s.Require().NotNil(entry.AccountID)

	s.Equal("Cardiologie", entry.Metadata["specialization"])
	s.Equal("LN-42", entry.Metadata["license_number"])
	s.Equal("yes", entry.Metadata["parking"])
	s.Equal(true, entry.Metadata["accepts_new_patients"])

	_, ok := s.store.Satellite(entity.RoleDoctor, entry.ID)
	s.True(ok)

	account, ok := s.store.Account(*entry.AccountID)
	s.Require().True(ok)
	s.False(account.IsActive)
	s.Equal(entity.RoleLabelProfessional, account.RoleLabel)

	logs := s.store.AuditLogs()
	s.Require().Len(logs, 1)
	s.Equal(entity.AuditActionEntryCreate, logs[0].Action)
	s.Nil(logs[0].ActorID)
}

func (s *DirectoryEntrySuite) TestCreate_SameAccountAndRoleConflicts() {
	s.createDoctor("doc@example.com")

	_, err := s.usecase.Create(s.ctx, doctorRequest("doc@example.com"))

	s.ErrorIs(err, usecase.ErrEntryConflict)
	s.Equal(1, s.store.EntryCount())
}

func (s *DirectoryEntrySuite) TestCreate_UniqueIndexViolationIsConflict() {
	s.expectNewIdentity("doc@example.com")
	s.store.FailOn(memrepo.OpEntryCreate, &pgconn.PgError{Code: "23505", ConstraintName: "uq_directory_entries_account_role"})

	_, err := s.usecase.Create(s.ctx, doctorRequest("doc@example.com"))

	s.ErrorIs(err, usecase.ErrEntryConflict)
}

func (s *DirectoryEntrySuite) TestCreate_SecondRoleReusesAccount() {
	first := s.createDoctor("doc@example.com")

	req := clinicRequest("doc@example.com")
	req.Password = ""
	second, err := s.usecase.Create(s.ctx, req)

	s.Require().NoError(err)
	s.Equal(*first.Entry.AccountID, *second.Entry.AccountID)
	s.Equal(2, s.store.EntryCount())

	account, _ := s.store.Account(*first.Entry.AccountID)
	s.Equal(entity.RoleLabelOrganization, account.RoleLabel)
}

func (s *DirectoryEntrySuite) TestCreate_SatelliteFailureDeletesBaseEntry() {
	s.expectNewIdentity("doc@example.com")
	s.store.FailOn(memrepo.OpMetadataCreate, errStorage)

	_, err := s.usecase.Create(s.ctx, doctorRequest("doc@example.com"))

	s.ErrorIs(err, errStorage)
	s.Equal(0, s.store.EntryCount())
	s.Equal(1, s.store.Calls(memrepo.OpEntryDelete))
}

func (s *DirectoryEntrySuite) TestCreate_AvatarFailureDoesNotFailCreate() {
	s.expectNewIdentity("doc@example.com")
	s.storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errStorage)

	req := doctorRequest("doc@example.com")
	req.Avatar = &dto.AvatarPayload{FileName: "me.png", Content: "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="}

	resp, err := s.usecase.Create(s.ctx, req)

	s.Require().NoError(err)
	s.Empty(resp.Entry.AvatarURL)
}

// Status transitions

func (s *DirectoryEntrySuite) TestUpdateStatus_ApproveActivatesAccount() {
	created := s.createDoctor("doc@example.com")

	resp, err := s.usecase.UpdateStatus(s.ctx, created.Entry.ID, &dto.UpdateDirectoryEntryStatusRequest{Status: "approved"})
	s.Require().NoError(err)
	s.Equal("approved", resp.Status)

	fetched, err := s.usecase.Get(s.ctx, created.Entry.ID)
	s.Require().NoError(err)
	s.Equal("approved", fetched.Status)

	account, _ := s.store.Account(*created.Entry.AccountID)
	s.True(account.IsActive)

	profile, _ := s.store.Profile(*created.Entry.AccountID)
	s.Equal(entity.EntryStatusApproved, profile.VerificationStatus)
	s.NotNil(profile.VerifiedAt)
}

func (s *DirectoryEntrySuite) TestUpdateStatus_LeavingApprovedDeactivatesAccount() {
	created := s.createDoctor("doc@example.com")
	_, err := s.usecase.UpdateStatus(s.ctx, created.Entry.ID, &dto.UpdateDirectoryEntryStatusRequest{Status: "approved"})
	s.Require().NoError(err)

	resp, err := s.usecase.UpdateStatus(s.ctx, created.Entry.ID, &dto.UpdateDirectoryEntryStatusRequest{Status: "Rejected"})
	s.Require().NoError(err)
	s.Equal("rejected", resp.Status)

	account, _ := s.store.Account(*created.Entry.AccountID)
	s.False(account.IsActive)

	profile, _ := s.store.Profile(*created.Entry.AccountID)
	s.Equal(entity.EntryStatusRejected, profile.VerificationStatus)
	s.Nil(profile.VerifiedAt)
}

func (s *DirectoryEntrySuite) TestUpdateStatus_InvalidStatus() {
	created := s.createDoctor("doc@example.com")

	_, err := s.usecase.UpdateStatus(s.ctx, created.Entry.ID, &dto.UpdateDirectoryEntryStatusRequest{Status: "archived"})

	s.ErrorIs(err, usecase.ErrInvalidStatus)
	s.Equal(0, s.store.Calls(memrepo.OpEntryUpdateStatus))
}

func (s *DirectoryEntrySuite) TestUpdateStatus_NotFound() {
	_, err := s.usecase.UpdateStatus(s.ctx, uuid.New(), &dto.UpdateDirectoryEntryStatusRequest{Status: "approved"})
	s.ErrorIs(err, usecase.ErrEntryNotFound)
}

func (s *DirectoryEntrySuite) TestUpdateStatus_FailureRevertsCompletedWrites() {
	created := s.createDoctor("doc@example.com")
	s.store.FailOn(memrepo.OpAccountSetActive, errStorage)

	_, err := s.usecase.UpdateStatus(s.ctx, created.Entry.ID, &dto.UpdateDirectoryEntryStatusRequest{Status: "approved"})
	s.ErrorIs(err, errStorage)

	fetched, err := s.usecase.Get(s.ctx, created.Entry.ID)
	s.Require().NoError(err)
	s.Equal("pending", fetched.Status)

	account, _ := s.store.Account(*created.Entry.AccountID)
	s.False(account.IsActive)

	profile, _ := s.store.Profile(*created.Entry.AccountID)
	s.Equal(entity.EntryStatusPending, profile.VerificationStatus)
	s.Nil(profile.VerifiedAt)

	var compensations int
	for _, log := range s.store.AuditLogs() {
		if log.Action == entity.AuditActionCompensation {
			compensations++
		}
	}
	s.Equal(2, compensations)
}

func (s *DirectoryEntrySuite) TestUpdateStatus_AdminAccountIsNotToggled() {
	adminID := uuid.New()
	s.store.SeedAccount(entity.Account{
		ID:        adminID,
		Email:     "root@example.com",
		FullName:  "Root",
		RoleLabel: entity.RoleLabelAdmin,
		IsActive:  true,
	})

	req := doctorRequest("root@example.com")
	req.Password = ""
	created, err := s.usecase.Create(s.ctx, req)
	s.Require().NoError(err)

	_, err = s.usecase.UpdateStatus(s.ctx, created.Entry.ID, &dto.UpdateDirectoryEntryStatusRequest{Status: "rejected"})
	s.Require().NoError(err)

	account, _ := s.store.Account(adminID)
	s.True(account.IsActive)
	s.Equal(entity.RoleLabelAdmin, account.RoleLabel)
	s.Equal(0, s.store.Calls(memrepo.OpAccountSetActive))
}

// Update

func (s *DirectoryEntrySuite) TestUpdate_PhoneOnly() {
	created := s.createDoctor("doc@example.com")

	resp, err := s.usecase.Update(s.ctx, created.Entry.ID, &dto.UpdateDirectoryEntryRequest{Phone: strPtr("0661998877")})
	s.Require().NoError(err)

	entry := resp.Entry
	s.Equal("0661998877", entry.Phone)
	s.Equal(created.Entry.Email, entry.Email)
	s.Equal(created.Entry.Role, entry.Role)
	s.Equal(created.Entry.Metadata, entry.Metadata)
	s.Empty(resp.TemporaryPassword)

	account, _ := s.store.Account(*created.Entry.AccountID)
	s.Equal("0661998877", account.Phone)
}

func (s *DirectoryEntrySuite) TestUpdate_MergesMetadataOverExisting() {
	created := s.createDoctor("doc@example.com")

	resp, err := s.usecase.Update(s.ctx, created.Entry.ID, &dto.UpdateDirectoryEntryRequest{
		Metadata: map[string]any{"specialization": "Pédiatrie", "teleconsultation": "oui"},
	})
	s.Require().NoError(err)

	s.Equal("Pédiatrie", resp.Entry.Metadata["specialization"])
	s.Equal("LN-42", resp.Entry.Metadata["license_number"])
	s.Equal(true, resp.Entry.Metadata["teleconsultation"])
	s.Equal("yes", resp.Entry.Metadata["parking"])
}

func (s *DirectoryEntrySuite) TestUpdate_ClearingRequiredFieldFailsValidation() {
	created := s.createDoctor("doc@example.com")

	_, err := s.usecase.Update(s.ctx, created.Entry.ID, &dto.UpdateDirectoryEntryRequest{
		Metadata: map[string]any{"license_number": "  "},
	})

	var validationErr *usecase.ValidationError
	s.Require().ErrorAs(err, &validationErr)
	s.Equal([]string{"Numéro de licence"}, validationErr.Fields)
	s.Equal(0, s.store.Calls(memrepo.OpEntryUpdate))
}

func (s *DirectoryEntrySuite) TestUpdate_RoleIsImmutable() {
	created := s.createDoctor("doc@example.com")

	_, err := s.usecase.Update(s.ctx, created.Entry.ID, &dto.UpdateDirectoryEntryRequest{Role: strPtr("clinic")})
	s.ErrorIs(err, usecase.ErrRoleChange)

	_, err = s.usecase.Update(s.ctx, created.Entry.ID, &dto.UpdateDirectoryEntryRequest{Role: strPtr("Doctor")})
	s.NoError(err)
}

func (s *DirectoryEntrySuite) TestUpdate_FindsEntryByAccountID() {
	created := s.createDoctor("doc@example.com")

	resp, err := s.usecase.Update(s.ctx, *created.Entry.AccountID, &dto.UpdateDirectoryEntryRequest{Region: strPtr("31")})
	s.Require().NoError(err)
	s.Equal(created.Entry.ID, resp.Entry.ID)
	s.Equal("31", resp.Entry.Region)
}

func (s *DirectoryEntrySuite) TestUpdate_NotFound() {
	_, err := s.usecase.Update(s.ctx, uuid.New(), &dto.UpdateDirectoryEntryRequest{Phone: strPtr("1")})
	s.ErrorIs(err, usecase.ErrEntryNotFound)
}

func (s *DirectoryEntrySuite) TestUpdate_InsertsMissingSatellite() {
	accountID := uuid.New()
	s.store.SeedAccount(entity.Account{ID: accountID, Email: "lab@example.com", RoleLabel: entity.RoleLabelOrganization})
	entry := &entity.DirectoryEntry{AccountID: &accountID, Role: entity.RoleLaboratory, Name: "Labo Pasteur", Email: "lab@example.com"}
	s.Require().NoError(s.store.Entries().Create(s.ctx, nil, entry))

	resp, err := s.usecase.Update(s.ctx, entry.ID, &dto.UpdateDirectoryEntryRequest{
		Metadata: map[string]any{
			"legalName":           "Labo Pasteur SPA",
			"registrationNumber":  "RC-1",
			"address":             "Alger",
			"accreditationNumber": "ISO-15189",
		},
	})
	s.Require().NoError(err)
	s.Equal("ISO-15189", resp.Entry.Metadata["accreditation_number"])

	_, ok := s.store.Satellite(entity.RoleLaboratory, entry.ID)
	s.True(ok)
}

func (s *DirectoryEntrySuite) TestUpdate_SatelliteFailureRestoresBaseEntry() {
	created := s.createDoctor("doc@example.com")
	s.store.FailOn(memrepo.OpMetadataUpdate, errStorage)

	_, err := s.usecase.Update(s.ctx, created.Entry.ID, &dto.UpdateDirectoryEntryRequest{Phone: strPtr("0661998877")})
	s.ErrorIs(err, errStorage)

	fetched, err := s.usecase.Get(s.ctx, created.Entry.ID)
	s.Require().NoError(err)
	s.Equal("0555001122", fetched.Phone)
}

func (s *DirectoryEntrySuite) TestUpdate_NewEmailProvisionsAccountWithTemporaryPassword() {
	created := s.createDoctor("doc@example.com")
	newAccountID := s.expectNewIdentity("amina@example.com")

	resp, err := s.usecase.Update(s.ctx, created.Entry.ID, &dto.UpdateDirectoryEntryRequest{Email: strPtr("Amina@Example.com")})
	s.Require().NoError(err)

	s.Equal("amina@example.com", resp.Entry.Email)
	s.Equal(newAccountID, *resp.Entry.AccountID)
	s.NotEmpty(resp.TemporaryPassword)

	_, ok := s.store.Account(*created.Entry.AccountID)
	s.True(ok)
}

func (s *DirectoryEntrySuite) TestUpdate_NewEmailOwnedBySameRoleConflicts() {
	first := s.createDoctor("doc@example.com")
	s.createDoctor("other@example.com")

	_, err := s.usecase.Update(s.ctx, first.Entry.ID, &dto.UpdateDirectoryEntryRequest{Email: strPtr("other@example.com")})
	s.ErrorIs(err, usecase.ErrEntryConflict)
}

func (s *DirectoryEntrySuite) TestUpdate_ConflictingMoveLeavesOtherAccountUntouched() {
	first := s.createDoctor("doc@example.com")

	s.expectNewIdentity("other@example.com")
	req := doctorRequest("other@example.com")
	req.Name = "Dr Karim Other"
	req.Bio = "Pédiatre"
	req.Metadata["specialization"] = "Pédiatrie"
	other, err := s.usecase.Create(s.ctx, req)
	s.Require().NoError(err)
	otherAccountID := *other.Entry.AccountID
	accountBefore, _ := s.store.Account(otherAccountID)
	profileBefore, _ := s.store.Profile(otherAccountID)

	_, err = s.usecase.Update(s.ctx, first.Entry.ID, &dto.UpdateDirectoryEntryRequest{
		Email: strPtr("other@example.com"),
		Name:  strPtr("Dr Amina B."),
	})
	s.ErrorIs(err, usecase.ErrEntryConflict)

	accountAfter, _ := s.store.Account(otherAccountID)
	profileAfter, _ := s.store.Profile(otherAccountID)
	s.Equal("Dr Karim Other", accountAfter.FullName)
	s.Equal(accountBefore.Phone, accountAfter.Phone)
	s.Equal("Pédiatrie", profileAfter.Specialization)
	s.Equal(profileBefore.Biography, profileAfter.Biography)
	s.Equal(0, s.store.Calls(memrepo.OpEntryUpdate))
}

func (s *DirectoryEntrySuite) TestUpdate_MovedApprovedEntryActivatesNewAccount() {
	created := s.createDoctor("doc@example.com")
	_, err := s.usecase.UpdateStatus(s.ctx, created.Entry.ID, &dto.UpdateDirectoryEntryStatusRequest{Status: "approved"})
	s.Require().NoError(err)
	newAccountID := s.expectNewIdentity("moved@example.com")

	resp, err := s.usecase.Update(s.ctx, created.Entry.ID, &dto.UpdateDirectoryEntryRequest{Email: strPtr("moved@example.com")})
	s.Require().NoError(err)
	s.Equal("approved", resp.Entry.Status)
	s.Equal(newAccountID, *resp.Entry.AccountID)

	account, ok := s.store.Account(newAccountID)
	s.Require().True(ok)
	s.True(account.IsActive)

	profile, ok := s.store.Profile(newAccountID)
	s.Require().True(ok)
	s.Equal(entity.EntryStatusApproved, profile.VerificationStatus)
	s.NotNil(profile.VerifiedAt)
}

func (s *DirectoryEntrySuite) TestUpdate_MoveSyncFailureRestoresEntry() {
	created := s.createDoctor("doc@example.com")
	_, err := s.usecase.UpdateStatus(s.ctx, created.Entry.ID, &dto.UpdateDirectoryEntryStatusRequest{Status: "approved"})
	s.Require().NoError(err)
	s.expectNewIdentity("moved@example.com")
	s.store.FailOn(memrepo.OpAccountSetActive, errStorage)

	_, err = s.usecase.Update(s.ctx, created.Entry.ID, &dto.UpdateDirectoryEntryRequest{Email: strPtr("moved@example.com")})
	s.ErrorIs(err, errStorage)

	fetched, err := s.usecase.Get(s.ctx, created.Entry.ID)
	s.Require().NoError(err)
	s.Equal("doc@example.com", fetched.Email)
	s.Equal(*created.Entry.AccountID, *fetched.AccountID)
	s.Equal("approved", fetched.Status)
}

// Delete

func (s *DirectoryEntrySuite) TestDelete_RemovesSatelliteAndKeepsAccount() {
	created := s.createDoctor("doc@example.com")

	s.Require().NoError(s.usecase.Delete(s.ctx, created.Entry.ID))

	_, ok := s.store.Satellite(entity.RoleDoctor, created.Entry.ID)
	s.False(ok)
	s.Equal(0, s.store.EntryCount())

	_, ok = s.store.Account(*created.Entry.AccountID)
	s.True(ok)

	_, err := s.usecase.Get(s.ctx, created.Entry.ID)
	s.ErrorIs(err, usecase.ErrEntryNotFound)
}

func (s *DirectoryEntrySuite) TestDelete_NotFound() {
	s.ErrorIs(s.usecase.Delete(s.ctx, uuid.New()), usecase.ErrEntryNotFound)
}

func (s *DirectoryEntrySuite) TestDelete_BaseFailureRestoresSatellite() {
	created := s.createDoctor("doc@example.com")
	s.store.FailOn(memrepo.OpEntryDelete, errStorage)

	s.ErrorIs(s.usecase.Delete(s.ctx, created.Entry.ID), errStorage)

	md, ok := s.store.Satellite(entity.RoleDoctor, created.Entry.ID)
	s.Require().True(ok)
	s.Equal(created.Entry.ID, md.EntryKey())
}

// List

func (s *DirectoryEntrySuite) TestList_FiltersAndPaginates() {
	s.createDoctor("a@example.com")
	s.createDoctor("b@example.com")
	s.expectNewIdentity("clinic@example.com")
	_, err := s.usecase.Create(s.ctx, clinicRequest("clinic@example.com"))
	s.Require().NoError(err)

	all, err := s.usecase.List(s.ctx, &dto.ListDirectoryEntriesRequest{})
	s.Require().NoError(err)
	s.EqualValues(3, all.Total)
	s.Equal(1, all.Page)
	s.Equal(20, all.Limit)

	doctors, err := s.usecase.List(s.ctx, &dto.ListDirectoryEntriesRequest{Role: "doctor", Limit: 1})
	s.Require().NoError(err)
	s.EqualValues(2, doctors.Total)
	s.Len(doctors.Entries, 1)
	s.Equal("Cardiologie", doctors.Entries[0].Metadata["specialization"])
}

func (s *DirectoryEntrySuite) TestList_RejectsUnknownFilters() {
	_, err := s.usecase.List(s.ctx, &dto.ListDirectoryEntriesRequest{Role: "dentist"})
	s.ErrorIs(err, usecase.ErrInvalidRole)

	_, err = s.usecase.List(s.ctx, &dto.ListDirectoryEntriesRequest{Status: "archived"})
	s.ErrorIs(err, usecase.ErrInvalidStatus)
}

func (s *DirectoryEntrySuite) TestList_ReportsUnknownStoredStatusAsPending() {
	entry := &entity.DirectoryEntry{Role: entity.RoleDoctor, Name: "Legacy", Email: "legacy@example.com", Status: "legacy"}
	s.Require().NoError(s.store.Entries().Create(s.ctx, nil, entry))

	resp, err := s.usecase.List(s.ctx, &dto.ListDirectoryEntriesRequest{})
	s.Require().NoError(err)
	s.Require().Len(resp.Entries, 1)
	s.Equal("pending", resp.Entries[0].Status)
}
