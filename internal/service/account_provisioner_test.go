package service_test

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"medical-directory-admin/internal/domain/entity"
	"medical-directory-admin/internal/repository/memrepo"
	"medical-directory-admin/internal/service"
	"medical-directory-admin/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type provisionerFixture struct {
	store       *memrepo.Store
	identity    *mocks.MockIdentityProvider
	storage     *mocks.MockObjectStorage
	provisioner service.AccountProvisioner
}

func newProvisionerFixture(t *testing.T) *provisionerFixture {
	ctrl := gomock.NewController(t)
	f := &provisionerFixture{
		store:    memrepo.New(),
		identity: mocks.NewMockIdentityProvider(ctrl),
		storage:  mocks.NewMockObjectStorage(ctrl),
	}
	f.provisioner = service.NewAccountProvisioner(
		nil,
		quietLogger(),
		f.store.Accounts(),
		f.store.Profiles(),
		f.identity,
		f.storage,
		nil,
		12,
	)
	return f
}

func doctorRequest() service.ProvisionRequest {
	return service.ProvisionRequest{
		Role:   entity.RoleDoctor,
		Name:   "Dr Amina Belkacem",
		Email:  "Doc@Example.com",
		Phone:  "0555 00 11 22",
		Region: "16",
		Bio:    "Cardiologue",
		Metadata: map[string]any{
			"specialization": "Cardiologie",
			"license_number": "LN-1",
			"working_hours":  map[string]any{"mon": "08-12"},
		},
	}
}

func TestEnsureAccount_CreatesInactiveAccountWithTemporaryPassword(t *testing.T) {
	f := newProvisionerFixture(t)
	identityID := uuid.New()

	var usedPassword string
	f.identity.EXPECT().
		CreateUser(gomock.Any(), "doc@example.com", gomock.Any(), "Dr Amina Belkacem").
		DoAndReturn(func(_ context.Context, email, password, _ string) (*entity.Identity, error) {
			usedPassword = password
			return &entity.Identity{ID: identityID, Email: email}, nil
		})

	result, err := f.provisioner.EnsureAccount(context.Background(), doctorRequest())
	require.NoError(t, err)

	assert.True(t, result.Created)
	assert.Equal(t, identityID, result.AccountID)
	assert.Len(t, result.TemporaryPassword, 12)
	assert.Equal(t, usedPassword, result.TemporaryPassword)

	account, ok := f.store.Account(identityID)
	require.True(t, ok)
	assert.False(t, account.IsActive)
	assert.False(t, account.EmailVerified)
	assert.Equal(t, entity.RoleLabelProfessional, account.RoleLabel)
	assert.Equal(t, "doc@example.com", account.Email)

	profile, ok := f.store.Profile(identityID)
	require.True(t, ok)
	assert.Equal(t, "Cardiologie", profile.Specialization)
	assert.Equal(t, "LN-1", profile.LicenseNumber)
	assert.Equal(t, "Cardiologue", profile.Biography)
	assert.Equal(t, entity.JSON{"mon": "08-12"}, profile.WorkingHours)
	assert.Equal(t, entity.EntryStatusPending, profile.VerificationStatus)
}

func TestEnsureAccount_UsesSuppliedPassword(t *testing.T) {
	f := newProvisionerFixture(t)
	req := doctorRequest()
	req.Password = "s3cret-pass"

	f.identity.EXPECT().
		CreateUser(gomock.Any(), "doc@example.com", "s3cret-pass", gomock.Any()).
		Return(&entity.Identity{ID: uuid.New()}, nil)

	result, err := f.provisioner.EnsureAccount(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, result.TemporaryPassword)
}

func TestEnsureAccount_DeletesIdentityWhenAccountInsertFails(t *testing.T) {
	f := newProvisionerFixture(t)
	identityID := uuid.New()
	f.store.FailOn(memrepo.OpAccountCreate, errors.New("connection reset"))

	f.identity.EXPECT().CreateUser(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&entity.Identity{ID: identityID}, nil)
	f.identity.EXPECT().DeleteUser(gomock.Any(), identityID).Return(nil)

	result, err := f.provisioner.EnsureAccount(context.Background(), doctorRequest())
	assert.Nil(t, result)
	assert.ErrorIs(t, err, service.ErrAccountWrite)
	_, ok := f.store.Account(identityID)
	assert.False(t, ok)
}

func TestEnsureAccount_IdentityFailure(t *testing.T) {
	f := newProvisionerFixture(t)
	f.identity.EXPECT().CreateUser(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, service.ErrIdentityExists)

	_, err := f.provisioner.EnsureAccount(context.Background(), doctorRequest())
	assert.ErrorIs(t, err, service.ErrIdentityProvider)
	assert.ErrorIs(t, err, service.ErrIdentityExists)
	assert.Zero(t, f.store.Calls(memrepo.OpAccountCreate))
}

func TestEnsureAccount_ReusesExistingAccount(t *testing.T) {
	f := newProvisionerFixture(t)
	existing := entity.Account{
		ID:        uuid.New(),
		Email:     "doc@example.com",
		FullName:  "Amina B.",
		Phone:     "0000",
		RoleLabel: entity.RoleLabelOrganization,
		IsActive:  true,
	}
	f.store.SeedAccount(existing)

	req := doctorRequest()
	req.Phone = ""
	result, err := f.provisioner.EnsureAccount(context.Background(), req)
	require.NoError(t, err)

	assert.False(t, result.Created)
	assert.Equal(t, existing.ID, result.AccountID)
	account, _ := f.store.Account(existing.ID)
	assert.Equal(t, "Dr Amina Belkacem", account.FullName)
	assert.Equal(t, "0000", account.Phone, "empty input keeps the stored phone")
	assert.Equal(t, entity.RoleLabelProfessional, account.RoleLabel)
	assert.True(t, account.IsActive)
}

func TestEnsureAccount_KeepsAdminLabel(t *testing.T) {
	f := newProvisionerFixture(t)
	admin := entity.Account{ID: uuid.New(), Email: "doc@example.com", RoleLabel: entity.RoleLabelAdmin}
	f.store.SeedAccount(admin)

	_, err := f.provisioner.EnsureAccount(context.Background(), doctorRequest())
	require.NoError(t, err)

	account, _ := f.store.Account(admin.ID)
	assert.Equal(t, entity.RoleLabelAdmin, account.RoleLabel)
}

func TestEnsureAccount_AvatarFailureIsSwallowed(t *testing.T) {
	f := newProvisionerFixture(t)
	existing := entity.Account{ID: uuid.New(), Email: "doc@example.com", RoleLabel: entity.RoleLabelProfessional}
	f.store.SeedAccount(existing)

	req := doctorRequest()
	req.Avatar = &service.AvatarUpload{
		FileName: "me.png",
		Content:  base64.StdEncoding.EncodeToString(pngHeader),
	}
	f.storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), "image/png").
		Return("", errors.New("bucket unavailable"))

	result, err := f.provisioner.EnsureAccount(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, result.AvatarURL)
}

func TestEnsureAccount_UploadsAvatar(t *testing.T) {
	f := newProvisionerFixture(t)
	existing := entity.Account{ID: uuid.New(), Email: "doc@example.com", RoleLabel: entity.RoleLabelProfessional}
	f.store.SeedAccount(existing)

	req := doctorRequest()
	req.Avatar = &service.AvatarUpload{
		FileName: "Portrait Officiel.PNG",
		Content:  "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngHeader),
	}
	const url = "https://cdn.example.com/avatars/x.png"

	var storedPath string
	f.storage.EXPECT().Upload(gomock.Any(), gomock.Any(), pngHeader, "image/png").
		DoAndReturn(func(_ context.Context, path string, _ []byte, _ string) (string, error) {
			storedPath = path
			return url, nil
		})
	f.identity.EXPECT().UpdateUser(gomock.Any(), existing.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, update service.IdentityUpdate) error {
			require.NotNil(t, update.AvatarURL)
			assert.Equal(t, url, *update.AvatarURL)
			return nil
		})

	result, err := f.provisioner.EnsureAccount(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, url, result.AvatarURL)
	assert.True(t, strings.HasPrefix(storedPath, "avatars/"+existing.ID.String()+"/"))
	assert.True(t, strings.HasSuffix(storedPath, "-portrait-officiel.png"))
	account, _ := f.store.Account(existing.ID)
	assert.Equal(t, url, account.AvatarURL)
}

func TestEnsureAccount_ProfileFailure(t *testing.T) {
	f := newProvisionerFixture(t)
	f.store.SeedAccount(entity.Account{ID: uuid.New(), Email: "doc@example.com"})
	f.store.FailOn(memrepo.OpProfileUpsert, errors.New("deadlock"))

	_, err := f.provisioner.EnsureAccount(context.Background(), doctorRequest())
	assert.ErrorIs(t, err, service.ErrProfileUpsert)
}

func TestDecodeAvatar(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString(pngHeader)

	content, contentType, err := service.DecodeAvatar(&service.AvatarUpload{Content: encoded, ContentType: "application/octet-stream"})
	require.NoError(t, err)
	assert.Equal(t, pngHeader, content)
	assert.Equal(t, "image/png", contentType)

	_, _, err = service.DecodeAvatar(&service.AvatarUpload{Content: base64.StdEncoding.EncodeToString([]byte("plain text"))})
	assert.Error(t, err)

	_, _, err = service.DecodeAvatar(&service.AvatarUpload{Content: "%%%"})
	assert.Error(t, err)

	_, _, err = service.DecodeAvatar(&service.AvatarUpload{Content: "data:image/png;base64,"})
	assert.Error(t, err)
}

func TestAvatarPath(t *testing.T) {
	id := uuid.MustParse("7f1f8c1e-9d43-4e43-a2a5-0a5b7f7e8f10")
	at := time.UnixMilli(1700000000000)

	assert.Equal(t,
		"avatars/7f1f8c1e-9d43-4e43-a2a5-0a5b7f7e8f10/1700000000000-my-photo-1.jpg",
		service.AvatarPath(id, at, "C:\\Users\\me\\My Photo (1).JPG", "image/jpeg"))
	assert.Equal(t,
		"avatars/7f1f8c1e-9d43-4e43-a2a5-0a5b7f7e8f10/1700000000000-avatar.png",
		service.AvatarPath(id, at, "", "image/png"))
}

func TestGeneratePassword(t *testing.T) {
	a, err := service.GeneratePassword(16)
	require.NoError(t, err)
	b, err := service.GeneratePassword(16)
	require.NoError(t, err)

	assert.Len(t, a, 16)
	assert.NotEqual(t, a, b)

	short, err := service.GeneratePassword(3)
	require.NoError(t, err)
	assert.Len(t, short, 12)
}

func TestEnsureAccount_RemovesReplacedAvatar(t *testing.T) {
	f := newProvisionerFixture(t)
	existing := entity.Account{
		ID:        uuid.New(),
		Email:     "doc@example.com",
		RoleLabel: entity.RoleLabelProfessional,
		AvatarURL: "https://cdn.example.com/bucket/avatars/" + uuid.Nil.String() + "/1-old.png",
	}
	f.store.SeedAccount(existing)

	req := doctorRequest()
	req.Avatar = &service.AvatarUpload{FileName: "new.png", Content: base64.StdEncoding.EncodeToString(pngHeader)}
	f.storage.EXPECT().Upload(gomock.Any(), gomock.Any(), pngHeader, "image/png").
		Return("https://cdn.example.com/bucket/avatars/new.png", nil)
	f.identity.EXPECT().UpdateUser(gomock.Any(), existing.ID, gomock.Any()).Return(nil)
	f.storage.EXPECT().Remove(gomock.Any(), "avatars/"+uuid.Nil.String()+"/1-old.png").Return(errors.New("already gone"))

	result, err := f.provisioner.EnsureAccount(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/bucket/avatars/new.png", result.AvatarURL)
}

func TestAvatarPathFromURL(t *testing.T) {
	path, ok := service.AvatarPathFromURL("http://localhost:9000/directory/avatars/abc/17-my%20photo.png")
	assert.True(t, ok)
	assert.Equal(t, "avatars/abc/17-my photo.png", path)

	_, ok = service.AvatarPathFromURL("https://gravatar.com/u/abc.png")
	assert.False(t, ok)

	_, ok = service.AvatarPathFromURL("")
	assert.False(t, ok)
}
