package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"medical-directory-admin/internal/domain/entity"
	"medical-directory-admin/internal/domain/repository"
	"medical-directory-admin/pkg/metrics"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrIdentityProvider = errors.New("identity provider failure")
	ErrAccountWrite     = errors.New("account write failure")
	ErrProfileUpsert    = errors.New("account profile upsert failure")

	errAvatarEmpty    = errors.New("avatar content is empty")
	errAvatarTooLarge = errors.New("avatar exceeds size limit")
	errAvatarNotImage = errors.New("avatar is not an image")
)

const (
	defaultTempPasswordLength = 12
	maxAvatarBytes            = 5 << 20
	avatarPrefix              = "avatars/"
	passwordAlphabet          = "abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789!@#$%*?"
)

// AvatarUpload is an image sent inline with an entry payload
type AvatarUpload struct {
	FileName    string
	ContentType string
	// Content is base64, optionally as a data URL.
	Content string
}

type ProvisionRequest struct {
	Role      entity.Role
	Name      string
	Email     string
	Phone     string
	Region    string
	SubRegion string
	Bio       string
	Avatar    *AvatarUpload
	Password  string
	// Metadata is the canonical role metadata of the entry.
	Metadata map[string]any
}

type ProvisionResult struct {
	AccountID uuid.UUID
	// TemporaryPassword is set only when a new identity was created without a password.
	TemporaryPassword string
	AvatarURL         string
	Created           bool
}

// AccountProvisioner makes sure an identity, an account and a profile exist for an email.
type AccountProvisioner interface {
	EnsureAccount(ctx context.Context, req ProvisionRequest) (*ProvisionResult, error)
}

type accountProvisioner struct {
	db                 *gorm.DB
	log                *logrus.Logger
	accountRepo        repository.AccountRepository
	profileRepo        repository.AccountProfileRepository
	identity           IdentityProvider
	storage            ObjectStorage
	metrics            *metrics.Metrics
	tempPasswordLength int
	now                func() time.Time
}

func NewAccountProvisioner(
	db *gorm.DB,
	log *logrus.Logger,
	accountRepo repository.AccountRepository,
	profileRepo repository.AccountProfileRepository,
	identity IdentityProvider,
	storage ObjectStorage,
	m *metrics.Metrics,
	tempPasswordLength int,
) AccountProvisioner {
	return &accountProvisioner{
		db:                 db,
		log:                log,
		accountRepo:        accountRepo,
		profileRepo:        profileRepo,
		identity:           identity,
		storage:            storage,
		metrics:            m,
		tempPasswordLength: tempPasswordLength,
		now:                time.Now,
	}
}

func (p *accountProvisioner) EnsureAccount(ctx context.Context, req ProvisionRequest) (*ProvisionResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	account, err := p.accountRepo.FindByEmail(ctx, p.db, email)
	if err != nil {
		p.log.Warnf("Failed to find account by email: %+v", err)
		return nil, fmt.Errorf("%w: %w", ErrAccountWrite, err)
	}

	result := &ProvisionResult{}
	if account == nil {
		account, result.TemporaryPassword, err = p.createAccount(ctx, email, req)
		if err != nil {
			return nil, err
		}
		result.Created = true
	} else if err := p.updateAccount(ctx, account, req); err != nil {
		return nil, err
	}
	result.AccountID = account.ID
	result.AvatarURL = account.AvatarURL

	// avatar upload is best effort
	if req.Avatar != nil {
		if url, ok := p.replaceAvatar(ctx, account.ID, account.AvatarURL, req.Avatar); ok {
			result.AvatarURL = url
		}
	}

	if err := p.profileRepo.Upsert(ctx, p.db, ProfileFromMetadata(account.ID, req.Bio, req.Metadata)); err != nil {
		p.log.Warnf("Failed to upsert account profile: %+v", err)
		return nil, fmt.Errorf("%w: %w", ErrProfileUpsert, err)
	}

	return result, nil
}

func (p *accountProvisioner) createAccount(ctx context.Context, email string, req ProvisionRequest) (*entity.Account, string, error) {
	password := req.Password
	var tempPassword string
	if password == "" {
		generated, err := GeneratePassword(p.tempPasswordLength)
		if err != nil {
			p.log.Warnf("Failed to generate temporary password: %+v", err)
			return nil, "", fmt.Errorf("%w: %w", ErrIdentityProvider, err)
		}
		password, tempPassword = generated, generated
	}

	identity, err := p.identity.CreateUser(ctx, email, password, strings.TrimSpace(req.Name))
	if err != nil {
		p.log.Warnf("Failed to create identity: %+v", err)
		return nil, "", fmt.Errorf("%w: %w", ErrIdentityProvider, err)
	}

	account := &entity.Account{
		ID:            identity.ID,
		Email:         email,
		FullName:      strings.TrimSpace(req.Name),
		Phone:         strings.TrimSpace(req.Phone),
		Region:        strings.TrimSpace(req.Region),
		SubRegion:     strings.TrimSpace(req.SubRegion),
		RoleLabel:     req.Role.AccountLabel(),
		IsActive:      false,
		EmailVerified: false,
	}
	if err := p.accountRepo.Create(ctx, p.db, account); err != nil {
		p.log.Warnf("Failed to create account: %+v", err)
		p.metrics.IncrementCompensation("identity")
		if delErr := p.identity.DeleteUser(context.WithoutCancel(ctx), identity.ID); delErr != nil {
			p.log.WithFields(logrus.Fields{
				"identity_id": identity.ID,
				"email":       email,
			}).Errorf("Failed to delete orphaned identity: %+v", delErr)
		}
		return nil, "", fmt.Errorf("%w: %w", ErrAccountWrite, err)
	}

	return account, tempPassword, nil
}

// updateAccount copies the non-empty mutable fields of req onto account.
// An admin label is never downgraded.
func (p *accountProvisioner) updateAccount(ctx context.Context, account *entity.Account, req ProvisionRequest) error {
	changed := false
	set := func(dst *string, value string) {
		value = strings.TrimSpace(value)
		if value != "" && *dst != value {
			*dst = value
			changed = true
		}
	}
	set(&account.FullName, req.Name)
	set(&account.Phone, req.Phone)
	set(&account.Region, req.Region)
	set(&account.SubRegion, req.SubRegion)
	if label := req.Role.AccountLabel(); label != "" && account.RoleLabel != entity.RoleLabelAdmin {
		set(&account.RoleLabel, label)
	}

	if !changed {
		return nil
	}
	if err := p.accountRepo.Update(ctx, p.db, account); err != nil {
		p.log.Warnf("Failed to update account: %+v", err)
		return fmt.Errorf("%w: %w", ErrAccountWrite, err)
	}
	return nil
}

func (p *accountProvisioner) replaceAvatar(ctx context.Context, accountID uuid.UUID, previousURL string, avatar *AvatarUpload) (string, bool) {
	logger := p.log.WithFields(logrus.Fields{
		"account_id": accountID,
		"file_name":  avatar.FileName,
	})

	content, contentType, err := DecodeAvatar(avatar)
	if err != nil {
		logger.Warnf("Failed to decode avatar: %+v", err)
		return "", false
	}

	path := AvatarPath(accountID, p.now(), avatar.FileName, contentType)
	url, err := p.storage.Upload(ctx, path, content, contentType)
	if err != nil {
		logger.Warnf("Failed to upload avatar: %+v", err)
		return "", false
	}

	if err := p.accountRepo.UpdateAvatar(ctx, p.db, accountID, url); err != nil {
		logger.Warnf("Failed to save avatar url: %+v", err)
		return "", false
	}
	if err := p.identity.UpdateUser(ctx, accountID, IdentityUpdate{AvatarURL: &url}); err != nil {
		logger.Warnf("Failed to propagate avatar url to identity: %+v", err)
	}

	// the previous object is garbage once the account points at the new one
	if previous, ok := AvatarPathFromURL(previousURL); ok && previousURL != url {
		if err := p.storage.Remove(ctx, previous); err != nil {
			logger.Warnf("Failed to remove previous avatar: %+v", err)
		}
	}
	return url, true
}

// AvatarPathFromURL recovers the storage key of an avatar from its public URL.
// URLs that do not point into the avatars prefix are rejected.
func AvatarPathFromURL(publicURL string) (string, bool) {
	i := strings.Index(publicURL, "/"+avatarPrefix)
	if i < 0 {
		return "", false
	}
	path, err := url.PathUnescape(publicURL[i+1:])
	if err != nil || path == avatarPrefix {
		return "", false
	}
	return path, true
}

// DecodeAvatar returns the image bytes of avatar and the content type to store them with.
// The declared type is trusted only when it names an image; otherwise the content is sniffed.
func DecodeAvatar(avatar *AvatarUpload) ([]byte, string, error) {
	raw := strings.TrimSpace(avatar.Content)
	declared := strings.ToLower(strings.TrimSpace(avatar.ContentType))

	if rest, ok := strings.CutPrefix(raw, "data:"); ok {
		header, payload, found := strings.Cut(rest, ",")
		if !found {
			return nil, "", errAvatarEmpty
		}
		if declared == "" {
			declared, _, _ = strings.Cut(header, ";")
		}
		raw = payload
	}
	if raw == "" {
		return nil, "", errAvatarEmpty
	}

	content, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		content, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(raw, "="))
		if err != nil {
			return nil, "", fmt.Errorf("decode avatar: %w", err)
		}
	}
	if len(content) == 0 {
		return nil, "", errAvatarEmpty
	}
	if len(content) > maxAvatarBytes {
		return nil, "", errAvatarTooLarge
	}

	detected := mimetype.Detect(content)
	if !strings.HasPrefix(detected.String(), "image/") {
		return nil, "", fmt.Errorf("%w: %s", errAvatarNotImage, detected.String())
	}
	if strings.HasPrefix(declared, "image/") {
		return content, declared, nil
	}
	return content, detected.String(), nil
}

// AvatarPath derives a storage key from the account, the upload time and a sanitized file name.
func AvatarPath(accountID uuid.UUID, at time.Time, fileName, contentType string) string {
	return fmt.Sprintf("%s%s/%d-%s", avatarPrefix, accountID, at.UnixMilli(), sanitizeFileName(fileName, contentType))
}

func sanitizeFileName(name, contentType string) string {
	base := strings.ToLower(filepath.Base(strings.ReplaceAll(name, "\\", "/")))
	var b strings.Builder
	lastDash := false
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '_':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	clean := strings.Trim(strings.ReplaceAll(b.String(), "-.", "."), "-.")
	if clean == "" {
		ext := ""
		if mt := mimetype.Lookup(contentType); mt != nil {
			ext = mt.Extension()
		}
		clean = "avatar" + ext
	}
	return clean
}

// GeneratePassword returns a random password of length characters (at least 8).
func GeneratePassword(length int) (string, error) {
	if length < 8 {
		length = defaultTempPasswordLength
	}
	limit := big.NewInt(int64(len(passwordAlphabet)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		out[i] = passwordAlphabet[n.Int64()]
	}
	return string(out), nil
}

// ProfileFromMetadata picks the profile columns out of canonical role metadata.
// The whole metadata map is kept so the stored blob can be merged.
func ProfileFromMetadata(accountID uuid.UUID, bio string, md map[string]any) *entity.AccountProfile {
	return &entity.AccountProfile{
		AccountID:      accountID,
		Biography:      strings.TrimSpace(bio),
		Specialization: firstString(md, "specialization", "profession"),
		LicenseNumber:  firstString(md, "license_number", "registration_number"),
		Address:        firstString(md, "address"),
		Website:        firstString(md, "website"),
		WorkingHours:   objectValue(md["working_hours"]),
		Services:       objectValue(md["services"]),
		Metadata:       entity.JSON(md).Clone(),
	}
}

func firstString(md map[string]any, keys ...string) string {
	for _, k := range keys {
		switch v := md[k].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case json.Number:
			return v.String()
		}
	}
	return ""
}

func objectValue(v any) entity.JSON {
	if m, ok := v.(map[string]any); ok && len(m) > 0 {
		return entity.JSON(m)
	}
	return nil
}
