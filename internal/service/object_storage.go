package service

//go:generate mockgen -source=object_storage.go -destination=mocks/object_storage_mock.go -package=mocks

import "context"

// ObjectStorage stores public binary objects such as avatars
type ObjectStorage interface {
	// Upload writes content at path, replacing any existing object, and returns its public URL.
	Upload(ctx context.Context, path string, content []byte, contentType string) (string, error)
	Remove(ctx context.Context, path string) error
}
