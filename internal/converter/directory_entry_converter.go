package converter

import (
	"medical-directory-admin/internal/delivery/dto"
	"medical-directory-admin/internal/service"
)

// EnrichedEntryToResponse converts an enriched entry to DirectoryEntryResponse DTO
func EnrichedEntryToResponse(enriched service.EnrichedEntry) dto.DirectoryEntryResponse {
	entry := enriched.Entry
	metadata := enriched.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	return dto.DirectoryEntryResponse{
		ID:        entry.ID,
		AccountID: entry.AccountID,
		Role:      string(entry.Role),
		Name:      entry.Name,
		Email:     entry.Email,
		Phone:     entry.Phone,
		Region:    entry.Region,
		SubRegion: entry.SubRegion,
		AvatarURL: entry.AvatarURL,
		Bio:       entry.Bio,
		Status:    string(entry.Status),
		Metadata:  metadata,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}
}

// EnrichedEntriesToResponses converts a slice of enriched entries to DirectoryEntryResponse DTOs
func EnrichedEntriesToResponses(enriched []service.EnrichedEntry) []dto.DirectoryEntryResponse {
	responses := make([]dto.DirectoryEntryResponse, len(enriched))
	for i, e := range enriched {
		responses[i] = EnrichedEntryToResponse(e)
	}
	return responses
}

// AvatarPayloadToUpload converts the optional avatar of a request
func AvatarPayloadToUpload(payload *dto.AvatarPayload) *service.AvatarUpload {
	if payload == nil {
		return nil
	}
	return &service.AvatarUpload{
		FileName:    payload.FileName,
		ContentType: payload.ContentType,
		Content:     payload.Content,
	}
}
