package response

import (
	"time"

	"github.com/marcos-nsantos/avatar-service/internal/domain/entity"
	"github.com/marcos-nsantos/avatar-service/internal/usecase/avatar"
)

type AvatarResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	URL       string    `json:"url"`
	Key       string    `json:"key"`
	MimeType  string    `json:"mime_type"`
	Size      int64     `json:"size"`
	UpdatedAt time.Time `json:"updated_at"`
}

func AvatarFromEntity(a *entity.Avatar) AvatarResponse {
	return AvatarResponse{
		ID:        a.ID.String(),
		UserID:    a.UserID.String(),
		URL:       a.URL,
		Key:       a.Key,
		MimeType:  a.MimeType,
		Size:      a.Size,
		UpdatedAt: a.UpdatedAt,
	}
}

type UploadResponse struct {
	Avatar AvatarResponse `json:"avatar"`
	URL    string         `json:"url"`
}

func UploadResultToResponse(result *avatar.UploadResult) UploadResponse {
	return UploadResponse{
		Avatar: AvatarFromEntity(result.Avatar),
		URL:    result.URL,
	}
}

type ReconcileResponse struct {
	Success bool   `json:"success"`
	Removed int    `json:"removed"`
	Error   string `json:"error,omitempty"`
}

func ReconcileResultToResponse(result avatar.ReconcileResult) ReconcileResponse {
	resp := ReconcileResponse{
		Success: result.Success,
		Removed: result.Removed,
	}
	if result.Err != nil {
		resp.Error = result.Err.Error()
	}
	return resp
}
