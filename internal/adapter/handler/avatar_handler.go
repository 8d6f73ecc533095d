package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/avatar-service/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/avatar-service/internal/domain"
	"github.com/marcos-nsantos/avatar-service/internal/domain/valueobject"
	"github.com/marcos-nsantos/avatar-service/internal/pkg/apperror"
	"github.com/marcos-nsantos/avatar-service/internal/pkg/httputil"
)

const maxUploadSize = 10 << 20 // 10MB

type AvatarHandler struct {
	avatarSvc AvatarService
}

func NewAvatarHandler(avatarSvc AvatarService) *AvatarHandler {
	return &AvatarHandler{avatarSvc: avatarSvc}
}

// Upload accepts a multipart form with a single "file" field. The
// claimed content type is passed through as-is; the pipeline corrects
// it rather than rejecting mismatches here.
func (h *AvatarHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		httputil.HandleError(c, apperror.BadRequest("file is required"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		httputil.HandleError(c, apperror.BadRequest("could not read file"))
		return
	}

	userID := httputil.GetUserID(c)

	result, err := h.avatarSvc.Upload(c.Request.Context(), userID, valueobject.SourceFile{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		httputil.HandleError(c, uploadError(err))
		return
	}

	httputil.Created(c, response.UploadResultToResponse(result))
}

func uploadError(err error) error {
	switch {
	case errors.Is(err, domain.ErrAuthenticationFailed), errors.Is(err, domain.ErrNotAuthenticated):
		return apperror.Unauthorized(err.Error())
	case errors.Is(err, domain.ErrForbidden):
		return apperror.Forbidden("access denied")
	case errors.Is(err, domain.ErrPublicURLUnavailable):
		return apperror.New("URL_UNAVAILABLE", "failed to get public url", http.StatusBadGateway)
	default:
		return apperror.Internal(err)
	}
}

// Reconcile prunes the caller's superseded avatar objects. The result
// is always 200: reconciliation is best-effort and a soft failure is
// reported in the body, not as an HTTP error.
func (h *AvatarHandler) Reconcile(c *gin.Context) {
	userID := httputil.GetUserID(c)

	result := h.avatarSvc.Reconcile(c.Request.Context(), userID)

	httputil.OK(c, response.ReconcileResultToResponse(result))
}

func (h *AvatarHandler) Current(c *gin.Context) {
	userID := httputil.GetUserID(c)

	avatar, err := h.avatarSvc.Current(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrAvatarNotFound) {
			httputil.HandleError(c, apperror.NotFound("avatar"))
			return
		}
		httputil.HandleError(c, apperror.Internal(err))
		return
	}

	httputil.OK(c, response.AvatarFromEntity(avatar))
}
