package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/avatar-service/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/avatar-service/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/avatar-service/internal/domain"
	"github.com/marcos-nsantos/avatar-service/internal/pkg/apperror"
	"github.com/marcos-nsantos/avatar-service/internal/pkg/httputil"
	"github.com/marcos-nsantos/avatar-service/internal/usecase/auth"
)

type AuthHandler struct {
	authSvc AuthService
}

func NewAuthHandler(authSvc AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	user, err := h.authSvc.Register(c.Request.Context(), auth.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			httputil.HandleError(c, apperror.New("USER_EXISTS", "email already registered", http.StatusConflict))
			return
		}
		httputil.HandleError(c, apperror.Internal(err))
		return
	}

	httputil.Created(c, response.UserFromEntity(user))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	token, user, err := h.authSvc.Login(c.Request.Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			httputil.HandleError(c, apperror.New("INVALID_CREDENTIALS", "invalid email or password", http.StatusUnauthorized))
			return
		}
		httputil.HandleError(c, apperror.Internal(err))
		return
	}

	httputil.OK(c, response.LoginToResponse(token, user))
}
