package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/api"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
	"github.com/RoyceAzure/lab/shopcenter/internal/util"
)

type AuthHandler struct {
	authService service.IAuthService
}

func NewAuthHandler(authService service.IAuthService) *AuthHandler {
	if authService == nil {
		panic("authService cannot be nil")
	}
	return &AuthHandler{
		authService: authService,
	}
}

func convertUserModelToDTO(user *model.User) dto.UserDTO {
	return dto.UserDTO{
		UserID: user.UserID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   string(user.Role),
	}
}

// @Summary register new user
// @Tags auth
// @Accept json
// @Produce json
// @Param registerInfo body dto.RegisterDTO true "register info"
// @Success 201 {object} api.Response{data=dto.UserDTO} "created"
// @Failure 400 {object} api.ResponseError{} "invalid argument"
// @Failure 409 {object} api.ResponseError{} "email already registered"
// @Router /auth/register [post]
func (a *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var registerDTO dto.RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&registerDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, err, "invalid request body")
		return
	}

	ctx := r.Context()

	user, err := a.authService.Register(ctx, registerDTO.Name, registerDTO.Email, registerDTO.Password, registerDTO.Role)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	api.CreatedJSON(w, convertUserModelToDTO(user), nil)
}

// @Summary email and password login
// @Tags auth
// @Accept json
// @Produce json
// @Param loginInfo body dto.LoginDTO true "email and password"
// @Success 200 {object} api.Response{data=dto.LoginResponse} "success"
// @Failure 401 {object} api.ResponseError{} "invalid credentials"
// @Router /auth/login [post]
func (a *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var loginDTO dto.LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&loginDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, err, "invalid request body")
		return
	}

	ctx := r.Context()

	accessToken, payload, user, err := a.authService.Login(ctx, loginDTO.Email, loginDTO.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	api.SuccessJSON(w, dto.LoginResponse{
		AccessToken: dto.TokenInfo{
			Value:     accessToken,
			ExpiresIn: int(payload.ExpiredAt.Sub(payload.IssuedAt).Seconds()),
		},
		User: convertUserModelToDTO(user),
	}, nil)
}

// @Summary get current login user info
// @Tags auth
// @Produce json
// @Success 200 {object} api.Response{data=dto.UserDTO} "success"
// @Failure 401 {object} api.ResponseError{} "unauthenticated"
// @Security ApiKeyAuth
// @Router /auth/me [get]
func (a *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	payload := util.GetTokenPayloadFromContext(ctx)
	if payload == nil {
		api.ErrorJSON(w, http.StatusUnauthorized, errors.New("token is invalid"), "unauthenticated")
		return
	}

	user, err := a.authService.GetUser(ctx, payload.UserID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	api.SuccessJSON(w, convertUserModelToDTO(user), nil)
}
