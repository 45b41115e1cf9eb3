// Package controllers maps HTTP requests onto the services.
package controllers

import (
	"net/http"

	"github.com/priyankmodi/storefront/app/models"
	"github.com/priyankmodi/storefront/app/services"
	"github.com/priyankmodi/storefront/pkg/bind"
	"github.com/priyankmodi/storefront/pkg/logger"
	"github.com/priyankmodi/storefront/pkg/response"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// Register handles POST /api/users/register.
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var body registerRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, token, err := c.service.Register(r.Context(), body.Name, body.Email, body.Password)
	if err != nil {
		response.Err(w, err)
		return
	}

	logger.WithCtx(r.Context()).Info("user registered", "user_id", user.ID.Hex())
	response.Created(w, authResponse{User: user, Token: token})
}

// Login handles POST /api/users/login.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, token, err := c.service.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		response.Err(w, err)
		return
	}

	response.JSON(w, authResponse{User: user, Token: token})
}
