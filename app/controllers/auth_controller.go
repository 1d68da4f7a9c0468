package controllers

import (
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/app/services"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/config"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/auth"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/bind"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/middleware"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/response"
)

// AuthController handles registration, login, and account self-service.
type AuthController struct {
	service *services.AuthService
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{service: services.NewAuthService(db)}
}

// setSessionCookie writes the JWT as an HttpOnly cookie with the same
// lifetime as the token. Clients may also send it as a Bearer header.
func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(auth.TokenTTL / time.Second),
		HttpOnly: true,
		Secure:   config.AppEnv() == "production",
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// Register creates a customer account and signs the caller in.
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var in services.RegisterInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, token, err := c.service.Register(in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	setSessionCookie(w, token)
	response.CreatedMessage(w, "Account created.", map[string]interface{}{
		"user":  user,
		"token": token,
	})
}

// Login verifies credentials and starts a session.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var in services.LoginInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, token, err := c.service.Login(in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	setSessionCookie(w, token)
	response.SuccessMessage(w, "Logged in.", map[string]interface{}{
		"user":  user,
		"token": token,
	})
}

// Logout clears the session cookie. The JWT itself stays valid until expiry.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w)
	response.SuccessMessage(w, "Logged out.", nil)
}

// Me returns the authenticated user's profile.
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromCtx(r)
	user, err := c.service.Profile(userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	response.Success(w, user)
}

// UpdateProfile applies contact-field changes to the caller's account.
func (c *AuthController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var in services.UpdateProfileInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	userID, _ := middleware.UserIDFromCtx(r)
	user, err := c.service.UpdateProfile(userID, in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	response.SuccessMessage(w, "Profile updated.", user)
}

// ChangeEmail updates the account email after password re-verification.
func (c *AuthController) ChangeEmail(w http.ResponseWriter, r *http.Request) {
	var in services.ChangeEmailInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	userID, _ := middleware.UserIDFromCtx(r)
	user, err := c.service.ChangeEmail(userID, in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	response.SuccessMessage(w, "Email updated.", user)
}

// ChangePassword rotates the account password.
func (c *AuthController) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var in services.ChangePasswordInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	userID, _ := middleware.UserIDFromCtx(r)
	if err := c.service.ChangePassword(userID, in); err != nil {
		writeServiceError(w, r, err)
		return
	}
	response.SuccessMessage(w, "Password updated.", nil)
}
