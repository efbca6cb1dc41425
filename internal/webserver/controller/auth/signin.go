package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/svera/sitesearch/internal/cms"
)

// SessionCookie is the name of the cookie holding the session token
const SessionCookie = "session"

// Signs in a user and gives them a JWT.
func (a *Controller) SignIn(c *fiber.Ctx) error {
	user, err := a.repository.FindByUsername(c.FormValue("username"))
	if err != nil && !errors.Is(err, cms.ErrUserNotFound) {
		return fiber.ErrInternalServerError
	}

	// If username or password are incorrect, do not allow access.
	if errors.Is(err, cms.ErrUserNotFound) || user.Password != cms.Hash(c.FormValue("password")) {
		return c.Status(fiber.StatusUnauthorized).Render("auth/login", fiber.Map{
			"Title":            "Login",
			"Error":            "Wrong username or password",
			"DisableLoginLink": true,
		}, "layout")
	}

	// Send back JWT as a cookie.
	expiration := time.Now().Add(a.config.SessionTimeout)
	signedToken, err := GenerateToken(user, expiration, a.config.Secret)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    signedToken,
		Path:     "/",
		Expires:  expiration,
		Secure:   false,
		HTTPOnly: true,
	})

	return c.Redirect(fmt.Sprintf("/%s/resources", c.Params("lang")))
}

func GenerateToken(user cms.User, expiration time.Time, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userdata": cms.User{
			ID:       user.ID,
			Name:     user.Name,
			Username: user.Username,
			Uuid:     user.Uuid,
		},
		"exp": jwt.NewNumericDate(expiration),
	})

	return token.SignedString(secret)
}
