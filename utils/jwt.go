package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/oussama1399/BookQuest/models"
)

// GenerateJWT mints an HS256 bearer token for the user, valid for 72
// hours.
func GenerateJWT(user *models.User, secret string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID.Hex(),
		"name": user.Name,
		"exp":  time.Now().Add(time.Hour * 72).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
