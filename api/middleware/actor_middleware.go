package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/soundhaven/soundhaven/api/controller"
	"github.com/soundhaven/soundhaven/domain"
)

const actorContextKey = "x-actor"

// ActorClaims is the token payload this service consumes. Tokens are
// issued elsewhere; here they are only verified and decoded.
type ActorClaims struct {
	IsSuperuser bool   `json:"su"`
	ArtistID    string `json:"artist_id,omitempty"`
	jwt.RegisteredClaims
}

// ActorMiddleware verifies the bearer token and stores the resolved
// domain.Actor on the gin context. Requests without a valid token are
// rejected; public read routes are mounted outside this middleware.
func ActorMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.Request.Header.Get("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			controller.ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing bearer token")
			c.Abort()
			return
		}

		actor, err := parseActor(parts[1], secret)
		if err != nil {
			controller.ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", err.Error())
			c.Abort()
			return
		}
		c.Set(actorContextKey, actor)
		c.Next()
	}
}

func parseActor(tokenString, secret string) (domain.Actor, error) {
	claims := &ActorClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return domain.Actor{}, fmt.Errorf("invalid token: %v", err)
	}
	if !token.Valid {
		return domain.Actor{}, fmt.Errorf("invalid token")
	}

	userID, err := primitive.ObjectIDFromHex(claims.Subject)
	if err != nil {
		return domain.Actor{}, fmt.Errorf("invalid subject in token")
	}
	actor := domain.Actor{ID: userID, IsSuperuser: claims.IsSuperuser}
	if claims.ArtistID != "" {
		artistID, err := primitive.ObjectIDFromHex(claims.ArtistID)
		if err != nil {
			return domain.Actor{}, fmt.Errorf("invalid artist id in token")
		}
		actor.ArtistID = &artistID
	}
	return actor, nil
}

// ActorFrom returns the actor stored by ActorMiddleware. The zero
// Actor and false mean the route was mounted without authentication.
func ActorFrom(c *gin.Context) (domain.Actor, bool) {
	v, ok := c.Get(actorContextKey)
	if !ok {
		return domain.Actor{}, false
	}
	actor, ok := v.(domain.Actor)
	return actor, ok
}
