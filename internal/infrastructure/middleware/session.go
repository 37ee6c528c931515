package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/relief-map-backend/internal/domain/entity"
)

const (
	SessionKey      = "map_session"
	SessionHeader   = "X-Session-ID"
	ProfileHeader   = "X-Profile-ID"
	maxHeaderLength = 128
)

// Session attaches the browser session to the request. A missing session
// id is minted and echoed back so the client can keep using it.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionHeader)
		if len(sessionID) > maxHeaderLength {
			sessionID = ""
		}
		profileID := c.GetHeader(ProfileHeader)
		if len(profileID) > maxHeaderLength {
			profileID = ""
		}

		session := entity.NewMapSession(sessionID, profileID)
		c.Set(SessionKey, session)
		c.Header(SessionHeader, session.ID)
		c.Next()
	}
}
