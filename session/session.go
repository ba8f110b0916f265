// Package session binds the authenticated user to the caller's cookie
// session and resolves the "current" path sentinel against it.
package session

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// CurrentSentinel is the path token that stands in for the session user.
const CurrentSentinel = "current"

const currentUserKey = "currentUser"

// BindCurrentUser stores the user id in the caller's session. Only the id is
// kept; handlers that need the full record look it up per request.
func BindCurrentUser(c *gin.Context, userID string) error {
	s := sessions.Default(c)
	s.Set(currentUserKey, userID)
	return s.Save()
}

// CurrentUserID returns the session-bound user id, if any
func CurrentUserID(c *gin.Context) (string, bool) {
	s := sessions.Default(c)
	v := s.Get(currentUserKey)
	userID, ok := v.(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// Clear destroys the caller's session
func Clear(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{Path: "/", MaxAge: -1})
	return s.Save()
}

// ResolveUserID maps a path-supplied user token to a concrete user id. A
// literal token passes through verbatim with no existence check; the
// sentinel requires a session-bound user and reports false without one.
func ResolveUserID(c *gin.Context, token string) (string, bool) {
	if token != CurrentSentinel {
		return token, true
	}
	return CurrentUserID(c)
}
