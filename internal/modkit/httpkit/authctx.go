package httpkit

import (
	"net/http"

	perrs "inkwell/internal/platform/errors"
	pnet "inkwell/internal/platform/net"

	"github.com/google/uuid"
)

// User returns the scoped journal owner id from the request context
func User(r *http.Request) (string, error) {
	uid := pnet.UserID(r.Context())
	if uid == "" {
		return "", perrs.Unauthorizedf("missing user scope")
	}
	return uid, nil
}

// MustUser returns the scoped journal owner id or panics
// only use on routes behind the user scope middleware
func MustUser(r *http.Request) string {
	uid, err := User(r)
	if err != nil {
		panic(err)
	}
	return uid
}

// UserUUID returns the scoped journal owner id parsed as a uuid
func UserUUID(r *http.Request) (uuid.UUID, error) {
	raw, err := User(r)
	if err != nil {
		return uuid.Nil, err
	}
	uid, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, perrs.Unauthorizedf("malformed user scope")
	}
	return uid, nil
}
