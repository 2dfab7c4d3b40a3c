package sessions

import (
	"context"
	"errors"
	"net/http"
)

// ErrNoCookie indicates the request carried no session cookie.
var ErrNoCookie = errors.New("no session cookie")

// FromRequest resolves the session identified by the request's cookie.
// Requests without the cookie return ErrNoCookie; unknown or expired keys
// return ErrNotFound.
func FromRequest(ctx context.Context, sys System, r *http.Request, cookieName string) (*Session, error) {
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return nil, ErrNoCookie
	}
	return sys.Find(ctx, cookie.Value)
}
