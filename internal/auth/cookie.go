package auth

import "net/http"

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "token"

// NewSessionCookie builds the session cookie for a freshly issued token.
// HttpOnly and SameSite=Strict always; Secure only in production.
func NewSessionCookie(token string, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(SessionTokenExpiry.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	}
}

// ClearSessionCookie builds an expired cookie that removes the session on the
// client. Logout has no server-side state to invalidate.
func ClearSessionCookie(secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	}
}
