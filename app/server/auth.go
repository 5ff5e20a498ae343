package server

import (
	"crypto/subtle"
	"net/http"

	"github.com/go-pkgz/rest"
	"golang.org/x/crypto/bcrypt"
)

// dummyHash is compared against when the user doesn't match, so both cases take the same time.
const dummyHash = "$2a$10$C615A0mfUEFBupj9qcqhiuBEyf60EqrsakB90CozUoSON8d2Dc1uS"

// NoopAuth passes requests through unchanged.
func NoopAuth(next http.Handler) http.Handler { return next }

// mutationAuth returns basic auth middleware for routes changing the theme, or NoopAuth if no
// password hash is configured.
func (s *Server) mutationAuth() func(http.Handler) http.Handler {
	if s.cfg.PasswordHash == "" {
		return NoopAuth
	}
	return rest.BasicAuth(func(user, passwd string) bool {
		return checkCredentials(s.cfg.AuthUser, s.cfg.PasswordHash, user, passwd)
	})
}

// checkCredentials verifies user and password against the expected user and bcrypt hash.
func checkCredentials(wantUser, hash, user, passwd string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(wantUser)) == 1
	hashToCheck := hash
	if !userOK {
		hashToCheck = dummyHash
	}
	// always run bcrypt comparison to prevent timing-based username enumeration
	err := bcrypt.CompareHashAndPassword([]byte(hashToCheck), []byte(passwd))
	return err == nil && userOK
}
