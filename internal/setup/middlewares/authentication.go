package middlewares

import (
	"net/http"
	"strings"

	"github.com/finsplit/finsplit-backend/internal/utils"
)

func VerifyAccessToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var authorization string
		if cookie, err := r.Cookie("__Secure-next-auth.session-token"); err == nil {
			authorization = cookie.Value
		} else if cookie, err := r.Cookie("next-auth.session-token"); err == nil {
			authorization = cookie.Value
		} else {
			http.Error(w, "Missing or invalid access token", http.StatusUnauthorized)
			return
		}

		if authorization == "" {
			http.Error(w, "Missing or invalid access token", http.StatusUnauthorized)
			return
		}

		authorization = strings.TrimPrefix(authorization, "Bearer ")

		claims, err := utils.NewCreateAccessTokenUtil().DecodeToken(authorization)

		if err != nil {
			http.Error(w, "Invalid or expired access token", http.StatusUnauthorized)
			return
		}

		subject, ok := subjectClaim(claims)
		if !ok {
			http.Error(w, "Invalid or expired access token", http.StatusUnauthorized)
			return
		}

		r.Header.Set("UserId", subject)

		next.ServeHTTP(w, r)
	})
}

// subjectClaim extracts the token subject; tokens that decrypt but carry
// no usable sub claim are rejected, not panicked on.
func subjectClaim(claims map[string]interface{}) (string, bool) {
	subject, ok := claims["sub"].(string)
	if !ok || subject == "" {
		return "", false
	}
	return subject, true
}
