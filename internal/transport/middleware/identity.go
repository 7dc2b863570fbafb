package middleware

import (
	"net/http"
	"strings"

	"github.com/TGiulio/nightlog/pkg/ctxutil"
)

// UserIDHeader names the requesting user. It is trusted as supplied; the
// service performs no authentication.
const UserIDHeader = "X-User-Id"

// Identity returns middleware that copies X-User-Id into the context.
// Requests without the header continue anonymously.
func Identity() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := strings.TrimSpace(r.Header.Get(UserIDHeader))
			if userID == "" {
				next.ServeHTTP(w, r)
				return
			}
			ctx := ctxutil.WithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
