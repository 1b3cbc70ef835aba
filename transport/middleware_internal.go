package transport

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/muhammadheryan/inventory-tracker/constant"
	"github.com/muhammadheryan/inventory-tracker/utils/errors"
)

// InternalMiddleware guards the warehouse intake endpoint invoked by
// receiving-dock systems with a static bearer key. An empty configured key
// disables the endpoint entirely.
func InternalMiddleware(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			presented := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if apiKey == "" || subtle.ConstantTimeCompare([]byte(presented), []byte(apiKey)) != 1 {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
