package auth

import (
	"net/http"
	"strconv"

	"github.com/gorilla/sessions"

	"github.com/ghuser/forgemart/pkg/httpx"
	"github.com/ghuser/forgemart/pkg/logger"
)

const sessionName = "forgemart_session"
const sessionStoreIDKey = "store_id"

// RequireAuth is a chi middleware that enforces store-operator authentication
// via session cookies. It reads the session cookie, extracts the StoreID, and
// injects it into the request context. Returns 401 Unauthorized if the session
// is missing, invalid, or lacks a valid store_id.
//
// After this middleware, handlers can safely call auth.StoreIDFromCtx(r.Context()).
func RequireAuth(store sessions.Store, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := store.Get(r, sessionName)
			if err != nil {
				log.WarnContext(r.Context(), "invalid session cookie", "error", err)
				httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
				return
			}

			storeIDStr, ok := session.Values[sessionStoreIDKey].(string)
			if !ok || storeIDStr == "" {
				log.WarnContext(r.Context(), "session missing store_id")
				httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
				return
			}

			storeID, err := strconv.ParseInt(storeIDStr, 10, 64)
			if err != nil || storeID <= 0 {
				log.WarnContext(r.Context(), "invalid store_id in session", "store_id", storeIDStr, "error", err)
				httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid session data"})
				return
			}

			ctx := WithStoreID(r.Context(), storeID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
