package auth

import (
	"net/http"
	"strings"

	"github.com/clerk/clerk-sdk-go/v2"
	"github.com/clerk/clerk-sdk-go/v2/jwt"
	"github.com/rs/zerolog/log"

	"github.com/codr1/Matchday/internal/api/apiutil"
)

// clerkInitialized indicates whether the Clerk SDK has been initialized
var clerkInitialized bool

// InitClerk initializes Clerk SDK with the secret key
func InitClerk(secretKey string) {
	if secretKey == "" {
		log.Warn().Msg("Clerk secret key not configured; write routes are open")
		clerkInitialized = false
		return
	}
	clerk.SetKey(secretKey)
	clerkInitialized = true
	log.Info().Msg("Clerk SDK initialized")
}

func Enabled() bool {
	return clerkInitialized
}

// sessionToken reads a bearer token, falling back to the Clerk session cookie.
func sessionToken(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	if cookie, err := r.Cookie("__session"); err == nil {
		return cookie.Value
	}
	return ""
}

// WithClerkSession is middleware that validates Clerk session tokens
// and adds session claims to the request context
func WithClerkSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !clerkInitialized {
			next.ServeHTTP(w, r)
			return
		}

		token := sessionToken(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		// Verify the session token
		claims, err := jwt.Verify(r.Context(), &jwt.VerifyParams{
			Token: token,
		})
		if err != nil {
			log.Ctx(r.Context()).Debug().Err(err).Msg("Invalid Clerk session token")
			next.ServeHTTP(w, r)
			return
		}

		ctx := clerk.ContextWithSessionClaims(r.Context(), claims)
		logger := log.Ctx(ctx).With().Str("clerk_user_id", claims.Subject).Logger()
		ctx = logger.WithContext(ctx)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireSession rejects requests without verified Clerk session claims.
// When Clerk is not configured every request is let through.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !clerkInitialized {
			next.ServeHTTP(w, r)
			return
		}
		claims, ok := clerk.SessionClaimsFromContext(r.Context())
		if !ok || claims == nil {
			log.Ctx(r.Context()).Warn().Str("path", r.URL.Path).Msg("Write denied: no session")
			if apiutil.IsJSONRequest(r) {
				_ = apiutil.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
				return
			}
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
