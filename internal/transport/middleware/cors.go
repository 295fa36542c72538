package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/usergraph-backend/internal/config"
)

// CORS returns middleware that echoes allowed origins and answers preflight
// OPTIONS requests with 204. An allow list containing "*" accepts any origin.
func CORS(cfg config.CORSConfig) Middleware {
	allowed := newOriginSet(cfg.AllowedOrigins)
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			if origin := r.Header.Get("Origin"); origin != "" && allowed.has(origin) {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Add("Vary", "Origin")
				if cfg.AllowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method != http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
			h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
			h.Set("Access-Control-Max-Age", maxAge)
			w.WriteHeader(http.StatusNoContent)
		})
	}
}

type originSet struct {
	any     bool
	origins map[string]struct{}
}

func newOriginSet(list string) originSet {
	set := originSet{origins: make(map[string]struct{})}
	for _, o := range splitList(list) {
		if o == "*" {
			set.any = true
			continue
		}
		set.origins[o] = struct{}{}
	}
	return set
}

func (s originSet) has(origin string) bool {
	if s.any {
		return true
	}
	_, ok := s.origins[origin]
	return ok
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
