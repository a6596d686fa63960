// Package routes groups the API endpoints into registrars. Each registrar
// returns a handler whose patterns are relative to the prefix it is mounted
// at with Mount.
package routes

import (
	"net/http"
	"strings"
)

type Guard func(http.Handler) http.Handler

// Mount serves h for prefix and everything below it, with prefix removed from
// the request path. The bare prefix is presented to h as "/".
func Mount(mux *http.ServeMux, prefix string, h http.Handler) {
	prefix = strings.TrimSuffix(prefix, "/")
	strip := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, prefix)
		if path == "" {
			path = "/"
		}
		inner := r.Clone(r.Context())
		inner.URL.Path = path
		inner.URL.RawPath = ""
		h.ServeHTTP(w, inner)
	})
	mux.Handle(prefix, strip)
	mux.Handle(prefix+"/", strip)
}

func guarded(guard Guard, h http.HandlerFunc) http.Handler {
	if guard == nil {
		return h
	}
	return guard(h)
}
