package web

import (
	"bytes"
	"embed"
	"io/fs"
	"net/http"
	"time"

	"github.com/fedilists/list-manager/pkg/routes"
)

// DistServer returns a handler that serves built assets from the given
// embedded subdirectory under the given URL prefix.
func DistServer(distFS embed.FS, subdir, prefix string) http.HandlerFunc {
	sub, err := fs.Sub(distFS, subdir)
	if err != nil {
		return func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
	return http.StripPrefix(prefix, http.FileServer(http.FS(sub))).ServeHTTP
}

// PublicFile returns a handler serving a single embedded file by name.
func PublicFile(publicFS embed.FS, subdir, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := publicFS.ReadFile(subdir + "/" + name)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		http.ServeContent(w, r, name, time.Time{}, bytes.NewReader(data))
	}
}

// PublicFileRoutes returns GET routes for the named files in the embedded
// public directory, each served at /<name>.
func PublicFileRoutes(publicFS embed.FS, subdir string, names ...string) []routes.Route {
	rts := make([]routes.Route, 0, len(names))
	for _, name := range names {
		rts = append(rts, routes.Route{
			Method:  "GET",
			Pattern: "/" + name,
			Handler: PublicFile(publicFS, subdir, name),
		})
	}
	return rts
}

// ServeEmbeddedFile returns a handler that writes the given bytes with the
// given content type.
func ServeEmbeddedFile(data []byte, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	}
}
