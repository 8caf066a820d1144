package http

import (
	"errors"
	"io"
	"io/fs"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/mind-engage/globoquiz/internal/storage"
)

// GET /flag?name=sweden.svg
func FlagHandler(flags storage.BlobStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("name")
		rc, err := flags.Open(name)
		switch {
		case errors.Is(err, storage.ErrOutsideRoot):
			http.Error(w, "You cannot access files outside the flag folder.", http.StatusForbidden)
			return
		case storage.IsNotFound(err):
			http.Error(w, "not found: "+name, http.StatusNotFound)
			return
		case err != nil:
			http.Error(w, "could not read flag", http.StatusInternalServerError)
			return
		}
		defer rc.Close()

		w.Header().Set("Content-Type", contentType(name))
		_, _ = io.Copy(w, rc)
	}
}

func contentType(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == ".svg" {
		return "image/svg+xml; charset=UTF-8"
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// StaticHandler serves the embedded stylesheet and any other bundled assets
// from the site root.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
