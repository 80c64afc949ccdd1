package rest

import (
	"log/slog"
	"mime"
	"net/http"
	"os"
	"path/filepath"
)

// pageDir serves fixed files from one directory with an explicit status.
type pageDir struct {
	dir string
	log *slog.Logger
}

// serve writes dir/name with status. A missing file degrades to fallback
// text so the status code still reaches the client.
func (p pageDir) serve(w http.ResponseWriter, r *http.Request, status int, name, fallback string) {
	data, err := os.ReadFile(filepath.Join(p.dir, name))
	if err != nil {
		p.log.WarnContext(r.Context(), "static page unavailable",
			slog.String("page", name),
			slog.String("error", err.Error()))
		writeText(w, status, fallback)
		return
	}

	ctype := mime.TypeByExtension(filepath.Ext(name))
	if ctype == "" {
		ctype = http.DetectContentType(data)
	}
	w.Header().Set("Content-Type", ctype)
	w.WriteHeader(status)
	w.Write(data) //nolint:errcheck
}
