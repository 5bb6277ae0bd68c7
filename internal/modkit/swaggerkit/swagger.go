// Package swaggerkit mounts swagger UI and the generated spec document
package swaggerkit

import (
	"net/http"

	phttp "draftforge/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/swaggo/swag/v2"
)

// Mount attaches /swagger/* when enabled. The spec document comes from the
// swag registry populated by generated docs; when absent the doc endpoint
// answers 404 and the UI still loads
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}

	r.Get("/swagger/doc.json", func(w http.ResponseWriter, _ *http.Request) {
		doc, err := swag.ReadDoc()
		if err != nil {
			http.Error(w, "no swagger doc registered", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(doc))
	})

	r.Handle("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
}
