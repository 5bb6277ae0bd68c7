package middleware

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"draftforge/internal/platform/logger"
)

type rawBodyKey struct{}

// rawBodyLimit bounds how much of a delivery we buffer for signature checks
const rawBodyLimit = 1 << 20

// RawBody buffers the request body and stashes the exact received bytes on
// the context before any JSON decoding touches them. Signature verification
// must run over these bytes; a parse-then-reserialize round trip is not
// equivalent
func RawBody() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body == nil {
				next.ServeHTTP(w, r)
				return
			}
			raw, err := io.ReadAll(io.LimitReader(r.Body, rawBodyLimit))
			if cerr := r.Body.Close(); cerr != nil {
				logger.C(r.Context()).Error().Err(cerr).Msg("failed to close request body")
			}
			if err != nil {
				logger.C(r.Context()).Error().Err(err).Msg("failed to buffer request body")
				http.Error(w, "unreadable body", http.StatusBadRequest)
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(raw))
			ctx := context.WithValue(r.Context(), rawBodyKey{}, raw)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RawBodyFrom returns the buffered body bytes, or nil when RawBody did not run
func RawBodyFrom(ctx context.Context) []byte {
	if b, ok := ctx.Value(rawBodyKey{}).([]byte); ok {
		return b
	}
	return nil
}
