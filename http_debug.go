package postcodesio

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// debugTransport provides detailed HTTP request/response logging for
// troubleshooting API communication problems: malformed requests, unexpected
// envelope shapes, timeouts. Every request is tagged with a generated
// X-Request-Id so the request and response dumps of one exchange can be
// correlated in interleaved logs.
//
// Enable it with the WithDebugLogging option, or set POSTCODESIO_DEBUG=true
// or DEBUG=true in the environment. Dumps include full bodies; keep it out of
// production logging.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	id := uuid.NewString()
	cloned := req.Clone(req.Context())
	cloned.Header.Set("X-Request-Id", id)

	if reqDump, err := httputil.DumpRequestOut(cloned, true); err == nil {
		log.Debug().Str("request_id", id).Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := dt.base.RoundTrip(cloned)
	if err != nil {
		log.Error().Err(err).Str("request_id", id).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("request_id", id).Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested checks if HTTP debug logging should be enabled via
// the environment. POSTCODESIO_DEBUG targets this client specifically; DEBUG
// is honoured as the broader development convention.
func debugLoggingRequested() bool {
	return os.Getenv("POSTCODESIO_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
