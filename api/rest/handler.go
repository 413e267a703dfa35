package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
)

// binder is implemented by request types that read path or query values.
type binder interface {
	Bind(r *http.Request) error
}

// HandlerFunc is a typed handler. Returning an *Err sets the response status code, any
// other error is served as a 500.
type HandlerFunc[Req, Resp any] func(ctx context.Context, req *Req) (*Resp, error)

// RegisterFunc registers h on mux for the given method and pattern. The pattern follows
// http.ServeMux syntax, so wildcards like {txHash} are available to binders.
func RegisterFunc[Req, Resp any](logger *logrus.Logger, mux *http.ServeMux, method, pattern string, h HandlerFunc[Req, Resp]) {
	mux.HandleFunc(method+" "+pattern, func(w http.ResponseWriter, r *http.Request) {
		logger := logger.WithContext(r.Context()).WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
		})

		req := new(Req)
		if b, ok := any(req).(binder); ok {
			err := b.Bind(r)
			if err != nil {
				writeError(w, logger, pattern, err)
				return
			}
		}

		resp, err := h(r.Context(), req)
		if err != nil {
			writeError(w, logger, pattern, err)
			return
		}

		writeJSON(w, logger, pattern, http.StatusOK, resp)
	})
}

func writeError(w http.ResponseWriter, logger *logrus.Entry, pattern string, err error) {
	restErr := &Err{}
	if !errors.As(err, &restErr) {
		logger.WithError(err).Error("Unhandled error in http handler")
		restErr = NewErrf(http.StatusInternalServerError, "Internal server error")
	}

	writeJSON(w, logger, pattern, restErr.StatusCode, restErr)
}

func writeJSON(w http.ResponseWriter, logger *logrus.Entry, pattern string, statusCode int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		logger.WithError(err).Error("Failed to marshal http response")
		statusCode = http.StatusInternalServerError
		data = []byte(`{"message":"Internal server error"}`)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, err = w.Write(data)
	if err != nil {
		logger.WithError(err).Warn("Failed to write http response")
	}

	httpResponses.WithLabelValues(pattern, strconv.Itoa(statusCode)).Inc()
}
