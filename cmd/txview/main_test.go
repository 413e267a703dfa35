package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAPI(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/transactions", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[{"hash":"0xabc","from":"0x1","gasUsed":21000,"priorityFee":2000000000,"nonce":5,"type":"eip1559"}]`)
	})
	mux.HandleFunc("GET /api/inclusion-lists", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"message":"Inclusion list tracking is disabled"}`)
	})
	mux.HandleFunc("GET /api/transaction/{txHash}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"hash":"0xabc","clients":["geth"],"common":{"tx":{"nonce":5},"metadata":{}},"diff":{"tx":{},"metadata":{}}}`)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestRootCmd(t *testing.T) {
	color.NoColor = true
	srv := newAPI(t)

	tests := map[string]struct {
		args        []string
		contains    []string
		errContains string
	}{
		"default route": {
			args:     []string{"--api-url", srv.URL},
			contains: []string{"0xabc", "eip1559", "21000"},
		},
		"tx details": {
			args:     []string{"tx", "0xabc", "--api-url", srv.URL},
			contains: []string{"HASH", "nonce", "-- all clients agree --"},
		},
		"disabled inclusion lists": {
			args:        []string{"/inclusion-lists", "--api-url", srv.URL},
			errContains: "Inclusion list tracking is disabled",
		},
		"unknown route": {
			args:        []string{"/nope", "--api-url", srv.URL},
			errContains: `unknown route: "/nope"`,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			cmd := newRootCmd()
			cmd.SetArgs(test.args)
			cmd.SetOut(&out)
			cmd.SetErr(io.Discard)

			err := cmd.ExecuteContext(context.Background())
			if test.errContains != "" {
				require.ErrorContains(t, err, test.errContains)
				return
			}

			require.NoError(t, err)
			for _, s := range test.contains {
				assert.Contains(t, out.String(), s)
			}
		})
	}
}

func TestRender_Watch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls int
	var out bytes.Buffer
	err := render(ctx, &out, 1, func(ctx context.Context, w io.Writer) error {
		calls++
		if calls == 3 {
			cancel()
		}
		_, err := io.WriteString(w, "frame")
		return err
	})

	require.NoError(t, err)
	assert.GreaterOrEqual(t, calls, 3)
	assert.Contains(t, out.String(), "frame")
}
