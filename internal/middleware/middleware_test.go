package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/emptypb"
)

type observation struct {
	method, name, code string
	status             int
}

type fakeObserver struct {
	mu  sync.Mutex
	got []observation
}

func (f *fakeObserver) ObserveRPC(procedure, code string, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.got = append(f.got, observation{name: procedure, code: code})
}

func (f *fakeObserver) ObserveHTTP(method, route string, status int, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.got = append(f.got, observation{method: method, name: route, status: status})
}

func TestMetricsInterceptor(t *testing.T) {
	obs := &fakeObserver{}
	interceptors := connect.WithInterceptors(MetricsInterceptor(obs), LoggingInterceptor())

	mux := http.NewServeMux()
	mux.Handle("/test.v1.Ping/Ok", connect.NewUnaryHandler("/test.v1.Ping/Ok",
		func(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[emptypb.Empty], error) {
			return connect.NewResponse(&emptypb.Empty{}), nil
		}, interceptors))
	mux.Handle("/test.v1.Ping/Missing", connect.NewUnaryHandler("/test.v1.Ping/Missing",
		func(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[emptypb.Empty], error) {
			return nil, connect.NewError(connect.CodeNotFound, errors.New("expense not found"))
		}, interceptors))

	server := httptest.NewServer(mux)
	defer server.Close()

	ok := connect.NewClient[emptypb.Empty, emptypb.Empty](http.DefaultClient, server.URL+"/test.v1.Ping/Ok")
	_, err := ok.CallUnary(context.Background(), connect.NewRequest(&emptypb.Empty{}))
	require.NoError(t, err)

	missing := connect.NewClient[emptypb.Empty, emptypb.Empty](http.DefaultClient, server.URL+"/test.v1.Ping/Missing")
	_, err = missing.CallUnary(context.Background(), connect.NewRequest(&emptypb.Empty{}))
	require.Equal(t, connect.CodeNotFound, connect.CodeOf(err))

	assert.Equal(t, []observation{
		{name: "/test.v1.Ping/Ok", code: "ok"},
		{name: "/test.v1.Ping/Missing", code: "not_found"},
	}, obs.got)
}

func TestHTTPMetrics(t *testing.T) {
	obs := &fakeObserver{}

	r := chi.NewRouter()
	r.Use(HTTPMetrics(obs))
	r.Get("/api/expenses/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Get("/api/balances", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{}"))
	})

	for _, path := range []string{"/api/expenses/abc", "/api/balances", "/nowhere"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, []observation{
		{method: "GET", name: "/api/expenses/{id}", status: 404},
		{method: "GET", name: "/api/balances", status: 200},
		{method: "GET", name: "unmatched", status: 404},
	}, obs.got)
}

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	tests := []struct {
		name       string
		origin     string
		method     string
		wantOrigin string
		wantStatus int
	}{
		{name: "default origin", origin: "", method: http.MethodGet, wantOrigin: "*", wantStatus: http.StatusTeapot},
		{name: "configured origin", origin: "http://localhost:3000", method: http.MethodGet, wantOrigin: "http://localhost:3000", wantStatus: http.StatusTeapot},
		{name: "preflight short-circuits", origin: "", method: http.MethodOptions, wantOrigin: "*", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			CORS(tt.origin)(next).ServeHTTP(rec, httptest.NewRequest(tt.method, "/api/expenses", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "DELETE")
		})
	}
}

func TestHTTPLogging_PassesThrough(t *testing.T) {
	handler := HTTPLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/expenses", nil))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var lines []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		var line map[string]any
		require.NoError(t, dec.Decode(&line))
		lines = append(lines, line)
	}
	return lines
}

func TestHTTPLogging_RequestID(t *testing.T) {
	var seen string
	handler := HTTPLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = chimw.GetReqID(r.Context())
	}))

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/balances", nil))
		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(chimw.RequestIDHeader))
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/balances", nil)
		req.Header.Set(chimw.RequestIDHeader, "req-42")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, "req-42", seen)
		assert.Equal(t, "req-42", rec.Header().Get(chimw.RequestIDHeader))
	})
}

func TestLoggingInterceptor_Fields(t *testing.T) {
	buf := captureLogs(t)
	interceptors := connect.WithInterceptors(LoggingInterceptor())

	mux := http.NewServeMux()
	mux.Handle("/test.v1.Ping/Ok", connect.NewUnaryHandler("/test.v1.Ping/Ok",
		func(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[emptypb.Empty], error) {
			return connect.NewResponse(&emptypb.Empty{}), nil
		}, interceptors))
	mux.Handle("/test.v1.Ping/Bad", connect.NewUnaryHandler("/test.v1.Ping/Bad",
		func(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[emptypb.Empty], error) {
			return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("id is required"))
		}, interceptors))
	mux.Handle("/test.v1.Ping/Broken", connect.NewUnaryHandler("/test.v1.Ping/Broken",
		func(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[emptypb.Empty], error) {
			return nil, errors.New("disk full")
		}, interceptors))

	server := httptest.NewServer(HTTPLogging(mux))
	for _, name := range []string{"Ok", "Bad", "Broken"} {
		client := connect.NewClient[emptypb.Empty, emptypb.Empty](http.DefaultClient, server.URL+"/test.v1.Ping/"+name)
		req := connect.NewRequest(&emptypb.Empty{})
		req.Header().Set(chimw.RequestIDHeader, "req-"+name)
		_, _ = client.CallUnary(context.Background(), req)
	}
	// Close waits for in-flight handlers, so every log line is written.
	server.Close()

	byMsg := map[string]map[string]any{}
	for _, line := range logLines(t, buf) {
		if _, ok := line["procedure"]; ok {
			byMsg[line["msg"].(string)] = line
		}
	}

	require.Contains(t, byMsg, "RPC ok")
	assert.Equal(t, "/test.v1.Ping/Ok", byMsg["RPC ok"]["procedure"])
	assert.Equal(t, "req-Ok", byMsg["RPC ok"]["request_id"])
	assert.Equal(t, connect.ProtocolConnect, byMsg["RPC ok"]["protocol"])

	require.Contains(t, byMsg, "RPC rejected")
	assert.Equal(t, "WARN", byMsg["RPC rejected"]["level"])
	assert.Equal(t, "invalid_argument", byMsg["RPC rejected"]["code"])
	assert.Equal(t, "req-Bad", byMsg["RPC rejected"]["request_id"])

	require.Contains(t, byMsg, "RPC failed")
	assert.Equal(t, "ERROR", byMsg["RPC failed"]["level"])
	assert.Equal(t, "unknown", byMsg["RPC failed"]["code"])
	assert.Equal(t, "req-Broken", byMsg["RPC failed"]["request_id"])
}
