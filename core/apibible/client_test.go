package apibible

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/openscripture/berea/core/cache"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	opts = append([]Option{WithBaseURL(srv.URL + "/v1/")}, opts...)
	return New("test-key", opts...)
}

func TestCall_DecodesEnvelope(t *testing.T) {
	var gotKey string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("api-key")
		w.Write([]byte(`{"data":[{"id":"niv","name":"New International Version"}]}`))
	})

	env := client.Call(context.Background(), "bibles", nil)
	if env == nil {
		t.Fatal("Call() = nil; want envelope")
	}
	if gotKey != "test-key" {
		t.Errorf("api-key header = %q; want %q", gotKey, "test-key")
	}

	var translations []TranslationData
	if err := env.Decode(&translations); err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if len(translations) != 1 || translations[0].ID != "niv" {
		t.Errorf("translations = %+v; want one entry with ID niv", translations)
	}
}

func TestCall_PassesParameters(t *testing.T) {
	var gotQuery url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"data":[]}`))
	})

	params := url.Values{}
	params.Set("include-chapters", "true")
	client.Call(context.Background(), "bibles/niv/books", params)

	if gotQuery.Get("include-chapters") != "true" {
		t.Errorf("include-chapters = %q; want %q", gotQuery.Get("include-chapters"), "true")
	}
}

func TestCall_FailureModes(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "bad http status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				w.Write([]byte(`{"data":{}}`))
			},
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`<html>gateway error</html>`))
			},
		},
		{
			name: "error envelope",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"statusCode":401,"error":"Unauthorized","message":"Invalid api token"}`))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, tt.handler)
			if env := client.Call(context.Background(), "bibles", nil); env != nil {
				t.Errorf("Call() = %+v; want nil", env)
			}
		})
	}
}

func TestCall_ConnectionRefused(t *testing.T) {
	client := New("test-key",
		WithBaseURL("http://127.0.0.1:1/v1/"),
		WithHTTPClient(&http.Client{Timeout: time.Second}))
	if env := client.Call(context.Background(), "bibles", nil); env != nil {
		t.Errorf("Call() = %+v; want nil", env)
	}
}

func TestCallAndCache_Memoizes(t *testing.T) {
	hits := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(`{"data":{"id":"niv"}}`))
	}, WithStore(cache.NewStore(cache.NewMemory(0), time.Minute)))

	for i := 0; i < 3; i++ {
		if env := client.CallAndCache(context.Background(), "bibles/niv", nil); env == nil {
			t.Fatal("CallAndCache() = nil; want envelope")
		}
	}
	if hits != 1 {
		t.Errorf("server hit %d times; want 1", hits)
	}
}

func TestCallAndCache_NoStoreCallsThrough(t *testing.T) {
	hits := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(`{"data":{}}`))
	})

	client.CallAndCache(context.Background(), "bibles", nil)
	client.CallAndCache(context.Background(), "bibles", nil)
	if hits != 2 {
		t.Errorf("server hit %d times; want 2", hits)
	}
}

func TestCallAndCache_FailureNotCachedForFullTTL(t *testing.T) {
	hits := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
		if hits == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"data":{"id":"niv"}}`))
	}, WithStore(cache.NewStore(cache.NewMemory(0), time.Hour)))

	if env := client.CallAndCache(context.Background(), "bibles/niv", nil); env != nil {
		t.Fatal("first call should fail")
	}
	// The failed result is cached with the short TTL only.
	time.Sleep(cache.ShortTTL + 50*time.Millisecond)
	if env := client.CallAndCache(context.Background(), "bibles/niv", nil); env == nil {
		t.Error("second call after short TTL should reach the server and succeed")
	}
	if hits != 2 {
		t.Errorf("server hit %d times; want 2", hits)
	}
}

func TestCall_MetaToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"id":"jhn.3.16","content":"<p/>"},"meta":{"fumsToken":"tok-123"}}`))
	})

	env := client.Call(context.Background(), "bibles/niv/passages/jhn.3.16", nil)
	if env == nil {
		t.Fatal("Call() = nil; want envelope")
	}
	if env.Meta == nil || env.Meta.FumsToken != "tok-123" {
		t.Errorf("Meta = %+v; want fumsToken tok-123", env.Meta)
	}
}
