package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewSendsUserAgent(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := New(Options{UserAgent: "avail-test/1.0"})
	resp, err := client.R().SetContext(context.Background()).Get(srv.URL)
	require.NoError(t, err)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	require.Equal(t, "avail-test/1.0", got)
}

func TestNewDefaults(t *testing.T) {
	client := New(Options{})
	require.Equal(t, DefaultTimeout, client.GetClient().Timeout)

	client = New(Options{Timeout: 2 * time.Second})
	require.Equal(t, 2*time.Second, client.GetClient().Timeout)
}

func TestSetVersion(t *testing.T) {
	original := DefaultUserAgent
	t.Cleanup(func() { DefaultUserAgent = original })

	SetVersion("")
	require.Equal(t, original, DefaultUserAgent)

	SetVersion("1.2.3")
	require.Equal(t, "avail/1.2.3", DefaultUserAgent)
}
