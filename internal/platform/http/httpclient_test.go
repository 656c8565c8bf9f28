package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Timeout(t *testing.T) {
	t.Parallel()

	c := NewHTTPClient(7*time.Second, "")

	assert.Equal(t, 7*time.Second, c.Timeout)
	_, ok := c.Transport.(*http.Transport)
	assert.True(t, ok, "transport should not be wrapped when userAgent is empty")
}

func TestNewHTTPClient_UserAgent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		reqUA    string
		expectUA string
		clientUA string
	}{
		{
			name:     "default user agent is applied",
			clientUA: "kabu-app/1.0",
			expectUA: "kabu-app/1.0",
		},
		{
			name:     "explicit request header wins",
			clientUA: "kabu-app/1.0",
			reqUA:    "custom/2.0",
			expectUA: "custom/2.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := make(chan string, 1)
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got <- r.Header.Get("User-Agent")
				w.WriteHeader(http.StatusNoContent)
			}))
			defer server.Close()

			c := NewHTTPClient(time.Second, tt.clientUA)
			req, err := http.NewRequest(http.MethodGet, server.URL, nil)
			require.NoError(t, err)
			if tt.reqUA != "" {
				req.Header.Set("User-Agent", tt.reqUA)
			}

			res, err := c.Do(req)
			require.NoError(t, err)
			_ = res.Body.Close()

			assert.Equal(t, tt.expectUA, <-got)
		})
	}
}
