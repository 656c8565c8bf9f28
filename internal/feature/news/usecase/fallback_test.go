package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFallback(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		wantLen int
		wantErr bool
	}{
		{
			name: "valid",
			in: `
- title: a
  description: b
  url: https://example.com
  source:
    name: s
`,
			wantLen: 1,
		},
		{name: "empty list", in: `[]`, wantErr: true},
		{name: "malformed", in: `- title: [`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := loadFallback([]byte(tt.in))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestEmbeddedFallbackParses(t *testing.T) {
	t.Parallel()

	articles, err := loadFallback(fallbackArticlesYAML)
	require.NoError(t, err)
	assert.Len(t, articles, 3)
	assert.Nil(t, articles[0].Author)
}
