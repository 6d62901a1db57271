package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL(t *testing.T) {
	tests := []struct {
		name    string
		engine  Engine
		query   string
		want    string
		wantErr error
	}{
		{name: "baidu", engine: Baidu, query: "golang", want: "https://www.baidu.com/s?wd=golang"},
		{name: "bing escapes", engine: Bing, query: "a&b c", want: "https://www.bing.com/search?q=a%26b+c"},
		{name: "google unicode", engine: Google, query: "天气", want: "https://www.google.com/search?q=%E5%A4%A9%E6%B0%94"},
		{name: "sogou", engine: Sogou, query: "go", want: "https://www.sogou.com/web?query=go"},
		{name: "blank query", engine: Bing, query: "   ", wantErr: ErrEmptyQuery},
		{name: "unknown engine", engine: "duckduckgo", query: "go", wantErr: ErrUnknownEngine},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := URL(tt.engine, tt.query)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse(t *testing.T) {
	engine, err := Parse(" Google ")
	require.NoError(t, err)
	assert.Equal(t, Google, engine)

	_, err = Parse("yahoo")
	assert.ErrorIs(t, err, ErrUnknownEngine)
}

func TestEngines(t *testing.T) {
	engines := Engines()
	assert.Equal(t, []Engine{Baidu, Bing, Google, Sogou}, engines)
	for _, e := range engines {
		_, err := URL(e, "x")
		assert.NoError(t, err)
	}
}
