package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribeUserAgent(t *testing.T) {
	tests := []struct {
		name     string
		ua       string
		contains []string
	}{
		{"desktop safari",
			"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Safari/605.1.15",
			[]string{"Safari on ", "Mac", "(desktop)"}},
		{"windows chrome",
			"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			[]string{"Chrome on ", "Windows", "(desktop)"}},
		{"iphone",
			"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1",
			[]string{"Safari on ", "(mobile)"}},
		{"android chrome",
			"Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Mobile Safari/537.36",
			[]string{"Chrome on ", "Android", "(mobile)"}},
		{"crawler",
			"Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)",
			[]string{"(bot)"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DescribeUserAgent(tt.ua)
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
		})
	}
}

func TestDescribeUserAgent_Empty(t *testing.T) {
	assert.NotEmpty(t, DescribeUserAgent(""))
}
