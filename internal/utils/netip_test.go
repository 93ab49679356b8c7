package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remote     string
		headers    map[string]string
		trustProxy bool
		want       string
	}{
		{"remote addr", "10.0.0.1:4000", nil, false, "10.0.0.1"},
		{"headers ignored without trust", "10.0.0.1:4000", map[string]string{"X-Forwarded-For": "1.2.3.4"}, false, "10.0.0.1"},
		{"cloudflare first", "10.0.0.1:4000", map[string]string{"CF-Connecting-IP": "5.5.5.5", "X-Forwarded-For": "1.2.3.4"}, true, "5.5.5.5"},
		{"left-most forwarded", "10.0.0.1:4000", map[string]string{"X-Forwarded-For": "1.2.3.4, 9.9.9.9"}, true, "1.2.3.4"},
		{"real ip", "10.0.0.1:4000", map[string]string{"X-Real-IP": "7.7.7.7"}, true, "7.7.7.7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, ClientIP(r, tt.trustProxy))
		})
	}
}

func TestIPMatcher(t *testing.T) {
	m := NewIPMatcher([]string{"10.0.0.0/8", " 127.0.0.1 ", "garbage", "::1"})

	assert.False(t, m.IsEmpty())
	assert.True(t, m.Allow("10.20.30.40"))
	assert.True(t, m.Allow("127.0.0.1"))
	assert.True(t, m.Allow("::1"))
	assert.True(t, m.Allow("::ffff:10.0.0.5"))
	assert.False(t, m.Allow("127.0.0.2"))
	assert.False(t, m.Allow("not-an-ip"))

	assert.True(t, NewIPMatcher(nil).IsEmpty())
}
