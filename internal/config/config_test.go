package config

import (
	"testing"
	"time"
)

func TestRequireEnv(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		value     string
		wantPanic bool
	}{
		{name: "variable set", key: "TEST_VAR", value: "test_value"},
		{name: "variable not set", key: "TEST_VAR_MISSING", wantPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			if tt.wantPanic {
				defer func() {
					if r := recover(); r == nil {
						t.Errorf("requireEnv() should have panicked")
					}
				}()
			}

			result := requireEnv(tt.key)
			if !tt.wantPanic && result != tt.value {
				t.Errorf("requireEnv() = %v, want %v", result, tt.value)
			}
		})
	}
}

func TestParseList(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected []string
	}{
		{name: "empty", value: "", expected: nil},
		{name: "single value", value: "catalog.local", expected: []string{"catalog.local"}},
		{name: "multiple values", value: "a, b ,c", expected: []string{"a", "b", "c"}},
		{name: "quoted values and blanks", value: `"10.0.0.0/8", ,'127.0.0.1'`, expected: []string{"10.0.0.0/8", "127.0.0.1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := parseList(tt.value)
			if len(result) != len(tt.expected) {
				t.Fatalf("parseList() length = %v, want %v (%v)", len(result), len(tt.expected), result)
			}
			for i := range result {
				if result[i] != tt.expected[i] {
					t.Errorf("parseList()[%d] = %v, want %v", i, result[i], tt.expected[i])
				}
			}
		})
	}
}

func TestMustDuration(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		def      time.Duration
		expected time.Duration
	}{
		{name: "valid duration", value: "5s", def: time.Second, expected: 5 * time.Second},
		{name: "invalid duration uses default", value: "invalid", def: 10 * time.Second, expected: 10 * time.Second},
		{name: "missing variable uses default", value: "", def: 15 * time.Second, expected: 15 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_DURATION", tt.value)

			result := mustDuration("TEST_DURATION", tt.def)
			if result != tt.expected {
				t.Errorf("mustDuration() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestMustBool(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		def      bool
		expected bool
	}{
		{name: "true value", value: "true", def: false, expected: true},
		{name: "false value", value: "false", def: true, expected: false},
		{name: "invalid value uses default", value: "invalid", def: true, expected: true},
		{name: "missing variable uses default", value: "", def: false, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_BOOL", tt.value)

			result := mustBool("TEST_BOOL", tt.def)
			if result != tt.expected {
				t.Errorf("mustBool() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestLoadMemoryStore(t *testing.T) {
	t.Setenv("CATALOG_STORE", "Memory")
	t.Setenv("CATALOG_LISTEN_PORT", ":9090")
	t.Setenv("CATALOG_ALLOWED_CIDRS", "127.0.0.1, 10.0.0.0/8")

	cfg := Load()

	if cfg.Store != StoreMemory {
		t.Errorf("Store = %v, want %v", cfg.Store, StoreMemory)
	}
	if cfg.ListenPort != ":9090" {
		t.Errorf("ListenPort = %v, want :9090", cfg.ListenPort)
	}
	if len(cfg.AllowedCIDRS) != 2 {
		t.Errorf("AllowedCIDRS = %v, want 2 entries", cfg.AllowedCIDRS)
	}
	if cfg.RedisAddr != "" {
		t.Errorf("RedisAddr = %v, want empty for memory store", cfg.RedisAddr)
	}
}

func TestLoadRedisStore(t *testing.T) {
	t.Setenv("CATALOG_STORE", "redis")
	t.Setenv("CATALOG_REDIS_ADDR", "localhost:6379")
	t.Setenv("CATALOG_REDIS_PASSWORD", "secret")
	t.Setenv("CATALOG_REDIS_DB", "2")

	cfg := Load()

	if cfg.RedisAddr != "localhost:6379" {
		t.Errorf("RedisAddr = %v, want localhost:6379", cfg.RedisAddr)
	}
	if cfg.RedisDB != 2 {
		t.Errorf("RedisDB = %v, want 2", cfg.RedisDB)
	}
	if cfg.RedisConnectTimeout != 30*time.Second {
		t.Errorf("RedisConnectTimeout = %v, want 30s", cfg.RedisConnectTimeout)
	}
}

func TestLoadPanics(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "unknown store",
			env:  map[string]string{"CATALOG_STORE": "mongo"},
		},
		{
			name: "redis without address",
			env:  map[string]string{"CATALOG_STORE": "redis", "CATALOG_REDIS_ADDR": ""},
		},
		{
			name: "redis password required but empty",
			env: map[string]string{
				"CATALOG_STORE":                   "redis",
				"CATALOG_REDIS_ADDR":              "localhost:6379",
				"CATALOG_REDIS_PASSWORD":          "",
				"CATALOG_REDIS_PASSWORD_REQUIRED": "true",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			defer func() {
				if r := recover(); r == nil {
					t.Errorf("Load() should have panicked")
				}
			}()

			Load()
		})
	}
}
