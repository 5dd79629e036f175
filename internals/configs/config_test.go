// file: internals/configs/config_test.go
package configs

import "testing"

func TestLoadEnvFillsJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "rahasia-test")
	LoadEnv()
	if JWTSecret != "rahasia-test" {
		t.Errorf("JWTSecret = %q, want %q", JWTSecret, "rahasia-test")
	}
}

func TestGetEnvDefault(t *testing.T) {
	t.Setenv("SOME_SET_KEY", "nilai")
	if got := GetEnv("SOME_SET_KEY", "fallback"); got != "nilai" {
		t.Errorf("GetEnv set key = %q", got)
	}
	if got := GetEnv("SOME_UNSET_KEY_123", "fallback"); got != "fallback" {
		t.Errorf("GetEnv unset key = %q, want fallback", got)
	}
}
