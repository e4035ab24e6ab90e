package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"http": map[string]any{
			"rateLimit": map[string]any{
				"requestsPerSecond": 5,
			},
		},
		"bootstrapAdmin": map[string]any{
			"email": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "HTTP_RATELIMIT_REQUESTSPERSECOND", want: "http.rateLimit.requestsPerSecond"},
		{envKey: "BOOTSTRAPADMIN_EMAIL", want: "bootstrapAdmin.email"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestConfig_StrictPasswords(t *testing.T) {
	strict, relaxed := true, false

	tests := []struct {
		name   string
		env    string
		policy *PasswordPolicyConfig
		want   bool
	}{
		{name: "production defaults to strict", env: "production", want: true},
		{name: "development defaults to relaxed", env: "development", want: false},
		{name: "explicit strict in development", env: "development", policy: &PasswordPolicyConfig{Strict: &strict}, want: true},
		{name: "explicit relaxed in production", env: "production", policy: &PasswordPolicyConfig{Strict: &relaxed}, want: false},
		{name: "nil strict falls back to env", env: "prod", policy: &PasswordPolicyConfig{}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{PasswordPolicy: tt.policy}
			cfg.Env.Env = tt.env

			if got := cfg.StrictPasswords(); got != tt.want {
				t.Fatalf("StrictPasswords() = %v, want %v", got, tt.want)
			}
		})
	}
}
