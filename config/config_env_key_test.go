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
		"secureLink": map[string]any{
			"defaultTtl": "168h",
		},
		"pubsub": map[string]any{
			"topicId": "",
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
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "SECURELINK_DEFAULTTTL", want: "secureLink.defaultTtl"},
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

func TestApplyDefaults_FillsStorefrontSections(t *testing.T) {
	cfg := &Config{SecureLink: &SecureLinkConfig{BaseURL: "https://doces.example/"}}

	applyDefaults(cfg)

	if cfg.Storage.URL != defaultStorageURL {
		t.Fatalf("storage url = %q, want %q", cfg.Storage.URL, defaultStorageURL)
	}
	if cfg.Storage.MaxUploadSize != defaultMaxUploadSize {
		t.Fatalf("max upload size = %d, want %d", cfg.Storage.MaxUploadSize, defaultMaxUploadSize)
	}
	if cfg.SecureLink.DefaultTTL != defaultSecureLinkTTL {
		t.Fatalf("default ttl = %s, want %s", cfg.SecureLink.DefaultTTL, defaultSecureLinkTTL)
	}
	if cfg.SecureLink.BaseURL != "https://doces.example" {
		t.Fatalf("base url = %q, want trailing slash trimmed", cfg.SecureLink.BaseURL)
	}
	if cfg.HTTP.MaxRequestBodySize != defaultMaxRequestBodySize {
		t.Fatalf("max body size = %q, want %q", cfg.HTTP.MaxRequestBodySize, defaultMaxRequestBodySize)
	}
}

func TestValidate_RequiresAdminAndSecrets(t *testing.T) {
	cfg := &Config{}
	if err := cfg.validate(); err == nil {
		t.Fatal("expected error when admin credentials are missing")
	}

	cfg.Admin = &AdminConfig{Username: "admin", Password: "s3cret!"}
	if err := cfg.validate(); err == nil {
		t.Fatal("expected error when secret keys are missing")
	}

	cfg.SecretKey.Access = "a"
	cfg.SecretKey.Refresh = "r"
	if err := cfg.validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
