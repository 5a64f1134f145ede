package infra

import "testing"

func TestLoadConfigRequiresStripeKey(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "")

	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error when STRIPE_SECRET_KEY is missing")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("PORT", "")
	t.Setenv("CHECKOUT_SUCCESS_URL", "")
	t.Setenv("CHECKOUT_CANCEL_URL", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port mismatch: got %q want %q", cfg.Port, "8080")
	}
	if cfg.SuccessURL != "http://localhost:5500/success.html" {
		t.Fatalf("SuccessURL mismatch: got %q", cfg.SuccessURL)
	}
	if cfg.CancelURL != "http://localhost:5500/cancel.html" {
		t.Fatalf("CancelURL mismatch: got %q", cfg.CancelURL)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "http://localhost:5500" {
		t.Fatalf("AllowedOrigins mismatch: %#v", cfg.AllowedOrigins)
	}
	if cfg.RateLimitPerMin != 30 {
		t.Fatalf("RateLimitPerMin mismatch: got %d want 30", cfg.RateLimitPerMin)
	}
}

func TestLoadConfigHonorsOverrides(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("CHECKOUT_SUCCESS_URL", "https://donate.example.com/thanks")
	t.Setenv("CHECKOUT_CANCEL_URL", "https://donate.example.com/cancelled")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://donate.example.com, https://www.example.com")
	t.Setenv("HTTP_READ_TIMEOUT_SECONDS", "5")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.SuccessURL != "https://donate.example.com/thanks" {
		t.Fatalf("SuccessURL mismatch: got %q", cfg.SuccessURL)
	}
	if cfg.CancelURL != "https://donate.example.com/cancelled" {
		t.Fatalf("CancelURL mismatch: got %q", cfg.CancelURL)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://www.example.com" {
		t.Fatalf("AllowedOrigins mismatch: %#v", cfg.AllowedOrigins)
	}
	if cfg.HTTPReadTimeout.Seconds() != 5 {
		t.Fatalf("HTTPReadTimeout mismatch: got %s", cfg.HTTPReadTimeout)
	}
}
