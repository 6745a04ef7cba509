package template

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name       string
		serverName string
		proxyPass  string
	}{
		{
			name:       "typical site",
			serverName: "example.com",
			proxyPass:  "http://localhost:3002",
		},
		{
			name:       "subdomain with high port",
			serverName: "app.staging.example.org",
			proxyPass:  "http://127.0.0.1:8443",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, err := Render(tt.serverName, tt.proxyPass)
			if err != nil {
				t.Fatalf("Render failed: %v", err)
			}

			if !strings.Contains(content, "server_name "+tt.serverName+";") {
				t.Errorf("output missing server_name directive for %s", tt.serverName)
			}

			// Both the root location and the static-asset location proxy
			// to the same upstream.
			if got := strings.Count(content, "proxy_pass "+tt.proxyPass+";"); got != 2 {
				t.Errorf("expected 2 proxy_pass directives for %s, got %d", tt.proxyPass, got)
			}

			if !strings.Contains(content, "listen 80;") {
				t.Error("output missing listen directive")
			}
		})
	}
}

func TestRender_ForwardingHeaders(t *testing.T) {
	content, err := Render("example.com", "http://localhost:3000")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	headers := []string{
		"proxy_set_header Host $host;",
		"proxy_set_header X-Real-IP $remote_addr;",
		"proxy_set_header X-Forwarded-For $proxy_add_x_forwarded_for;",
		"proxy_set_header X-Forwarded-Proto $scheme;",
	}
	for _, h := range headers {
		if !strings.Contains(content, h) {
			t.Errorf("output missing header directive %q", h)
		}
	}

	if !strings.Contains(content, "proxy_cache_use_stale error timeout http_500 http_502 http_503 http_504;") {
		t.Error("output missing stale-cache directive")
	}
	if !strings.Contains(content, "proxy_cache_bypass $http_upgrade;") {
		t.Error("output missing cache-bypass directive")
	}
	if !strings.Contains(content, "location /_next/static/ {") {
		t.Error("output missing static-asset location")
	}
	if !strings.Contains(content, "proxy_cache_valid 60m;") {
		t.Error("output missing cache-valid directive")
	}
}

func TestRender_Deterministic(t *testing.T) {
	first, err := Render("example.com", "http://localhost:3002")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	second, err := Render("example.com", "http://localhost:3002")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if first != second {
		t.Error("same inputs must produce byte-identical output")
	}
}
