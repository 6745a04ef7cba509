// Package template renders the nginx reverse-proxy server block from an
// embedded Go template.
//
// Rendering is pure string substitution: the same (server name, proxy pass)
// pair always produces byte-identical output. No validation of the proxy URL
// is performed here; a malformed value surfaces later through nginx's own
// configuration test.
package template

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

//go:embed templates/*.tmpl
var templates embed.FS

// proxyTmpl is parsed once at startup; the embedded file is part of the
// binary, so a parse failure is a build defect, not a runtime condition.
var proxyTmpl = template.Must(template.ParseFS(templates, "templates/proxy.tmpl"))

// Data contains the values substituted into the server block.
type Data struct {
	ServerName string
	ProxyPass  string
}

// Render produces the nginx server block for the given server name and
// upstream target. It has no side effects.
func Render(serverName, proxyPass string) (string, error) {
	data := Data{
		ServerName: serverName,
		ProxyPass:  proxyPass,
	}

	var buf bytes.Buffer
	if err := proxyTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}

	return buf.String(), nil
}
