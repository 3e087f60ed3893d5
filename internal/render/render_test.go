// Copyright (c) 2025-2026 TÜMED
// SPDX-License-Identifier: GPL-3.0-or-later

package render

import (
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		contains string
		excludes string
	}{
		{
			name:     "bold",
			source:   "**kalın** metin",
			contains: "<strong>kalın</strong>",
		},
		{
			name:     "link",
			source:   "[dernek](https://tumed.org)",
			contains: `href="https://tumed.org"`,
		},
		{
			name:     "script stripped",
			source:   "metin <script>alert(1)</script>",
			excludes: "<script>",
		},
		{
			name:     "event handler stripped",
			source:   `<img src="x" onerror="alert(1)">`,
			excludes: "onerror",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(Markdown(tt.source))
			if tt.contains != "" {
				assert.Contains(t, got, tt.contains)
			}
			if tt.excludes != "" {
				assert.NotContains(t, got, tt.excludes)
			}
		})
	}
}

func TestTemplateFuncs_Truncate(t *testing.T) {
	r := &Renderer{}
	truncate := r.templateFuncs()["truncate"].(func(string, int) string)

	assert.Equal(t, "kısa", truncate("kısa", 10))
	// Rune-safe: Turkish characters are not split mid-byte.
	assert.Equal(t, "çğışö...", truncate("çğışöü ve devamı", 5))
}

func testTemplatesFS() fstest.MapFS {
	return fstest.MapFS{
		"layouts/base.html": &fstest.MapFile{Data: []byte(
			`{{define "base"}}<html><body>{{block "content" .}}{{end}}</body></html>{{end}}`)},
		"layouts/admin.html": &fstest.MapFile{Data: []byte(
			`{{define "content"}}<div class="admin">{{block "admin-content" .}}{{end}}</div>{{end}}`)},
		"public/list.html": &fstest.MapFile{Data: []byte(
			`{{define "content"}}<h1>{{.Title}}</h1>{{end}}`)},
		"admin/panel.html": &fstest.MapFile{Data: []byte(
			`{{define "admin-content"}}<p>{{.Title}}</p>{{end}}`)},
	}
}

func TestRender(t *testing.T) {
	r, err := New(Config{TemplatesFS: testTemplatesFS()})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)

	err = r.Render(w, req, "public/list", TemplateData{Title: "Faaliyetler", Lang: "tr"})
	require.NoError(t, err)
	assert.Contains(t, w.Body.String(), "<h1>Faaliyetler</h1>")
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
}

func TestRender_AdminLayoutNesting(t *testing.T) {
	r, err := New(Config{TemplatesFS: testTemplatesFS()})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/admin", nil)

	err = r.Render(w, req, "admin/panel", TemplateData{Title: "Panel", Lang: "tr"})
	require.NoError(t, err)

	body := w.Body.String()
	assert.True(t, strings.Contains(body, `<div class="admin"><p>Panel</p></div>`), "admin page should render inside the admin layout, got: %s", body)
}

func TestRender_UnknownTemplate(t *testing.T) {
	r, err := New(Config{TemplatesFS: testTemplatesFS()})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)

	err = r.Render(w, req, "public/missing", TemplateData{})
	assert.Error(t, err)
}
