package main

import (
	"bytes"
	"html/template"
	"io/fs"
	"strings"
	"testing"
	"time"

	"github.com/vistaarbengaluru/vistaar/internal/contact"
	"github.com/vistaarbengaluru/vistaar/internal/content"
	"github.com/vistaarbengaluru/vistaar/internal/models"
)

func parseTemplates(t *testing.T) *template.Template {
	t.Helper()
	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(templatesFiles, "templates/*.html")
	if err != nil {
		t.Fatalf("failed to parse templates: %v", err)
	}
	return tmpl
}

func TestIndexTemplate(t *testing.T) {
	tmpl := parseTemplates(t)
	notice := contact.MissingNotice

	var buf bytes.Buffer
	err := tmpl.ExecuteTemplate(&buf, "index.html", models.IndexPageData{
		Site:   content.Site(),
		Draft:  models.Draft{Name: "Asha <script>", Message: "Need a site"},
		Notice: &notice,
	})
	if err != nil {
		t.Fatalf("failed to render index: %v", err)
	}
	out := buf.String()

	for _, id := range content.SectionIDs {
		if !strings.Contains(out, `id="`+id+`"`) {
			t.Errorf("expected section %q in page", id)
		}
		if !strings.Contains(out, `data-nav="`+id+`"`) {
			t.Errorf("expected nav entry for %q", id)
		}
	}
	if strings.Count(out, "animate-on-scroll") < 10 {
		t.Error("expected reveal-on-scroll markers on content blocks")
	}
	if strings.Contains(out, "Asha <script>") {
		t.Error("draft values must be escaped")
	}
	if !strings.Contains(out, "Missing Information") {
		t.Error("expected notice to be rendered")
	}
	if !strings.Contains(out, "Need a site</textarea>") {
		t.Error("expected message draft to be kept in the form")
	}
}

func TestAdminTemplate(t *testing.T) {
	tmpl := parseTemplates(t)

	var buf bytes.Buffer
	err := tmpl.ExecuteTemplate(&buf, "admin.html", models.AdminPageData{
		Inquiries: []models.Inquiry{
			{ID: "1", Name: "Asha", Email: "asha@example.com", Message: "hi", Delivered: true, CreatedAt: time.Now()},
			{ID: "2", Name: "Ravi", Email: "ravi@example.com", Message: "hello", Error: "relay down", CreatedAt: time.Now()},
		},
		Stats: models.InboxStats{Total: 2, Failed: 1},
	})
	if err != nil {
		t.Fatalf("failed to render admin: %v", err)
	}
	if !strings.Contains(buf.String(), "Failed: relay down") {
		t.Error("expected failed delivery to be shown")
	}
}

func TestSimpleTemplates(t *testing.T) {
	tmpl := parseTemplates(t)

	cases := map[string]any{
		"error.html": nil,
		"login.html": map[string]string{"Error": "Invalid password"},
	}
	for name, data := range cases {
		var buf bytes.Buffer
		if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
			t.Errorf("failed to render %s: %v", name, err)
		}
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "login.html", nil); err != nil {
		t.Errorf("failed to render login without data: %v", err)
	}
}

func TestStaticFilesEmbedded(t *testing.T) {
	for _, name := range []string{"static/robots.txt", "static/css/site.css", "static/js/site.js", "static/images/favicon.svg"} {
		if _, err := fs.Stat(staticFiles, name); err != nil {
			t.Errorf("expected %s to be embedded: %v", name, err)
		}
	}
}
