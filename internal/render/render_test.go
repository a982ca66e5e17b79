package render

import (
	"io/fs"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pressroomdev/pressroom/internal/service"
	"github.com/pressroomdev/pressroom/internal/store"
	"github.com/pressroomdev/pressroom/web"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()

	templates, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		t.Fatalf("fs.Sub: %v", err)
	}

	r, err := New(Config{TemplatesFS: templates, IsDev: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func TestNew_ParsesAllTemplates(t *testing.T) {
	r := newTestRenderer(t)

	want := []string{
		"auth/login",
		"admin/posts",
		"admin/post_form",
		"admin/revisions",
		"frontend/home",
		"frontend/posts",
		"frontend/post",
	}
	for _, name := range want {
		if _, ok := r.templates[name]; !ok {
			t.Errorf("template %q not parsed", name)
		}
	}
}

func TestRender_FrontendHome(t *testing.T) {
	r := newTestRenderer(t)

	posts := []store.Post{
		{ID: 1, Title: "First Post", Slug: "first-post", UpdatedAt: time.Now()},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if err := r.Render(rec, req, "frontend/home", TemplateData{Title: "Home", Data: posts}); err != nil {
		t.Fatalf("Render: %v", err)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "First Post") {
		t.Error("rendered page missing post title")
	}
	if !strings.Contains(body, `href="/posts/first-post"`) {
		t.Error("rendered page missing post link")
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestRender_ErrorsShown(t *testing.T) {
	r := newTestRenderer(t)

	data := struct {
		Post        store.Post
		Form        service.PostInput
		ToPublishAt string
		Images      []store.Medium
		IsEdit      bool
		IsAdmin     bool
	}{Form: service.PostInput{Status: "draft"}}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/posts/new", nil)
	err := r.Render(rec, req, "admin/post_form", TemplateData{
		Title:  "New Post",
		Data:   data,
		Errors: []string{"Title is required.", "Content is required."},
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "Title is required.") || !strings.Contains(body, "Content is required.") {
		t.Error("validation errors not rendered")
	}
}

func TestRender_UnknownTemplate(t *testing.T) {
	r := newTestRenderer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if err := r.Render(rec, req, "admin/nope", TemplateData{}); err == nil {
		t.Error("Render with unknown template should fail")
	}
}
