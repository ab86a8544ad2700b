package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"studyhive/internal/repository"
	"studyhive/internal/store"

	"github.com/gin-gonic/gin"
)

type upstreamCall struct {
	Method string
	Path   string
	Query  string
	Body   string
}

type fakeUpstream struct {
	mu      sync.Mutex
	calls   []upstreamCall
	handler http.HandlerFunc
}

func (f *fakeUpstream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.calls = append(f.calls, upstreamCall{Method: r.Method, Path: r.URL.Path, Query: r.URL.RawQuery, Body: string(body)})
	f.mu.Unlock()
	f.handler(w, r)
}

func (f *fakeUpstream) Calls() []upstreamCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]upstreamCall, len(f.calls))
	copy(out, f.calls)
	return out
}

// newTestAPI wires the API routes against a fake row-store, the same
// shape the router mounts in production.
func newTestAPI(t *testing.T, upstream http.HandlerFunc) (*gin.Engine, *fakeUpstream) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fake := &fakeUpstream{handler: upstream}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)
	client := store.New(srv.URL, "test-key")

	r := gin.New()
	api := r.Group("/api")

	settings := NewSettingsHandler(repository.NewSettingRepository(client))
	api.GET("/settings", settings.Get)
	api.POST("/settings", settings.Save)

	slides := NewContentHandler("slides", repository.NewResource(client, "hero_slides", "order_num.asc"))
	api.GET("/slides", slides.List)
	api.POST("/slides", slides.Create)
	api.PUT("/slides/:id", slides.Update)
	api.DELETE("/slides/:id", slides.Delete)

	pricing := NewContentHandler("pricing", repository.NewPricingRepository(client))
	api.GET("/pricing", pricing.List)
	api.POST("/pricing", pricing.Create)

	contact := NewContactHandler(repository.NewContactRepository(client))
	api.GET("/contact", contact.List)
	api.POST("/contact", contact.Submit)

	admin := NewAdminHandler(repository.NewAdminRepository(client))
	api.POST("/admin/login", admin.Login)
	api.POST("/admin/change-password", admin.ChangePassword)

	upload := NewUploadHandler(nil)
	api.POST("/admin/upload", upload.UploadImage)

	return r, fake
}

func respond(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}
}

func doJSON(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
