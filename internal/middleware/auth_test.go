package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexedwards/scs/v2"

	"github.com/pressroomdev/pressroom/internal/model"
	"github.com/pressroomdev/pressroom/internal/store"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func requestWithOperator(role string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/admin/posts", nil)
	operator := store.Operator{ID: 7, Email: "op@example.com", Role: role}
	ctx := context.WithValue(r.Context(), ContextKeyOperator, operator)
	return r.WithContext(ctx)
}

func TestAuth_RedirectsWhenAnonymous(t *testing.T) {
	sm := scs.New()
	handler := sm.LoadAndSave(Auth(sm)(okHandler()))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/posts", nil))

	if rec.Code != http.StatusSeeOther {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Errorf("Location = %q, want /login", loc)
	}
}

func TestRequireRole(t *testing.T) {
	testCases := []struct {
		name       string
		minRole    string
		role       string
		wantStatus int
	}{
		{"admin on admin route", model.RoleAdmin, model.RoleAdmin, http.StatusOK},
		{"editor on admin route", model.RoleAdmin, model.RoleEditor, http.StatusForbidden},
		{"editor on editor route", model.RoleEditor, model.RoleEditor, http.StatusOK},
		{"admin on editor route", model.RoleEditor, model.RoleAdmin, http.StatusOK},
		{"unknown role", model.RoleEditor, "visitor", http.StatusForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := RequireRole(tc.minRole)(okHandler())

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, requestWithOperator(tc.role))

			if rec.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
		})
	}
}

func TestRequireRole_NoOperatorRedirects(t *testing.T) {
	handler := RequireAdmin()(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/posts", nil))

	if rec.Code != http.StatusSeeOther {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
}

func TestGetOperatorContext(t *testing.T) {
	op := GetOperatorContext(requestWithOperator(model.RoleAdmin))
	if op.ID != 7 || !op.IsAdmin {
		t.Errorf("GetOperatorContext = %+v, want admin id 7", op)
	}

	op = GetOperatorContext(requestWithOperator(model.RoleEditor))
	if op.ID != 7 || op.IsAdmin {
		t.Errorf("GetOperatorContext = %+v, want non-admin id 7", op)
	}

	op = GetOperatorContext(httptest.NewRequest(http.MethodGet, "/", nil))
	if op.ID != 0 {
		t.Errorf("GetOperatorContext without operator = %+v, want zero value", op)
	}
}
