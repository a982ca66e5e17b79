package session

import (
	"net/http"
	"os"
	"testing"

	"github.com/pressroomdev/pressroom/internal/store"
)

func TestNew(t *testing.T) {
	f, err := os.CreateTemp("", "pressroom-session-*.db")
	if err != nil {
		t.Fatalf("creating temp file: %v", err)
	}
	defer os.Remove(f.Name())
	f.Close()

	db, err := store.NewDB(f.Name())
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	defer db.Close()
	if err := store.Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	sm := New(db, true)
	if sm.Cookie.Secure {
		t.Error("dev mode should not force secure cookies")
	}
	if sm.Cookie.SameSite != http.SameSiteLaxMode {
		t.Error("SameSite should be Lax")
	}

	sm = New(db, false)
	if !sm.Cookie.Secure {
		t.Error("production mode should force secure cookies")
	}
}
