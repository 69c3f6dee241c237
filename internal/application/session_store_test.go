package application

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
)

func TestSessionGetReturnsStoredHash(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewSessionStore(db, time.Hour)

	want := map[string]string{
		"admin_id":  "admin-1",
		"email":     "a@b.c",
		"name":      "Admin",
		"sid":       "sid-1",
		"logged_in": "1",
	}
	mock.ExpectHGetAll("admin:session:admin-1").SetVal(want)

	got, err := store.Get(context.Background(), "admin-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("field %s = %q, want %q", k, got[k], v)
		}
	}
}

func TestSessionGetAbsentReturnsEmpty(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewSessionStore(db, time.Hour)

	mock.ExpectHGetAll("admin:session:ghost").SetVal(map[string]string{})

	got, err := store.Get(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty session, got %v", got)
	}
}

func TestSessionClearDeletesHash(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewSessionStore(db, time.Hour)

	mock.ExpectDel("admin:session:admin-1").SetVal(1)

	if err := store.Clear(context.Background(), "admin-1"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestBlacklistSkipsExpiredTokens(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewSessionStore(db, time.Hour)

	// already-expired token needs no Redis write
	if err := store.Blacklist(context.Background(), "jti-1", time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("blacklist: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestIsBlacklisted(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewSessionStore(db, time.Hour)

	mock.ExpectExists("auth:blacklist:jti-1").SetVal(1)
	mock.ExpectExists("auth:blacklist:jti-2").SetVal(0)

	revoked, err := store.IsBlacklisted(context.Background(), "jti-1")
	if err != nil || !revoked {
		t.Errorf("jti-1: revoked=%v err=%v, want true", revoked, err)
	}
	live, err := store.IsBlacklisted(context.Background(), "jti-2")
	if err != nil || live {
		t.Errorf("jti-2: revoked=%v err=%v, want false", live, err)
	}
}
