package verify

import (
	"testing"
	"time"
)

func TestIssueVerify_SingleUse(t *testing.T) {
	s := NewCodeStore(10 * time.Minute)

	code, err := s.Issue("a@b.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if len(code) != 6 {
		t.Fatalf("code %q, want 6 digits", code)
	}

	if s.Verify("a@b.com", "999999x") {
		t.Fatal("wrong code accepted")
	}
	if !s.Verify("a@b.com", code) {
		t.Fatal("right code rejected")
	}
	// ใช้แล้วต้องหาย
	if s.Verify("a@b.com", code) {
		t.Fatal("code accepted twice")
	}
}

func TestIssue_OverwritesPrevious(t *testing.T) {
	s := NewCodeStore(10 * time.Minute)

	old, _ := s.Issue("a@b.com")
	newer, _ := s.Issue("a@b.com")
	if old != newer && s.Verify("a@b.com", old) {
		t.Fatal("stale code still valid")
	}
	if !s.Verify("a@b.com", newer) {
		t.Fatal("latest code rejected")
	}
}

func TestVerify_Expired(t *testing.T) {
	s := NewCodeStore(10 * time.Minute)
	base := time.Now()
	s.now = func() time.Time { return base }

	code, _ := s.Issue("a@b.com")

	s.now = func() time.Time { return base.Add(11 * time.Minute) }
	if s.Verify("a@b.com", code) {
		t.Fatal("expired code accepted")
	}
	if s.Len() != 0 {
		t.Fatalf("expired entry not purged, len=%d", s.Len())
	}
}

func TestPurge_RemovesOnlyExpired(t *testing.T) {
	s := NewCodeStore(10 * time.Minute)
	base := time.Now()
	s.now = func() time.Time { return base }

	s.Issue("old@b.com")

	s.now = func() time.Time { return base.Add(5 * time.Minute) }
	fresh, _ := s.Issue("fresh@b.com")

	s.now = func() time.Time { return base.Add(12 * time.Minute) }
	s.mu.Lock()
	s.purgeLocked()
	s.mu.Unlock()

	if s.Len() != 1 {
		t.Fatalf("len=%d, want 1", s.Len())
	}
	if !s.Verify("fresh@b.com", fresh) {
		t.Fatal("fresh code lost in purge")
	}
}
