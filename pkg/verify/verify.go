package verify

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"
	"time"
)

// CodeStore เก็บ one-time code ของการสมัครสมาชิก แบบมีวันหมดอายุ
// แทนที่ map ลอย ๆ ระดับ process ที่ไม่เคยถูกเคลียร์
type CodeStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]entry

	now func() time.Time // เปลี่ยนได้ในเทสต์
}

type entry struct {
	code    string
	expires time.Time
}

func NewCodeStore(ttl time.Duration) *CodeStore {
	return &CodeStore{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Issue สุ่ม code 6 หลักให้ email นี้ (ทับของเดิมถ้ามี)
func (s *CodeStore) Issue(email string) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	code := fmt.Sprintf("%06d", n.Int64())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeLocked()
	s.entries[email] = entry{code: code, expires: s.now().Add(s.ttl)}
	return code, nil
}

// Verify ตรวจ code แล้วใช้ทิ้งเลย (single-use)
func (s *CodeStore) Verify(email, code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeLocked()

	e, ok := s.entries[email]
	if !ok || e.code != code {
		return false
	}
	delete(s.entries, email)
	return true
}

func (s *CodeStore) purgeLocked() {
	now := s.now()
	for k, e := range s.entries {
		if now.After(e.expires) {
			delete(s.entries, k)
		}
	}
}

// StartSweeper กวาด entry หมดอายุเป็นระยะ จนกว่า stop จะถูกปิด
func (s *CodeStore) StartSweeper(interval time.Duration, stop <-chan struct{}) {
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				s.mu.Lock()
				s.purgeLocked()
				s.mu.Unlock()
			case <-stop:
				return
			}
		}
	}()
}

// Len ไว้ดูขนาดใน test/debug
func (s *CodeStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
