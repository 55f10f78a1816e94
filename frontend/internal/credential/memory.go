package credential

import "sync"

// MemoryStore keeps the credential in process memory. Used by the CLI and
// tests.
type MemoryStore struct {
	mu     sync.Mutex
	cred   *Credential
	clears int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cred == nil || s.cred.Token == "" {
		return "", false
	}
	return s.cred.Token, true
}

func (s *MemoryStore) Get() (*Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cred == nil {
		return nil, nil
	}
	c := *s.cred
	return &c, nil
}

func (s *MemoryStore) Set(c Credential) error {
	if err := c.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cred = &c
	return nil
}

func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cred = nil
	s.clears++
}

// Clears reports how many times Clear was called.
func (s *MemoryStore) Clears() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clears
}
