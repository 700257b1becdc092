package storefront

import (
	"context"
	"encoding/json"
	"os"
)

// sessionKey is the fixed name the admin credential is stored under.
const sessionKey = "adminAuth"

// SessionStore is the durable client-side storage the admin credential
// lives in.
type SessionStore interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// MemorySessionStore keeps session state for the life of the process.
type MemorySessionStore struct {
	values map[string]string
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{values: map[string]string{}}
}

func (s *MemorySessionStore) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *MemorySessionStore) Set(key, value string) error {
	s.values[key] = value
	return nil
}

func (s *MemorySessionStore) Delete(key string) error {
	delete(s.values, key)
	return nil
}

// FileSessionStore persists session state as a small JSON file so the flag
// survives restarts.
type FileSessionStore struct {
	path string
}

func NewFileSessionStore(path string) *FileSessionStore {
	return &FileSessionStore{path: path}
}

func (s *FileSessionStore) Get(key string) (string, bool) {
	values, err := s.read()
	if err != nil {
		return "", false
	}
	v, ok := values[key]
	return v, ok
}

func (s *FileSessionStore) Set(key, value string) error {
	values, err := s.read()
	if err != nil {
		return err
	}
	values[key] = value
	return s.write(values)
}

func (s *FileSessionStore) Delete(key string) error {
	values, err := s.read()
	if err != nil {
		return err
	}
	delete(values, key)
	return s.write(values)
}

func (s *FileSessionStore) read() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}
	values := map[string]string{}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, err
	}
	return values, nil
}

func (s *FileSessionStore) write(values map[string]string) error {
	data, err := json.Marshal(values)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// SessionGuard gates the dashboard behind the shared admin password. Login
// exchanges the password for the API credential and stores that; the stored
// credential is trusted as-is on restore. The gate is a deterrent and not a
// security boundary.
type SessionGuard struct {
	client        *Client
	store         SessionStore
	apiKey        string
	authenticated bool
}

func NewSessionGuard(client *Client, store SessionStore) *SessionGuard {
	return &SessionGuard{client: client, store: store}
}

// Login checks the password with the server; only a match stores the returned
// API credential. A rejection returns AuthError and leaves the gate closed.
func (g *SessionGuard) Login(ctx context.Context, password string) error {
	key, err := g.client.Login(ctx, password)
	if err != nil {
		return err
	}
	if err := g.store.Set(sessionKey, key); err != nil {
		return err
	}
	g.apiKey = key
	g.authenticated = true
	return nil
}

// Restore runs once at startup: a stored credential means authenticated,
// without re-validating the secret.
func (g *SessionGuard) Restore() bool {
	v, ok := g.store.Get(sessionKey)
	if !ok || v == "" {
		g.apiKey = ""
		g.authenticated = false
		return false
	}
	g.apiKey = v
	g.authenticated = true
	return true
}

// Logout clears the stored credential and closes the gate.
func (g *SessionGuard) Logout() error {
	g.apiKey = ""
	g.authenticated = false
	return g.store.Delete(sessionKey)
}

func (g *SessionGuard) Authenticated() bool {
	return g.authenticated
}

// APIKey is the credential Login obtained; empty until the gate is open.
func (g *SessionGuard) APIKey() string {
	return g.apiKey
}
