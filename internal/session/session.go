package session

import "github.com/google/uuid"

const userIDKey = "user_id"

// Session is the request-scoped key/value state owned by the session
// store. ID is the opaque token carried in the session cookie.
type Session struct {
	ID     string
	Values map[string]string

	dirty bool
	fresh bool
}

// New creates an unsaved session with a random opaque token.
func New() *Session {
	return &Session{
		ID:     uuid.NewString(),
		Values: map[string]string{},
		dirty:  true,
		fresh:  true,
	}
}

func (s *Session) Get(key string) string {
	if s == nil {
		return ""
	}
	return s.Values[key]
}

func (s *Session) Set(key, value string) {
	if s.Values == nil {
		s.Values = map[string]string{}
	}
	s.Values[key] = value
	s.dirty = true
}

func (s *Session) Delete(key string) {
	if _, ok := s.Values[key]; ok {
		delete(s.Values, key)
		s.dirty = true
	}
}

// UserID returns the authenticated user id, or "" for anonymous sessions.
func (s *Session) UserID() string { return s.Get(userIDKey) }

func (s *Session) SetUserID(id string) { s.Set(userIDKey, id) }

// Dirty reports whether the session has unsaved changes.
func (s *Session) Dirty() bool { return s != nil && s.dirty }

// Fresh reports whether the session was created during this request and
// its cookie has not been delivered yet.
func (s *Session) Fresh() bool { return s != nil && s.fresh }
