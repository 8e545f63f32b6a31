package pkg

import (
	"io"
	"sync"
	"time"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/google/uuid"
)

// Session is one connected board over SSH. The board itself runs in the
// client process on the far side of the pty; the server only keeps the
// bookkeeping needed for listing and idle cleanup.
type Session struct {
	ID      string
	Name    string
	User    string
	Addr    string
	Started time.Time

	// lastSeen is touched by the connection goroutine and read by the
	// idle cleaner.
	mu       sync.Mutex
	lastSeen time.Time
}

// NewSession registers a fresh session with a unique id and a readable
// name.
func NewSession(user, addr string) *Session {
	return &Session{
		ID:       uuid.NewString(),
		Name:     petname.Generate(2, "-"),
		User:     user,
		Addr:     addr,
		Started:  time.Now(),
		lastSeen: time.Now(),
	}
}

// Touch marks the session as recently active.
func (s *Session) Touch() {
	s.mu.Lock()
	s.lastSeen = time.Now()
	s.mu.Unlock()
}

// LastSeen returns the time of the session's most recent activity.
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// IdleFor returns how long the session has been quiet.
func (s *Session) IdleFor() time.Duration {
	return time.Since(s.LastSeen())
}

// Reader wraps the client's input stream so every read marks the session
// active. Idle cleanup would otherwise reap sessions whose connection is
// still open.
func (s *Session) Reader(r io.Reader) io.Reader {
	return &touchReader{r: r, sess: s}
}

type touchReader struct {
	r    io.Reader
	sess *Session
}

func (t *touchReader) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	if n > 0 {
		t.sess.Touch()
	}
	return n, err
}
