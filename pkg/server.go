package pkg

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"sync"
	"syscall"
	"time"
	"unsafe"

	"github.com/creack/pty"
	"github.com/gliderlabs/ssh"
)

// Server exposes the interactive board over SSH. Each connection gets the
// board client spawned under a pseudo-terminal, and a Session entry for
// bookkeeping.
type Server struct {
	*ssh.Server
	cfg Config

	mu       sync.Mutex
	sessions map[string]*Session
}

func setWinsize(f *os.File, w, h int) {
	syscall.Syscall(syscall.SYS_IOCTL, f.Fd(), uintptr(syscall.TIOCSWINSZ),
		uintptr(unsafe.Pointer(&struct{ h, w, x, y uint16 }{uint16(h), uint16(w), 0, 0})))
}

// NewServer builds the SSH server. Call ListenAndServe to start it.
func NewServer(cfg Config) *Server {
	srv := &Server{
		cfg:      cfg,
		sessions: make(map[string]*Session),
	}
	s := &ssh.Server{
		Addr:        cfg.SSHPort,
		IdleTimeout: cfg.IdleTimeout(),
		Handler:     srv.handle,
	}
	if cfg.HostKey != "" {
		if err := s.SetOption(ssh.HostKeyFile(cfg.HostKey)); err != nil {
			log.Panic(err)
		}
	}
	srv.Server = s
	return srv
}

// Sessions returns a snapshot of the active sessions.
func (srv *Server) Sessions() []*Session {
	srv.mu.Lock()
	defer srv.mu.Unlock()
	out := make([]*Session, 0, len(srv.sessions))
	for _, sess := range srv.sessions {
		out = append(out, sess)
	}
	return out
}

func (srv *Server) register(sess *Session) {
	srv.mu.Lock()
	srv.sessions[sess.ID] = sess
	srv.mu.Unlock()
	log.Printf("Session %s (%s) started for %s@%s", sess.Name, sess.ID, sess.User, sess.Addr)
}

func (srv *Server) drop(sess *Session) {
	srv.mu.Lock()
	delete(srv.sessions, sess.ID)
	srv.mu.Unlock()
	log.Printf("Session %s closed after %s", sess.Name, time.Since(sess.Started))
}

// handle runs the board client under a pty for one SSH connection.
func (srv *Server) handle(s ssh.Session) {
	ptyReq, winCh, isPty := s.Pty()
	if !isPty {
		io.WriteString(s, "non-interactive terminals are not supported\n")
		s.Exit(1)
		return
	}

	sess := NewSession(s.User(), s.RemoteAddr().String())
	srv.register(sess)
	defer srv.drop(sess)

	cmdCtx, cancelCmd := context.WithCancel(s.Context())
	defer cancelCmd()

	cmd := exec.CommandContext(cmdCtx, srv.cfg.ClientCmd)
	cmd.Env = append(s.Environ(), fmt.Sprintf("TERM=%s", ptyReq.Term))

	f, err := pty.Start(cmd)
	if err != nil {
		io.WriteString(s, fmt.Sprintf("failed to initialize pseudo-terminal: %s\n", err))
		s.Exit(1)
		return
	}
	defer f.Close()

	go func() {
		for win := range winCh {
			setWinsize(f, win.Width, win.Height)
		}
	}()

	go func() {
		io.Copy(f, sess.Reader(s))
	}()
	io.Copy(s, f)

	f.Close()
	cmd.Wait()
}

// CleanIdleSessions drops sessions that have gone quiet. Run it in its own
// goroutine.
func (srv *Server) CleanIdleSessions() {
	tick := time.NewTicker(time.Minute)
	for range tick.C {
		srv.mu.Lock()
		for id, sess := range srv.sessions {
			if sess.IdleFor() > srv.cfg.IdleTimeout() {
				log.Printf("Session %s idle for %s, dropping", sess.Name, sess.IdleFor())
				delete(srv.sessions, id)
			}
		}
		srv.mu.Unlock()
	}
}
