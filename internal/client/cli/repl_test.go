package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubExec records which commands were dispatched.
type stubExec struct {
	loggedIn bool
	calls    []string
	lastArgs []string
	err      error
}

func (s *stubExec) record(name string, args []string) error {
	s.calls = append(s.calls, name)
	s.lastArgs = args
	return s.err
}

func (s *stubExec) isLoggedIn(ctx context.Context) bool { return s.loggedIn }
func (s *stubExec) Login(ctx context.Context) error     { return s.record("login", nil) }
func (s *stubExec) Register(ctx context.Context) error  { return s.record("register", nil) }
func (s *stubExec) Logout(ctx context.Context) error    { return s.record("logout", nil) }
func (s *stubExec) Whoami(ctx context.Context) error    { return s.record("whoami", nil) }
func (s *stubExec) Specialties(ctx context.Context) error {
	return s.record("specialties", nil)
}
func (s *stubExec) Doctors(ctx context.Context, args []string) error {
	return s.record("doctors", args)
}
func (s *stubExec) Availability(ctx context.Context, args []string) error {
	return s.record("slots", args)
}
func (s *stubExec) Book(ctx context.Context) error { return s.record("book", nil) }
func (s *stubExec) Appointments(ctx context.Context, args []string) error {
	return s.record("appointments", args)
}
func (s *stubExec) Confirm(ctx context.Context, args []string) error {
	return s.record("confirm", args)
}
func (s *stubExec) Cancel(ctx context.Context, args []string) error {
	return s.record("cancel", args)
}
func (s *stubExec) Notifications(ctx context.Context, args []string) error {
	return s.record("notifications", args)
}
func (s *stubExec) MarkRead(ctx context.Context, args []string) error {
	return s.record("read", args)
}
func (s *stubExec) UnreadCount(ctx context.Context, args []string) error {
	return s.record("unread", args)
}

func runWithInput(t *testing.T, s *stubExec, input string) string {
	t.Helper()
	var out bytes.Buffer
	runREPL(context.Background(), s, bufio.NewScanner(strings.NewReader(input)), &out)
	return out.String()
}

func TestREPL_DispatchesCommandsWithArgs(t *testing.T) {
	s := &stubExec{loggedIn: true}
	runWithInput(t, s, "doctors 4\ncancel 42 running late\nexit\n")

	assert.Equal(t, []string{"doctors", "cancel"}, s.calls)
	assert.Equal(t, []string{"42", "running", "late"}, s.lastArgs)
}

func TestREPL_UnknownCommandReported(t *testing.T) {
	s := &stubExec{}
	out := runWithInput(t, s, "frobnicate\n")

	assert.Contains(t, out, "Unknown command: frobnicate")
	assert.Empty(t, s.calls)
}

func TestREPL_CommandErrorsArePrintedNotFatal(t *testing.T) {
	s := &stubExec{err: errors.New("gateway unavailable")}
	out := runWithInput(t, s, "specialties\nwhoami\nexit\n")

	assert.Equal(t, []string{"specialties", "whoami"}, s.calls, "loop continues after an error")
	assert.Contains(t, out, "error: gateway unavailable")
	assert.Contains(t, out, "Bye!")
}

func TestREPL_ExitsOnEOF(t *testing.T) {
	s := &stubExec{}
	runWithInput(t, s, "login\n") // no exit command, scanner hits EOF
	assert.Equal(t, []string{"login"}, s.calls)
}

func TestREPL_BlankLinesIgnored(t *testing.T) {
	s := &stubExec{}
	runWithInput(t, s, "\n   \nexit\n")
	assert.Empty(t, s.calls)
}

func TestREPL_HelpDependsOnLoginState(t *testing.T) {
	out := runWithInput(t, &stubExec{loggedIn: false}, "help\nexit\n")
	assert.Contains(t, out, "login, register")
	assert.NotContains(t, out, "logout")

	out = runWithInput(t, &stubExec{loggedIn: true}, "help\nexit\n")
	assert.Contains(t, out, "logout")
}
