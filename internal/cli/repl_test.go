package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Signup(ctx context.Context) error {
	f.calls = append(f.calls, "signup")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) WhoAmI(ctx context.Context) error { f.calls = append(f.calls, "whoami"); return nil }
func (f *fakeExec) List(ctx context.Context) error   { f.calls = append(f.calls, "list"); return nil }
func (f *fakeExec) Search(ctx context.Context) error { f.calls = append(f.calls, "search"); return nil }
func (f *fakeExec) Show(ctx context.Context, id string) error {
	f.calls = append(f.calls, "show:"+id)
	return nil
}
func (f *fakeExec) Add(ctx context.Context) error { f.calls = append(f.calls, "add"); return nil }
func (f *fakeExec) Edit(ctx context.Context, id string) error {
	f.calls = append(f.calls, "edit:"+id)
	return nil
}
func (f *fakeExec) Delete(ctx context.Context, id string) error {
	f.calls = append(f.calls, "delete:"+id)
	return nil
}
func (f *fakeExec) Mine(ctx context.Context) error { f.calls = append(f.calls, "mine"); return nil }

func TestRunREPL_DispatchesCommands(t *testing.T) {

	input := strings.NewReader(strings.Join([]string{
		"help",
		"signup",
		"",
		"list",
		"l filter",
		"search",
		"show 42",
		"add",
		"edit 42",
		"delete 42",
		"rm",
		"mine",
		"whoami",
		"logout",
		"login",
		"exit",
		"list",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(input), &bytes.Buffer{})

	assert.Equal(t, []string{
		"signup", "list", "search", "search", "show:42", "add", "edit:42",
		"delete:42", "delete:", "mine", "whoami", "logout", "login",
	}, exec.calls)
}

func TestRunREPL_HelpDependsOnSession(t *testing.T) {
	var out bytes.Buffer
	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("help\nlogin\nhelp\nquit\n")), &out)

	assert.Contains(t, out.String(), helpLoggedOut)
	assert.Contains(t, out.String(), helpLoggedIn)
	assert.Contains(t, out.String(), "Bye!")
}

func TestRunREPL_WritesPromptWithStatus(t *testing.T) {
	var out bytes.Buffer
	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "(a@x.com)" }, bufio.NewReader(strings.NewReader("exit\n")), &out)

	assert.Equal(t, "housesell(a@x.com)> Bye!\n", out.String())
}

func TestRunREPL_UnknownCommand(t *testing.T) {
	var out bytes.Buffer
	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("foobar\n")), &out)

	assert.Empty(t, exec.calls)
	assert.Contains(t, out.String(), "Unknown command: foobar")
}

func TestRunREPL_LastLineWithoutNewline(t *testing.T) {
	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("mine")), &bytes.Buffer{})

	assert.Equal(t, []string{"mine"}, exec.calls)
}

func TestRunREPL_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{}
	runREPL(ctx, exec, func() string { return "" }, bufio.NewReader(strings.NewReader("list\n")), &bytes.Buffer{})

	assert.Empty(t, exec.calls)
}
