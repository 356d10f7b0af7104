package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface defines the command surface the REPL needs. The real App type
// satisfies it; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	List(ctx context.Context) error
	Search(ctx context.Context) error
	Show(ctx context.Context, id string) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Mine(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: signup, login, (l)ist [filter], show <id>, whoami, exit"
	helpLoggedIn  = "Available commands: (l)ist [filter], show <id>, add, edit <id>, delete <id>, mine, whoami, logout, exit"
)

// runREPL reads commands from reader and dispatches them to a until the user
// types "exit" or "quit" or input ends. Prompts and replies go to w.
//
// The first token of a line is the command; for show, edit and delete the
// second token is the listing id (prompted for when missing). Errors from
// handlers are ignored here since handlers report them to the user
// themselves. Cancelling ctx stops the loop before the next command.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}

		fmt.Fprintf(w, "housesell%s> ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			fmt.Fprintln(w)
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, helpLoggedIn)
			} else {
				fmt.Fprintln(w, helpLoggedOut)
			}

		case "signup", "register":
			_ = a.Signup(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "l", "list":
			if len(args) > 0 && args[0] == "filter" {
				_ = a.Search(ctx)
			} else {
				_ = a.List(ctx)
			}

		case "search", "filter":
			_ = a.Search(ctx)

		case "show":
			_ = a.Show(ctx, firstArg(args))

		case "add":
			_ = a.Add(ctx)

		case "edit":
			_ = a.Edit(ctx, firstArg(args))

		case "delete", "rm":
			_ = a.Delete(ctx, firstArg(args))

		case "mine":
			_ = a.Mine(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
