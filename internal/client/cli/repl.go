package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	TogglePassword(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	List(ctx context.Context) error
	Page(ctx context.Context, arg string) error
	Size(ctx context.Context, arg string) error
	Next(ctx context.Context) error
	Prev(ctx context.Context) error
	Filter(ctx context.Context, text string) error
	Sort(ctx context.Context, column, dir string) error
	Create(ctx context.Context) error
	Edit(ctx context.Context, arg string) error
	Show(ctx context.Context, arg string) error
}

const (
	helpGuest = "Available commands: login, reveal, exit"
	helpUser  = "Available commands: (l)ist, page <n>, size <n>, next, prev, filter [text], " +
		"sort <column> [asc|desc|none], create, edit <id>, show <id>, whoami, logout, exit"
)

// runREPL starts a read–eval–print loop for the directory console.
//
// It reads a line from in, parses the first token as the command, and
// dispatches to methods on 'a'. The loop exits on EOF or when the user
// types "exit" or "quit".
//
//	Not logged in:
//	  - help            show available commands
//	  - login           authenticate
//	  - reveal          toggle password echo for the next login
//	  - exit | quit     leave the program
//
//	Logged in, additionally:
//	  - list | l        reload and show the current page
//	  - page <n>        go to server page n (1-based)
//	  - size <n>        change the page size
//	  - next | prev     move one page
//	  - filter [text]   filter the loaded page; no text clears it
//	  - sort <col> [d]  sort the loaded page
//	  - create          add a user
//	  - edit <id>       edit a user
//	  - show <id>       show a user's profile
//	  - whoami          show the current login
//	  - logout          forget the session
//
// The loop also exits as soon as ctx is done, even while waiting for input.
// Errors returned by command handlers are ignored here; handlers report
// their own errors.
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("diradmin %s> ", statusFn()))
		line, err := readLineContext(ctx, in)
		if err != nil {
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
				printlnFn(helpUser)
			} else {
				printlnFn(helpGuest)
			}
			continue

		case "login":
			_ = a.Login(ctx)
			continue

		case "reveal":
			_ = a.TogglePassword(ctx)
			continue

		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		if !a.isLoggedIn() {
			if isKnown(cmd) {
				printlnFn("Please log in first")
			} else {
				printlnFn("Unknown command:", cmd)
			}
			continue
		}

		switch cmd {
		case "l", "list":
			_ = a.List(ctx)
		case "page":
			_ = a.Page(ctx, arg(args, 0))
		case "size":
			_ = a.Size(ctx, arg(args, 0))
		case "next":
			_ = a.Next(ctx)
		case "prev":
			_ = a.Prev(ctx)
		case "filter":
			_ = a.Filter(ctx, strings.Join(args, " "))
		case "sort":
			_ = a.Sort(ctx, arg(args, 0), arg(args, 1))
		case "create":
			_ = a.Create(ctx)
		case "edit":
			_ = a.Edit(ctx, arg(args, 0))
		case "show":
			_ = a.Show(ctx, arg(args, 0))
		case "whoami":
			_ = a.Whoami(ctx)
		case "logout":
			_ = a.Logout(ctx)
		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

type lineResult struct {
	line string
	err  error
}

// readLineContext reads one line but gives up when ctx is done. The pending
// read is abandoned; the caller is expected to stop reading from in.
func readLineContext(ctx context.Context, in *bufio.Reader) (string, error) {
	ch := make(chan lineResult, 1)
	go func() {
		line, err := readLine(in)
		ch <- lineResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return r.line, r.err
	}
}

var userCommands = map[string]bool{
	"l": true, "list": true, "page": true, "size": true, "next": true, "prev": true,
	"filter": true, "sort": true, "create": true, "edit": true, "show": true,
	"whoami": true, "logout": true,
}

func isKnown(cmd string) bool {
	return userCommands[cmd]
}

func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
