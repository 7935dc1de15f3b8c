package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Find(ctx context.Context, term string) error
	Add(ctx context.Context) error
	List(ctx context.Context) error
	Delete(ctx context.Context, arg string) error
	Users(ctx context.Context) error
	AddUser(ctx context.Context) error
}

// runREPL reads one command per line from reader, dispatches it to a and
// loops until EOF or "exit"/"quit".
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           show available commands
//	  - login          authenticate
//	  - exit | quit    leave the program
//
//	Logged in:
//	  - find [term]    search items by name or notes
//	  - add            record an item and its drawer
//	  - list | l       show every item with its position
//	  - delete [n]     remove the item at position n
//	  - whoami         show the current account
//	  - logout         end the session
//	  - users          list accounts (admin)
//	  - adduser        create an account (admin)
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors to the user.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "drawers %s> ", statusFn())

		line, err := readLine(reader)
		if err != nil {
			fmt.Fprintln(w)
			return
		}

		cmd, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)
		if cmd == "" {
			continue
		}

		switch cmd {
		case "help":
			printHelp(a, w)
			continue
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		case "login":
			_ = a.Login(ctx)
			continue
		}

		if !isKnown(cmd) {
			fmt.Fprintln(w, "Unknown command:", cmd)
			continue
		}

		if !a.isLoggedIn() {
			fmt.Fprintln(w, "Please log in first (type 'login').")
			continue
		}

		switch cmd {
		case "find":
			_ = a.Find(ctx, rest)
		case "add":
			_ = a.Add(ctx)
		case "l", "list":
			_ = a.List(ctx)
		case "delete":
			_ = a.Delete(ctx, rest)
		case "whoami":
			_ = a.WhoAmI(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "users":
			_ = a.Users(ctx)
		case "adduser":
			_ = a.AddUser(ctx)
		}
	}
}

var loggedInCommands = map[string]bool{
	"find": true, "add": true, "l": true, "list": true, "delete": true,
	"whoami": true, "logout": true, "users": true, "adduser": true,
}

func isKnown(cmd string) bool {
	return loggedInCommands[cmd]
}

func printHelp(a execIface, w io.Writer) {
	switch {
	case a.isAdmin():
		fmt.Fprintln(w, "Available commands: find, add, (l)ist, delete, users, adduser, whoami, logout, exit")
	case a.isLoggedIn():
		fmt.Fprintln(w, "Available commands: find, add, (l)ist, delete, whoami, logout, exit")
	default:
		fmt.Fprintln(w, "Available commands: login, exit")
	}
}
