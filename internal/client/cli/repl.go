package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Categories(ctx context.Context) error
	Papers(ctx context.Context) error
	Submit(ctx context.Context) error
	Apply(ctx context.Context) error
	Pending(ctx context.Context) error
	Applications(ctx context.Context) error
	Review(ctx context.Context) error
	DecideApplication(ctx context.Context) error
}

// Root enters the REPL reading commands from stdin.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to La Revista CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

// runREPL starts a simple read-eval-print loop for the journal CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF, context cancellation, or
// when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Always:
//	  - help           — show available commands
//	  - papers         — browse published papers, with optional filters
//	  - categories     — list journal categories
//	  - submit         — submit a manuscript
//	  - apply          — apply as a reviewer
//	  - exit | quit    — leave the program
//
//	Not logged in:
//	  - register       — create an account
//	  - login          — authenticate
//
//	Logged in:
//	  - whoami         — show the current identity
//	  - logout         — log out and erase the stored token
//
//	Admins additionally:
//	  - pending        — list manuscripts awaiting review
//	  - applications   — list reviewer applications
//	  - review         — decide a pending manuscript
//	  - decide-app     — decide a reviewer application
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		printlnFn(fmt.Sprintf("revista %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			printlnFn("Available commands: papers, categories, submit, apply, exit")
			if a.isLoggedIn() {
				printlnFn("Session commands: whoami, logout")
			} else {
				printlnFn("Session commands: register, login")
			}
			if a.isAdmin() {
				printlnFn("Admin commands: pending, applications, review, decide-app")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "categories":
			_ = a.Categories(ctx)

		case "p", "papers":
			_ = a.Papers(ctx)

		case "submit":
			_ = a.Submit(ctx)

		case "apply":
			_ = a.Apply(ctx)

		case "pending":
			_ = a.Pending(ctx)

		case "applications":
			_ = a.Applications(ctx)

		case "review":
			_ = a.Review(ctx)

		case "decide-app":
			_ = a.DecideApplication(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
