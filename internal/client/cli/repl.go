package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"feedbackdesk/internal/client/models"
	"feedbackdesk/internal/client/views"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	currentRole() models.Role
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Feedbacks(ctx context.Context) error
	Submit(ctx context.Context) error
	EditFeedback(ctx context.Context) error
	DeleteFeedback(ctx context.Context) error
	Users(ctx context.Context) error
	DeleteUser(ctx context.Context) error
	Analysis(ctx context.Context) error
	Export(ctx context.Context) error
}

// command ties a REPL verb to the view it opens. A command is offered only
// when the current role is allowed at least one of the listed views, so the
// command surface is exactly the role-gated view mapping.
type command struct {
	name  string
	views []views.View
	run   func(ctx context.Context, a execIface) error
}

var loggedInCommands = []command{
	{"dashboard", []views.View{views.AdminDashboard, views.StaffDashboard},
		func(ctx context.Context, a execIface) error { return a.Dashboard(ctx) }},
	{"feedbacks", []views.View{views.AdminFeedbackTable, views.StaffFeedbackTable},
		func(ctx context.Context, a execIface) error { return a.Feedbacks(ctx) }},
	{"submit", []views.View{views.SubmitForm},
		func(ctx context.Context, a execIface) error { return a.Submit(ctx) }},
	{"edit", []views.View{views.StaffFeedbackTable},
		func(ctx context.Context, a execIface) error { return a.EditFeedback(ctx) }},
	{"delete", []views.View{views.StaffFeedbackTable},
		func(ctx context.Context, a execIface) error { return a.DeleteFeedback(ctx) }},
	{"users", []views.View{views.AdminUserTable},
		func(ctx context.Context, a execIface) error { return a.Users(ctx) }},
	{"deluser", []views.View{views.AdminUserTable},
		func(ctx context.Context, a execIface) error { return a.DeleteUser(ctx) }},
	{"analysis", []views.View{views.AdminDashboard},
		func(ctx context.Context, a execIface) error { return a.Analysis(ctx) }},
	{"export", []views.View{views.AdminFeedbackTable},
		func(ctx context.Context, a execIface) error { return a.Export(ctx) }},
}

// availableCommands lists the verbs the given role may run.
func availableCommands(role models.Role) []string {
	names := make([]string, 0, len(loggedInCommands))
	for _, c := range loggedInCommands {
		if commandAllowed(role, c) {
			names = append(names, c.name)
		}
	}
	return names
}

func commandAllowed(role models.Role, c command) bool {
	for _, v := range c.views {
		if views.Allowed(role, v) {
			return true
		}
	}
	return false
}

// runREPL starts a read-eval-print loop. It reads a line from the reader,
// parses the first token as the command, and dispatches to methods on 'a'.
// Unknown commands are reported back to the user. The loop exits on EOF or
// when the user types "exit" or "quit".
//
// The reader is the same one the prompt helpers use, so input buffered
// between a command and its follow-up prompts is never lost.
//
// Errors returned by command handlers are printed by the handlers
// themselves; the loop stays up regardless, so one failed fetch never takes
// down the session.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("fd> %s > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: " + strings.Join(availableCommands(a.currentRole()), ", ") + ", logout, exit")
			} else {
				printlnFn("Available commands: login, register, exit")
			}
			continue

		case "login":
			if a.isLoggedIn() {
				printlnFn("Already logged in. Use 'logout' first.")
				continue
			}
			_ = a.Login(ctx)
			continue

		case "register":
			if a.isLoggedIn() {
				printlnFn("Already logged in. Use 'logout' first.")
				continue
			}
			_ = a.Register(ctx)
			continue

		case "logout":
			_ = a.Logout(ctx)
			continue

		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		if !a.isLoggedIn() {
			printlnFn("Unknown command:", cmd)
			continue
		}

		role := a.currentRole()
		dispatched := false
		for _, c := range loggedInCommands {
			if c.name != cmd {
				continue
			}
			dispatched = true
			if !commandAllowed(role, c) {
				printlnFn("Command not available for your role:", cmd)
				break
			}
			_ = c.run(ctx, a)
			break
		}
		if !dispatched {
			printlnFn("Unknown command:", cmd)
		}
	}
}
