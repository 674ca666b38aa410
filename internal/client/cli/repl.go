package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nutriapp/nutricli/internal/client/services"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = func(a ...any) { fmt.Println(a...) }

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	Onboard(ctx context.Context) error
	EditProfile(ctx context.Context) error
	Analyse(ctx context.Context, args []string) error
	SaveMeal(ctx context.Context) error
	History(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Day(ctx context.Context, args []string) error
	Export(ctx context.Context, args []string) error
	ExportLocal(ctx context.Context, args []string) error
}

// runREPL starts a simple read–eval–print loop for the NutriApp CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help                         — show available commands
//	  - analyse <image>              — analyse a meal photo
//	  - save                         — save the last analysed meal
//	  - history [range] [sort] [dir] — list meal history
//	  - show <id>                    — show one meal with its items
//	  - delete <id>                  — delete a meal
//	  - day [date]                   — daily totals vs targets
//	  - export [from to] [format]    — download a history report
//	  - exportlocal [range]          — render a report from local data
//	  - profile | onboard | editprofile
//	  - logout, exit | quit
//
// Superseded history fetches are silent: their outcome is discarded here
// without a message. Other handler errors are reported to the user.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	report := func(err error) {
		if err == nil || errors.Is(err, services.ErrStaleFetch) || errors.Is(err, context.Canceled) {
			return
		}
		printlnFn("Error:", err.Error())
	}

	for {
		printlnFn(fmt.Sprintf("nutri %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: analyse, save, (h)istory, show, delete, day, export, exportlocal, profile, onboard, editprofile, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			report(a.Register(ctx))

		case "login":
			report(a.Login(ctx))

		case "logout":
			report(a.Logout(ctx))

		case "profile":
			report(a.Profile(ctx))

		case "onboard":
			report(a.Onboard(ctx))

		case "editprofile":
			report(a.EditProfile(ctx))

		case "analyse":
			report(a.Analyse(ctx, args))

		case "save":
			report(a.SaveMeal(ctx))

		case "h", "history":
			report(a.History(ctx, args))

		case "show":
			report(a.Show(ctx, args))

		case "delete":
			report(a.Delete(ctx, args))

		case "day":
			report(a.Day(ctx, args))

		case "export":
			report(a.Export(ctx, args))

		case "exportlocal":
			report(a.ExportLocal(ctx, args))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
