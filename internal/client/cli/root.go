package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"
)

func (a *App) getStatus() string {
	s := ""
	if a.session != nil && a.session.Email != "" {
		s = a.session.Email + " "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// sessionAlive reports whether the in-memory session looks usable.
// An expired token is dropped eagerly; the backend's 401 remains the
// authority for anything this misses.
func (a *App) sessionAlive() bool {
	if a.session == nil {
		return false
	}
	if a.session.Expired(time.Now()) {
		a.session = nil
		printlnFn("Session expired, please log in again.")
		return false
	}
	return true
}

// Root runs the interactive loop until the user exits.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to NutriApp CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
