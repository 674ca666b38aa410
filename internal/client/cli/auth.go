package cli

import (
	"context"
	"errors"
	"os"

	"github.com/nutriapp/nutricli/internal/client/auth"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for an email and password and attempts to
// create a new account via the auth provider. On success the issued
// session is kept in memory and used for subsequent backend requests.
func (a *App) Register(ctx context.Context) error {
	if a.authService == nil {
		return auth.ErrNotConfigured
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	session, err := a.authService.SignUp(ctx, email, password)
	if err != nil {
		return err
	}

	a.session = session
	printlnFn("Account created. You are signed in.")
	return nil
}

// Login prompts the user for credentials and tries to authenticate.
// Invalid credentials are reported without ending the REPL.
func (a *App) Login(ctx context.Context) error {
	if a.authService == nil {
		return auth.ErrNotConfigured
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	session, err := a.authService.SignIn(ctx, email, password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			printlnFn("Invalid email or password.")
			return nil
		}
		return err
	}

	a.session = session
	printlnFn("Signed in.")
	return nil
}

// Logout discards the in-memory session. The cached history snapshot is
// kept; it belongs to the device, not the session.
func (a *App) Logout(ctx context.Context) error {
	a.session = nil
	a.pending = nil
	printlnFn("Signed out.")
	return nil
}
