package cli

import (
	"bufio"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nutriapp/nutricli/internal/client/services"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
	errs     map[string]error
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return f.errs[name]
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(context.Context) error { return f.record("register") }
func (f *fakeExec) Login(context.Context) error { return f.record("login") }
func (f *fakeExec) Logout(context.Context) error { return f.record("logout") }
func (f *fakeExec) Profile(context.Context) error { return f.record("profile") }
func (f *fakeExec) Onboard(context.Context) error { return f.record("onboard") }
func (f *fakeExec) EditProfile(context.Context) error { return f.record("editprofile") }
func (f *fakeExec) Analyse(context.Context, []string) error { return f.record("analyse") }
func (f *fakeExec) SaveMeal(context.Context) error { return f.record("save") }
func (f *fakeExec) History(context.Context, []string) error { return f.record("history") }
func (f *fakeExec) Show(context.Context, []string) error { return f.record("show") }
func (f *fakeExec) Delete(context.Context, []string) error { return f.record("delete") }
func (f *fakeExec) Day(context.Context, []string) error { return f.record("day") }
func (f *fakeExec) Export(context.Context, []string) error { return f.record("export") }
func (f *fakeExec) ExportLocal(context.Context, []string) error { return f.record("exportlocal") }

func runScript(t *testing.T, f *fakeExec, script string) []string {
	t.Helper()
	lines, restore := stubOutput(t)
	defer restore()

	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), f, func() string { return "" }, scanner)
	return *lines
}

func TestREPL_Dispatch(t *testing.T) {
	f := &fakeExec{loggedIn: true}
	runScript(t, f, "login\nhistory week\nday\nexport\nlogout\nexit\n")
	assert.Equal(t, []string{"login", "history", "day", "export", "logout"}, f.calls)
}

func TestREPL_ShortHistoryAlias(t *testing.T) {
	f := &fakeExec{loggedIn: true}
	runScript(t, f, "h\nquit\n")
	assert.Equal(t, []string{"history"}, f.calls)
}

func TestREPL_UnknownCommand(t *testing.T) {
	f := &fakeExec{}
	out := runScript(t, f, "frobnicate\nexit\n")
	assert.Contains(t, strings.Join(out, "\n"), "Unknown command: frobnicate")
}

func TestREPL_HelpDependsOnLogin(t *testing.T) {
	out := runScript(t, &fakeExec{loggedIn: false}, "help\nexit\n")
	assert.Contains(t, strings.Join(out, "\n"), "register, login")

	out = runScript(t, &fakeExec{loggedIn: true}, "help\nexit\n")
	assert.Contains(t, strings.Join(out, "\n"), "analyse")
}

func TestREPL_StaleFetchIsSilent(t *testing.T) {
	f := &fakeExec{errs: map[string]error{"history": services.ErrStaleFetch}}
	out := runScript(t, f, "history\nexit\n")
	assert.NotContains(t, strings.Join(out, "\n"), "Error")
}

func TestREPL_HandlerErrorReported(t *testing.T) {
	f := &fakeExec{errs: map[string]error{"delete": errors.New("meal not found")}}
	out := runScript(t, f, "delete m1\nexit\n")
	assert.Contains(t, strings.Join(out, "\n"), "meal not found")
}

func TestREPL_EmptyLineIgnored(t *testing.T) {
	f := &fakeExec{}
	runScript(t, f, "\n\nexit\n")
	assert.Empty(t, f.calls)
}
