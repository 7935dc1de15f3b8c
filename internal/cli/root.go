package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return ""
	}
	return fmt.Sprintf("(%s %s)", a.session.UserName, a.session.Role)
}

// Root prints the banner and runs the REPL on the App's reader and writer.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to Drawer Finder (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}
