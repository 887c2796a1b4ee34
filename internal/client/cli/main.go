package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) Main(ctx context.Context) {

	fmt.Println("Love OS (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	runREPL(ctx, a, a.status, scanner)
}

func (a *App) status() string {
	if !a.isLoggedIn() {
		return "not logged in"
	}
	return fmt.Sprintf("%s (%s)", a.space.DisplayName, a.nickname())
}
