// Command juridicoctl is the operator CLI: schema migrations and account
// bootstrap (promote, create-user).
package main

import (
	"fmt"
	"os"

	"github.com/azulpack/juridico-backend/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
