// Command hashpass prints the bcrypt hash of a password for use as
// ADMIN_PASSWORD_HASH.
package main

import (
	"fmt"
	"os"

	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/auth"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: hashpass <password>")
		os.Exit(1)
	}

	hash, err := auth.HashPassword(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to hash password:", err)
		os.Exit(1)
	}

	fmt.Println(hash)
}
