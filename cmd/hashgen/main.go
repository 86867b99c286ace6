// Command hashgen prints the bcrypt hash of a password, for seeding users by
// hand (e.g. the first admin account).
//
//	go run ./cmd/hashgen mypassword
package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: hashgen <password>")
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(os.Args[1]), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hashgen: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(string(hash))
}
