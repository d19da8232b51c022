// Package main is the entry point for the Craftlink admin console CLI.
// It reviews identity-verification requests for clients and engineers.
package main

import (
	"craftlink/adminctl/cmd"
)

func main() {
	cmd.Execute()
}
