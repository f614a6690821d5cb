// Command ippcode23 interprets an IPPcode23 XML program. See pkg/cli
// for flag handling; this file only wires the OS process streams and
// arguments to it and turns the resulting code into os.Exit.
package main

import (
	"os"

	"ippcode23/pkg/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
