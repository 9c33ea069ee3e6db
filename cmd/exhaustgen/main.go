// Command exhaustgen generates exhaustive visitor and mapper constructors
// for named string types.
//
//	//go:generate go run github.com/bjaus/exhaust/cmd/exhaustgen generate --type Color
package main

import (
	"os"

	"github.com/bjaus/exhaust/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
