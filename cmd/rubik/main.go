// rubik - command-line explorer for 3x3x3 cube states.
package main

import (
	"github.com/SeamusWaldron/rubik/internal/cli"
)

func main() {
	cli.Execute()
}
