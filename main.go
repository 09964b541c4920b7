package main

import (
	"os"

	"tux3.org/tux3/cli"
)

func main() {
	code := cli.Main()
	os.Exit(code)
}
