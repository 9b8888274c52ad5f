package main

import "github.com/example/dexnorm/internal/cli"

func main() {
	cli.Execute()
}
