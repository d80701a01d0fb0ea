package main

import "github.com/ostapdev/teamwheel/internal/cli"

func main() {
	cli.Execute()
}
