package main

import "github.com/devnest/cli/internal/cmd"

func main() {
	cmd.Execute()
}
