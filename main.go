package main

import "github.com/iksnae/claude-delta/cmd"

func main() {
	cmd.Execute()
}
