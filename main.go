package main

import "github.com/agentic-research/povforge/cmd"

func main() {
	cmd.Execute()
}
