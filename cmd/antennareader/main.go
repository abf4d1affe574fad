package main

import "github.com/philipparndt/antennareader/cmd"

func main() {
	cmd.Execute()
}
