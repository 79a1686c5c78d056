package main

import "github.com/VoxDroid/asciiref/cmd"

func main() {
	cmd.Execute()
}
