package main

import "github.com/gdgqassim/robo-roadmap/cmd"

func main() {
	cmd.Execute()
}
