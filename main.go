package main

import "github.com/adityab94/FitForge/commands"

func main() {
	commands.Execute()
}
