package main

import "github.com/Ray-Gizzy/2024Fall-projects-Olympic-Effect/cmd"

func main() {
	cmd.Execute()
}
