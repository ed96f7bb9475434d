package main

import "github/dlcplaza/go-dlcsigner/cmd"

func main() {
	cmd.Execute()
}
