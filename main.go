package main

import "github.com/alexiusacademia/golash/cmd"

func main() {
	cmd.Execute()
}
