package main

import "github.com/alexiusacademia/gofsi/cmd"

func main() {
	cmd.Execute()
}
