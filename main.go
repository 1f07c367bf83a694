package main

import "github.com/palvaren/tock-cli/cmd"

func main() {
	cmd.Execute()
}
