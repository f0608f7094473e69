package main

import "github.com/falshproject/falsh/cmd"

func main() {
	cmd.Execute()
}
