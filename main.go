package main

import "github.com/rustdocmd/docmd/cmd"

func main() {
	cmd.Execute()
}
