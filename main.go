package main

import "github.com/solderless/breadboard/cmd"

func main() {
	cmd.Execute()
}
