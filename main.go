package main

import "github.com/testingcanx/docsite/cmd"

func main() {
	cmd.Execute()
}
