package main

import "github.com/iksnae/ftl/cmd"

func main() {
	cmd.Execute()
}
