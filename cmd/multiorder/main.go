package main

import "multiorder/cmd/multiorder/cmd"

func main() {
	cmd.Execute()
}
