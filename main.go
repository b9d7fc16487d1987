package main

import "github.com/notargets/netshock/cmd"

func main() {
	cmd.Execute()
}
