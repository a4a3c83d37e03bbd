package main

import "github.com/siags/siagsctl/cmd/siagsctl/cmd"

func main() {
	cmd.Execute()
}
