package main

import "github.com/KaramelBytes/hmpi-cli/cmd"

func main() {
	cmd.Execute()
}
