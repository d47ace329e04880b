package main

import "chip/cmd"

func main() {
	cmd.Execute()
}
