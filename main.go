package main

import "fincal/cmd"

func main() {
	cmd.Execute()
}
