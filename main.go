package main

import "datacache/cmd"

func main() {
	cmd.Execute()
}
