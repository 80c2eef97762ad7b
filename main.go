package main

import "github.com/ptasevski/blogtidy/cmd"

var execute = cmd.Execute

func main() {
	execute()
}
