package main

import "github.com/controldoc/web/cmd/controldoc/cmd"

func main() {
	cmd.Execute()
}
