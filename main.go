package main

import "github.com/carelinkhq/carelink_backend/cmd"

func main() {
	cmd.Execute()
}
