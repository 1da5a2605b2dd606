package main

import "github.com/coilworks/gosolenoid/cmd"

func main() {
	cmd.Execute()
}
