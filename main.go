package main

import "jobview/cmd"

func main() {
	cmd.Execute()
}
