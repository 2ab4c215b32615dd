package main

import "github.com/inovacc/gitpace/cmd"

func main() {
	cmd.Execute()
}
