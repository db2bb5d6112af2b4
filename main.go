package main

import "github.com/SleepyBear319993/LBBM/cmd"

func main() {
	cmd.Execute()
}
