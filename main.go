package main

import "github.com/foodyatra/foodyatra/cmd"

func main() {
	cmd.Execute()
}
