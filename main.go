package main

import "github.com/jsphweid/cochonut/cmd"

func main() {
	cmd.Execute()
}
