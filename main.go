package main

import "acutia-backend/cmd"

func main() {
	cmd.Run()
}
