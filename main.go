package main

import "github.com/ktalanov/ModelScrapOR/cmd"

func main() {
	cmd.Execute()
}
