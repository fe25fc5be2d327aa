package main

import "github.com/samkass/SwiftzerlandTransportAPI/cmd"

func main() {
	cmd.Execute()
}
