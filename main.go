package main

import "github.com/kaiosilva-dataeng/warmane-trade/cmd"

func main() {
	cmd.Execute()
}
