package main

import (
	"github.com/ValentinKolb/stubDB/cmd"
)

func main() {
	cmd.Execute()
}
