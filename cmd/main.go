package main

import (
	"fmt"
	"os"

	"github.com/rony4d/opera-abicodec/cmd/abifixtures"
)

func main() {
	app := abifixtures.NewApp()

	if err := app.Run(os.Args); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
