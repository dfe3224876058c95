package main

import (
	"os"

	"github.com/your-org/humanise/internal/humanisecmd"
)

func main() {
	os.Exit(humanisecmd.Main())
}
