package main

import (
	"os"

	"github.com/schmitthub/gauge/internal/gauge"
)

func main() {
	os.Exit(gauge.Main())
}
