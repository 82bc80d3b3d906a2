package main

import (
	"context"
	"os"

	"github.com/Xhelo-hub/bank-select-converter/internal/commands"
)

func main() {
	os.Exit(commands.Execute(context.Background()))
}
