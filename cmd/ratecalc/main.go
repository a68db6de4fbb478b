package main

import (
	"github.com/policyrate/interest-calculator/internal/cli"
)

func main() {
	cli.Execute()
}
