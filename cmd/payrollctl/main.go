package main

import "payroll-tracker/internal/cli"

func main() {
	cli.Execute()
}
