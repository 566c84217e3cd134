package main

import "loan-amortizer/cmd"

func main() {
	cmd.Execute()
}
