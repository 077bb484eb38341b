package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("start")
	defer fmt.Println("never printed")

	func() {
		os.Exit(2)
	}()

	os.Exit(1) // want "direct call to os.Exit in main function"
}

func exit() {
	os.Exit(3)
}
