// main.go
package main

import "umkm-marketplace/cmd"

func main() {
	cmd.Execute()
}
