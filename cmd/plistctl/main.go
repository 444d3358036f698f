// Command plistctl inspects and updates the product and build versions
// recorded in an iOS backup bundle.
package main

func main() {
	execute()
}
