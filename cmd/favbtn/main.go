// Command favbtn inspects and demonstrates the favorite button animation.
package main

func main() {
	Execute()
}
