// Command respcodec decodes, encodes, converts, and inspects RESP-family
// wire frames from the command line.
package main

func main() {
	Execute()
}
