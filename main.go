package main

func main() {
	StartServer()
}
