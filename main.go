package main

import "github.com/rishav98909/NO-OF-VILLAGES-TOWNS-HOUSEHOLDS-POPULATION-AND-AREA/cmd"

func main() {
	cmd.Execute()
}
