package main

import "github.com/capyflow/tomlfmt/cmd"

func main() {
	cmd.Execute()
}
