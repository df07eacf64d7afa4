package main

import (
	typesetcmd "github.com/ebookworks/typeset/cmd"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	typesetcmd.SetVersionInfo(version, commit)
	typesetcmd.Execute()
}
