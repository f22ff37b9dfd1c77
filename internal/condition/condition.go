package condition

import (
	"os"
	"strings"
)

var inTest = strings.HasSuffix(strings.TrimSuffix(os.Args[0], ".exe"), ".test") ||
	strings.Contains(os.Args[0], "/_test/")

// InTest returns true when the generator is being tested
func InTest() bool {
	return inTest
}

// InGoGenerate returns true when we were invoked through a //go:generate directive
func InGoGenerate() bool {
	return os.Getenv("GOFILE") != "" && os.Getenv("GOPACKAGE") != ""
}
