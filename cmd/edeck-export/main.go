// cmd/edeck-export/main.go
package main

import (
	"bytes"
	"fmt"
	"os"

	"edeck/internal/exportapp"
)

func main() {
	var out, errBuf bytes.Buffer
	code := exportapp.Run(os.Args[1:], &out, &errBuf)

	if out.Len() > 0 {
		fmt.Print(out.String())
	}
	if errBuf.Len() > 0 {
		fmt.Fprint(os.Stderr, errBuf.String())
	}
	os.Exit(code)
}
