// Command xmltokdump parses an XML document with xmltok/dom and
// prints its innerHTML, or the parser's error message on failure.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/tinytok/xmltok/dom"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("xmltokdump: ")

	scratch := flag.Int("scratch", 64*1024, "name-stack scratch buffer size in bytes")
	flag.Parse()

	var in io.Reader = os.Stdin
	if args := flag.Args(); len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		in = f
	}

	doc := dom.NewDocument()
	if !doc.ParseReader(in, make([]byte, *scratch)) {
		log.Fatal(doc.ErrorMessage())
	}

	fmt.Println(doc.Root().InnerHTML())
}
