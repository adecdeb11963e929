package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"scw-transfer/internal/scw"
)

// scwrename rewrites the influence names stored in a weight file, for the
// case where the destination scene uses different joint names than the
// scene the file was exported from. The result is written next to the
// source as <name>_replaced.scw so the original stays untouched.
func main() {
	file := flag.String("file", "", "Weight file to rewrite")
	search := flag.String("search", "", "Substring to replace in influence names")
	replace := flag.String("replace", "", "Replacement for -search")
	prefix := flag.String("prefix", "", "Prefix to prepend to every influence name")
	suffix := flag.String("suffix", "", "Suffix to append to every influence name")
	out := flag.String("out", "", "Output file (default: <file>_replaced.scw)")

	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "Error: -file is required.")
		os.Exit(1)
	}
	if *search == "" && *prefix == "" && *suffix == "" {
		fmt.Fprintln(os.Stderr, "Error: nothing to do; use -search/-replace or -prefix/-suffix.")
		os.Exit(1)
	}

	doc, err := scw.ReadFile(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *search != "" {
		n := doc.RenameInfluences(*search, *replace)
		fmt.Printf("Renamed %d influences\n", n)
	}
	if *prefix != "" || *suffix != "" {
		doc.AffixInfluences(*prefix, *suffix)
	}

	path := *out
	if path == "" {
		path = replacedPath(*file)
	}
	if err := scw.WriteDocumentFile(path, doc); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Saved: %s\n", path)
}

func replacedPath(file string) string {
	for _, ext := range []string{".scw.zst", ".scw"} {
		if strings.HasSuffix(file, ext) {
			return strings.TrimSuffix(file, ext) + "_replaced" + ext
		}
	}
	return file + "_replaced.scw"
}
