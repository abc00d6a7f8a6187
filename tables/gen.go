//go:build generate
// +build generate

// This file documents (and, in a real deployment, would perform) the
// offline derivation of Default()'s data from upstream sources: the
// Unicode Character Database, unicode.org's emoji sequence files, and
// Unicode's security confusables.txt (the list in sources). It is not wired
// into any non-generate build and is not invoked by the engine itself.
// The engine always consumes the baked-in tables.Default() data as
// loaded constants.
package main

import (
	"fmt"
	"net/http"
	"os"
)

// source is one upstream file this derivation pipeline would fetch and
// fold into default.go's literal tables.
type source struct {
	name string
	url  string
}

var sources = []source{
	{"UnicodeData.txt", "https://unicode.org/Public/UCD/latest/ucd/UnicodeData.txt"},
	{"DerivedCombiningClass.txt", "https://unicode.org/Public/UCD/latest/ucd/extracted/DerivedCombiningClass.txt"},
	{"CompositionExclusions.txt", "https://unicode.org/Public/UCD/latest/ucd/CompositionExclusions.txt"},
	{"emoji-sequences.txt", "https://unicode.org/Public/emoji/latest/emoji-sequences.txt"},
	{"emoji-zwj-sequences.txt", "https://unicode.org/Public/emoji/latest/emoji-zwj-sequences.txt"},
	{"confusables.txt", "https://www.unicode.org/Public/security/latest/confusables.txt"},
}

func main() {
	for _, s := range sources {
		if err := fetch(s); err != nil {
			fmt.Fprintf(os.Stderr, "fetch %s: %v\n", s.name, err)
			os.Exit(1)
		}
	}
	fmt.Println("fetched", len(sources), "source files; fold them into default.go by hand")
}

func fetch(s source) error {
	resp, err := http.Get(s.url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: unexpected status %s", s.url, resp.Status)
	}
	f, err := os.Create(s.name)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := fmt.Fprintf(f, "# fetched from %s\n", s.url); err != nil {
		return err
	}
	_, err = f.ReadFrom(resp.Body)
	return err
}
