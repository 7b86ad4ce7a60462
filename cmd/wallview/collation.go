package main

import (
	"os"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"wallview/internal/project"
)

// sortByName orders projects for display. Numeric runs compare by value so
// workshop IDs like 9 and 10 sort naturally.
func sortByName(projects []project.Descriptor, tag language.Tag) {
	c := collate.New(tag, collate.Loose, collate.Numeric)
	slices.SortStableFunc(projects, func(a, b project.Descriptor) int {
		return c.CompareString(a.Name, b.Name)
	})
}

// collationTag derives a language tag from the POSIX locale variables.
func collationTag() language.Tag {
	for _, key := range []string{"LC_ALL", "LC_COLLATE", "LANG"} {
		value := strings.TrimSpace(os.Getenv(key))
		if value == "" || value == "C" || value == "POSIX" {
			continue
		}
		if i := strings.IndexAny(value, ".@"); i >= 0 {
			value = value[:i]
		}
		tag, err := language.Parse(strings.ReplaceAll(value, "_", "-"))
		if err == nil {
			return tag
		}
	}
	return language.Und
}
