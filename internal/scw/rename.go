package scw

import "strings"

// RenameInfluences rewrites every influence name containing search, both
// in the header and in the record stream. The target shape name is never
// touched. Returns the number of distinct influences renamed.
func (d *Document) RenameInfluences(search, replace string) int {
	if search == "" {
		return 0
	}

	renamed := 0
	for i, name := range d.Header.Influences {
		if strings.Contains(name, search) {
			d.Header.Influences[i] = strings.ReplaceAll(name, search, replace)
			renamed++
		}
	}
	for i := range d.Records {
		d.Records[i].Influence = strings.ReplaceAll(d.Records[i].Influence, search, replace)
	}
	return renamed
}

// AffixInfluences prepends prefix and appends suffix to every influence
// name, in the header and in the record stream. The target shape name is
// never touched.
func (d *Document) AffixInfluences(prefix, suffix string) {
	for i, name := range d.Header.Influences {
		d.Header.Influences[i] = prefix + name + suffix
	}
	for i := range d.Records {
		d.Records[i].Influence = prefix + d.Records[i].Influence + suffix
	}
}
