package passes

import "github.com/johndpope/SwiftRewriter/internal/intention"

// DuplicateTypeRemoval implements spec.md §4.4.2: within each file, when an
// @interface-sourced and an @implementation-sourced class share a name
// (the case of a private interface block declared in the same .m as its
// implementation — cross-file header/implementation pairs were already
// folded together by FileGrouping), merge the interface's content into the
// implementation's class using the same per-kind merge rules as File
// Grouping, then drop the interface-sourced duplicate.
func DuplicateTypeRemoval(col *intention.Collection) error {
	for _, f := range col.Files {
		dedupeClassesInFile(f)
	}
	return nil
}

func dedupeClassesInFile(f *intention.FileIntention) {
	byName := map[string][]*intention.ClassIntention{}
	for _, c := range f.Classes {
		byName[c.Name] = append(byName[c.Name], c)
	}

	for name, classes := range byName {
		if len(classes) < 2 {
			continue
		}
		target := implementationClassNamed(f, name)
		if target == nil {
			target = classes[len(classes)-1]
		}
		for _, c := range classes {
			if c == target {
				continue
			}
			mergeClassInto(c, target)
			target.History().Append("DuplicateTypeRemoval", "absorbed interface-sourced duplicate of "+name, target.SourceLoc())
			f.RemoveClass(c)
		}
	}
}
