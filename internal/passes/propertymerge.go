package passes

import "github.com/johndpope/SwiftRewriter/internal/intention"

// PropertyMerge implements spec.md §4.4.3: for every type, find pairs of
// methods whose selectors match a property's synthesized getter/setter.
// When found, the methods are removed, the property's mode records that it
// has an explicit implementation, a history entry is recorded on the
// property and on each removed method, and the removed methods' bodies
// move into the property's getter/setter slots.
func PropertyMerge(col *intention.Collection) error {
	for _, f := range col.Files {
		for _, c := range f.Classes {
			mergePropertiesOf(c.Props, &c.Methods)
		}
		for _, e := range f.Extensions {
			mergePropertiesOf(e.Props, &e.Methods)
		}
		for _, p := range f.Protocols {
			mergePropertiesOf(p.Props, &p.Methods)
		}
	}
	return nil
}

func mergePropertiesOf(props []*intention.PropertyIntention, methods *[]*intention.MethodIntention) {
	for _, p := range props {
		getter := findAndRemoveMethod(methods, p.GetterSelector())
		setter := findAndRemoveMethod(methods, p.SetterSelector())

		if getter == nil && setter == nil {
			continue
		}

		if getter != nil {
			p.GetterBody = getter.Body
			p.History().Append("PropertyMerge", "fused getter method "+p.GetterSelector().String(), p.SourceLoc())
			getter.History().Append("PropertyMerge", "absorbed into property "+p.Name, getter.SourceLoc())
		}
		if setter != nil {
			p.SetterBody = setter.Body
			p.History().Append("PropertyMerge", "fused setter method "+p.SetterSelector().String(), p.SourceLoc())
			setter.History().Append("PropertyMerge", "absorbed into property "+p.Name, setter.SourceLoc())
		}

		if setter != nil {
			p.Mode = intention.EPropertyMode.ComputedGetterSetter()
		} else {
			p.Mode = intention.EPropertyMode.ComputedGetter()
		}
	}
}

func findAndRemoveMethod(methods *[]*intention.MethodIntention, sel intention.Selector) *intention.MethodIntention {
	for i, m := range *methods {
		if m.Signature.Selector.Equal(sel) {
			found := m
			*methods = append((*methods)[:i], (*methods)[i+1:]...)
			return found
		}
	}
	return nil
}
