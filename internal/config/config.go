// Package config holds the explicit configuration structs threaded through
// the Type Mapper, AST readers, and the pretty-printer. Per Design Note 9
// ("pass as explicit configuration structs, never process-wide
// singletons"), none of these are read from package-level globals; the one
// intentional exception in this repository is the CLI's RunUIHooks
// (common.GetLifecycleMgr), used purely for terminal output.
package config

// MapperConfig is a translation-level Type Mapper setting (spec.md §4.1's
// MappingContext, as opposed to per-call-site). pipeline.Config carries it
// as Config.Mapper, but nothing reads it: the astreader builds each
// typemap.Context from region membership and the explicit nullability mark
// only, so typemap.Context.AlwaysNonnull is never set from here.
type MapperConfig struct {
	// AlwaysNonnull names the switch that, on typemap.Context, makes every
	// mapped type non-optional regardless of its nullability annotation.
	// Setting it here has no effect on a translation run.
	AlwaysNonnull bool
}

// ReaderConfig controls the AST readers (spec.md §4.3).
//
// The ivar-list access-level state machine spec.md §4.3 describes
// ("current ivar-list access level, starts private, switches on
// @private/@protected/@package/@public tokens") is resolved upstream of
// this package: the external parser walks each ivar list's marker tokens
// itself and attaches the already-resolved level to cst.IvarDecl.Access,
// the same way it resolves NS_ASSUME_NONNULL regions before handing them
// to this reader as a nullability.RegionSet. There is deliberately no
// default-access knob here to fall back on — readIvar (astreader) trusts
// cst.IvarDecl.Access completely.
type ReaderConfig struct {
	// HonorAssumeNonnullRegions controls whether NS_ASSUME_NONNULL_BEGIN/END
	// regions affect unspecified-nullability resolution. Disabling this is
	// only useful for isolating nullability-region bugs in the reader
	// itself; every production translation wants it on.
	HonorAssumeNonnullRegions bool
}

func DefaultReaderConfig() ReaderConfig {
	return ReaderConfig{
		HonorAssumeNonnullRegions: true,
	}
}

// WriterConfig controls the pretty-printer (spec.md §6's two enumerated
// options).
type WriterConfig struct {
	// OmitObjCCompatibility drops the @objc attribute on classes and
	// properties, an NSObject superclass, and the NSObjectProtocol entry an
	// inherited NSObject protocol would otherwise become, for callers who
	// don't need Objective-C interop on the translated output.
	OmitObjCCompatibility bool
	// PrintIntentionHistory renders each intention's history log as a
	// leading comment block above its declaration, for debugging a
	// translation run.
	PrintIntentionHistory bool
}
