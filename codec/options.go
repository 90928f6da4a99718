package codec

// EncodeOptions configures a top-level Marshal call (SPEC_FULL.md §A.3).
type EncodeOptions struct {
	// Safe selects the bounds-checked encode path (spec §4.2). Safe
	// encode into an undersized buffer fails cleanly instead of writing
	// out of bounds; unsafe encode trusts the caller to have sized the
	// destination correctly and skips the checks.
	Safe bool

	// Deterministic exists for API symmetry with the teacher's
	// MarshalOptions.Deterministic. This library's map field codec
	// (field.Map) always sorts by key (SPEC_FULL.md §C), so output is
	// already deterministic regardless of this flag; it is not read by
	// Marshal.
	Deterministic bool
}

// DecodeOptions configures a top-level Unmarshal call.
type DecodeOptions struct {
	// Safe selects the bounds-checked decode path.
	Safe bool

	// DiscardUnknown exists for API symmetry with the teacher's
	// UnmarshalOptions.DiscardUnknown. This library's message codec has
	// no unknown-field retention layer (spec §4.12: "Unknown fields are
	// discarded by default"), so unknown fields are always discarded;
	// setting this to false does not change that.
	DiscardUnknown bool
}
