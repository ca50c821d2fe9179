package order

// Patch describes a partial update to a persisted order record.
// Only non-nil fields are merged into the stored record; existing fields are
// never removed, only overwritten. To clear a previously recorded error, set
// LastError to a pointer to the empty string.
//
// IfDispatchSeq optionally fences the patch: when set, the store applies the
// patch only if the stored record's dispatch sequence still equals the given
// value. A fenced patch against a record whose sequence has moved on is a
// no-op (the record exists, but the outcome is stale). This is how concurrent
// resend races are resolved deterministically.
type Patch struct {
	Status      *Status
	TrackingID  *string
	LastError   *string
	DispatchSeq *int

	IfDispatchSeq *int
}

// IsStaleFor reports whether the patch is fenced out by the given stored
// dispatch sequence.
func (p Patch) IsStaleFor(storedSeq int) bool {
	return p.IfDispatchSeq != nil && *p.IfDispatchSeq != storedSeq
}
