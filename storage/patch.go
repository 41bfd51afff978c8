package storage

// patch copies src over dst when the field was supplied. Absent fields stay
// nil in their patch struct and leave the entity untouched; absence is not
// null.
func patch[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
