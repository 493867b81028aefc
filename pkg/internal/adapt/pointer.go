package adapt

func ToPointer[T any](v T) *T {
	return &v
}

// ToPointerOk returns nil unless ok, for optional values read from a loader.
func ToPointerOk[T any](v T, ok bool) *T {
	if !ok {
		return nil
	}
	return &v
}
