package meta

// Kind selects the object table a meta entry belongs to.
type Kind string

const (
	KindUser Kind = "user"
	KindPost Kind = "post"
)

func (k Kind) Valid() bool {
	return k == KindUser || k == KindPost
}

// Values holds every meta entry of one object. A key may carry several values.
type Values map[string][]string

// Get returns the first value of key.
func (v Values) Get(key string) string {
	if values := v[key]; len(values) > 0 {
		return values[0]
	}
	return ""
}

func (v Values) Add(key string, value string) {
	v[key] = append(v[key], value)
}
