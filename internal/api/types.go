package api

// RawTrade is one disclosure record as returned by a feed.
//
// The two feeds use different field names for the same data, so the decoded
// form stays loosely typed and is resolved by the normalizer. JSON keeps the
// original bytes verbatim for the stored audit payload.
type RawTrade struct {
	// Fields is the decoded JSON object, or nil when the array element
	// was not an object at all.
	Fields map[string]any

	// JSON is the original serialized record.
	JSON []byte

	// Chamber is the source feed tag (House or Senate), applied by the
	// caller since some feeds omit it from the payload.
	Chamber string
}

// StringField returns the first present non-empty string among the given
// field names, or def when none is present. Non-string values are ignored.
func (r RawTrade) StringField(def string, names ...string) string {
	for _, name := range names {
		v, ok := r.Fields[name]
		if !ok {
			continue
		}
		s, ok := v.(string)
		if !ok || s == "" {
			continue
		}
		return s
	}
	return def
}
