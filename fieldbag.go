package polis

// Canonical field names used in a FieldBag. Strategies write these names
// only; platform-prefixed keys never appear in a bag.
const (
	FieldTitle           = "title"
	FieldContent         = "content"
	FieldAuthor          = "author"
	FieldAuthorBio       = "author_bio"
	FieldAuthorFollowers = "author_followers"
	FieldAuthorFollowing = "author_following"
	FieldAuthorPostCount = "author_post_count"
	FieldPublishDate     = "publish_date"
	FieldViews           = "views"
	FieldLikes           = "likes"
	FieldShares          = "shares"
	FieldComments        = "comments"
	FieldSaves           = "saves"
	FieldReposts         = "reposts"
	FieldHashtags        = "hashtags"
	FieldMediaURLs       = "media_urls"
	FieldURL             = "url"
	FieldIsVideo         = "is_video"
	FieldPostHint        = "post_hint"
)

// FieldBag is a partial set of extracted fields keyed by canonical field
// name. A missing key and a nil value both mean "unknown"; insertion order
// is irrelevant.
type FieldBag map[string]any

// Has reports whether the bag holds a non-nil value for key.
func (b FieldBag) Has(key string) bool {
	v, ok := b[key]
	return ok && v != nil
}

// Set stores a value. Nil values are dropped so they never shadow a later
// strategy's contribution during a merge.
func (b FieldBag) Set(key string, v any) {
	if v == nil {
		return
	}
	b[key] = v
}

// SetInt stores an integer value.
func (b FieldBag) SetInt(key string, v int) {
	b[key] = v
}

// Merge fills empty fields of b from other using first-writer-wins
// semantics: a field already populated is never overwritten.
func (b FieldBag) Merge(other FieldBag) {
	for k, v := range other {
		if v == nil {
			continue
		}
		if !b.Has(k) {
			b[k] = v
		}
	}
}

// String returns the string value for key, if present.
func (b FieldBag) String(key string) (string, bool) {
	v, ok := b[key]
	if !ok || v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Int returns the integer value for key, if present. Stored int64 and
// float64 values (common with JSON parsers) are converted.
func (b FieldBag) Int(key string) (int, bool) {
	v, ok := b[key]
	if !ok || v == nil {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}

// IntPtr returns the integer value for key as a pointer, or nil when the
// field is unknown.
func (b FieldBag) IntPtr(key string) *int {
	n, ok := b.Int(key)
	if !ok {
		return nil
	}
	return &n
}

// StringPtr returns the string value for key as a pointer, or nil when the
// field is unknown or empty.
func (b FieldBag) StringPtr(key string) *string {
	s, ok := b.String(key)
	if !ok || s == "" {
		return nil
	}
	return &s
}

// Strings returns the string-slice value for key, if present.
func (b FieldBag) Strings(key string) ([]string, bool) {
	v, ok := b[key]
	if !ok || v == nil {
		return nil, false
	}
	s, ok := v.([]string)
	return s, ok
}

// Bool returns the boolean value for key; absent keys report false.
func (b FieldBag) Bool(key string) bool {
	v, ok := b[key]
	if !ok || v == nil {
		return false
	}
	t, _ := v.(bool)
	return t
}
