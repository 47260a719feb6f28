package internal

// IndexByInt returns the element at position i of a sequence. Out-of-range
// positions and non-sequence values yield Null.
func IndexByInt(v Value, i int64) Value {
	seq, ok := v.AsSequence()
	if !ok || i < 0 || i >= int64(len(seq)) {
		return Null()
	}
	return seq[i]
}

// IndexByKey looks key up in a mapping or record.
//
// Records are tried as: public field, then (only when allowPrivate is set and
// the record supports it) private field, then the single-argument accessor.
// Every miss is silent and yields Null.
func IndexByKey(v Value, key string, allowPrivate bool) Value {
	switch v.Kind() {
	case KindMapping:
		m, _ := v.AsMapping()
		if val, ok := m[key]; ok {
			return val
		}
		return Null()

	case KindRecord:
		rec, _ := v.AsRecord()
		if val, ok := rec.LookupField(key); ok {
			return val
		}
		if allowPrivate {
			if pr, ok := rec.(PrivateFieldRecord); ok {
				if val, ok := pr.LookupPrivateField(key); ok {
					return val
				}
			}
		}
		if val, ok := rec.LookupAccessor(key); ok {
			return val
		}
		return Null()

	default:
		return Null()
	}
}
