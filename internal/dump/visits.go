package dump

import "time"

// Visit is the fingerprint recorded for a dump key.
type Visit struct {
	MTime time.Time
	// Formula is the serialized formula, nil for assets without one.
	Formula *string
}

func (v Visit) same(mtime time.Time, formula *string) bool {
	if !v.MTime.Equal(mtime) {
		return false
	}
	if v.Formula == nil || formula == nil {
		return v.Formula == nil && formula == nil
	}
	return *v.Formula == *formula
}

// Visits records the last fingerprint seen for every dump key during a
// single dump session. It is not safe for concurrent use.
type Visits struct {
	m map[string]Visit
}

func NewVisits() *Visits {
	return &Visits{m: make(map[string]Visit)}
}

func (v *Visits) Get(key string) (Visit, bool) {
	x, ok := v.m[key]
	return x, ok
}

func (v *Visits) Len() int { return len(v.m) }
