package data

// Undefined and Null have no natural struct encoding, so both marshal as
// JSON null. Every other value type already encodes as its underlying Go
// type.

func (v Undefined) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

func (v Null) MarshalJSON() ([]byte, error) { return []byte("null"), nil }
