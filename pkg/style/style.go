package style

// Map is an open set of style properties keyed by camelCase property name.
// Values are whatever the downstream renderer accepts (strings, numbers).
type Map map[string]any

// Empty reports whether the map has no properties. A nil map is empty.
func (m Map) Empty() bool {
	return len(m) == 0
}

// Clone returns a fresh copy of the map, or nil for an empty map.
func (m Map) Clone() Map {
	if len(m) == 0 {
		return nil
	}
	out := make(Map, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
