package predicate

// equalValues compares two cell values, treating all integer kinds as one
// numeric domain and float32/float64 as another.
func equalValues(a, b interface{}) bool {
	if ai, ok := asInt(a); ok {
		if bi, ok := asInt(b); ok {
			return ai == bi
		}
		return false
	}
	if af, ok := asFloat(a); ok {
		if bf, ok := asFloat(b); ok {
			return af == bf
		}
		return false
	}
	return a == b
}

// asInt widens signed and unsigned integers. Unsigned values above the
// int64 range keep their own bit pattern in the high half so they never
// equal a negative number.
func asInt(v interface{}) (wideInt, bool) {
	switch n := v.(type) {
	case int:
		return signed(int64(n)), true
	case int8:
		return signed(int64(n)), true
	case int16:
		return signed(int64(n)), true
	case int32:
		return signed(int64(n)), true
	case int64:
		return signed(n), true
	case uint:
		return unsigned(uint64(n)), true
	case uint8:
		return unsigned(uint64(n)), true
	case uint16:
		return unsigned(uint64(n)), true
	case uint32:
		return unsigned(uint64(n)), true
	case uint64:
		return unsigned(n), true
	}
	return wideInt{}, false
}

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

type wideInt struct {
	neg bool
	mag uint64
}

func signed(n int64) wideInt {
	if n < 0 {
		return wideInt{neg: true, mag: uint64(-(n + 1)) + 1}
	}
	return wideInt{mag: uint64(n)}
}

func unsigned(n uint64) wideInt {
	return wideInt{mag: n}
}
