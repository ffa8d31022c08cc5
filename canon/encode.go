// Package canon implements the deterministic, byte-exact encoding that
// block hashing and transaction signing depend on (spec.md §4.1). Any
// implementation that is not byte-identical across nodes breaks
// consensus, so the rules are narrow and explicit:
//
//   - object keys in ascending lexicographic (codepoint) order
//   - no insignificant whitespace
//   - numbers: integers as in standard JSON; floats in the shortest form
//     that round-trips to the same value, always carrying a decimal point
//   - strings: double-quoted, minimally escaped
//
// Go's encoding/json already sorts map[string]any keys and already
// chooses the shortest round-tripping decimal for float64 — but it drops
// the decimal point for whole-numbered floats (1700000000.0 marshals as
// "1700000000"), while every reference encoding in this system's lineage
// is Python's json.dumps, which always keeps the ".0". That single
// divergence would break hash/signature compatibility with any other
// implementation of this protocol, so the encoder below is a small
// hand-written walker over the handful of JSON value shapes the preimage
// needs (map[string]any, []any, string, float64, int64, uint64, bool,
// nil) rather than a call into encoding/json. No third-party
// canonical-JSON package exists anywhere in the retrieval pack (searched;
// none found), so this remains intentionally stdlib-only — see
// DESIGN.md.
package canon

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
)

// Encode serializes v using the deterministic rules above and returns the
// raw bytes that must be hashed or signed.
func Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeValue(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeValue(buf *bytes.Buffer, v any) error {
	switch val := v.(type) {
	case nil:
		buf.WriteString("null")
	case bool:
		if val {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case string:
		encodeString(buf, val)
	case int:
		buf.WriteString(strconv.FormatInt(int64(val), 10))
	case int64:
		buf.WriteString(strconv.FormatInt(val, 10))
	case uint64:
		buf.WriteString(strconv.FormatUint(val, 10))
	case float64:
		buf.WriteString(FormatFloat(val))
	case map[string]any:
		return encodeObject(buf, val)
	case []any:
		return encodeArray(buf, val)
	default:
		return fmt.Errorf("canon: unsupported value type %T", v)
	}
	return nil
}

func encodeObject(buf *bytes.Buffer, m map[string]any) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		encodeString(buf, k)
		buf.WriteByte(':')
		if err := encodeValue(buf, m[k]); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func encodeArray(buf *bytes.Buffer, arr []any) error {
	buf.WriteByte('[')
	for i, item := range arr {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeValue(buf, item); err != nil {
			return err
		}
	}
	buf.WriteByte(']')
	return nil
}

// encodeString writes s as a minimally-escaped, double-quoted JSON string.
func encodeString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(buf, `\u%04x`, r)
			} else {
				buf.WriteRune(r)
			}
		}
	}
	buf.WriteByte('"')
}

// FormatFloat renders f as the shortest round-tripping fixed-point
// decimal, always carrying at least one digit after the point. This is
// what Python's json.dumps emits for zero and for magnitudes from 1e-4 up
// to (not including) 1e16; outside that range Python switches to exponent
// notation, and FormatFloat does not.
func FormatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			return s
		}
	}
	return s + ".0"
}
