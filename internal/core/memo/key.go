package memo

import (
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
)

// canon sorts object keys and keeps numbers exact so equal values encode equally
var canon = sonic.Config{SortMapKeys: true, UseNumber: true}.Froze()

// Key builds "source:op:<canonical json>" for a logical query
// parts are encoded as one value when there is a single part and as an array otherwise
// nil or empty parts encode as {}
func Key(source, op string, parts ...any) string {
	var b strings.Builder
	b.WriteString(source)
	b.WriteByte(':')
	b.WriteString(op)
	b.WriteByte(':')

	switch len(parts) {
	case 0:
		b.WriteString("{}")
	case 1:
		b.WriteString(canonical(parts[0]))
	default:
		b.WriteString(canonical(parts))
	}
	return b.String()
}

// canonical re-encodes v through generic maps so struct field order and map
// iteration order never change the output
func canonical(v any) string {
	if v == nil {
		return "{}"
	}
	raw, err := canon.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%#v", v)
	}
	var generic any
	if err := canon.Unmarshal(raw, &generic); err != nil {
		return string(raw)
	}
	switch g := generic.(type) {
	case nil:
		return "{}"
	case map[string]any:
		if len(g) == 0 {
			return "{}"
		}
	}
	out, err := canon.Marshal(generic)
	if err != nil {
		return string(raw)
	}
	return string(out)
}
