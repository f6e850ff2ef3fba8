package devto

import (
	"strings"

	"github.com/bytedance/sonic"
)

// tagList accepts both shapes dev.to uses for tag_list: an array on the
// list endpoint and a comma separated string on the single article endpoint
type tagList []string

// UnmarshalJSON implements json.Unmarshaler
func (t *tagList) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		*t = nil
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := sonic.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = splitTags(s)
		return nil
	}
	var arr []string
	if err := sonic.Unmarshal(b, &arr); err != nil {
		return err
	}
	*t = arr
	return nil
}

func splitTags(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
