package search

import "strings"

// LocalParams are the key/value pairs of a "{!key=value ...}" prefix, as used to tag filters
// and to exclude tagged filters from facet counts
type LocalParams map[string]string

// ParseLocalParams splits a local params prefix from the rest of s. Both "{!ex=a}q" and
// "{ex=a}q" are understood. If s carries no prefix, an empty LocalParams and s are returned.
func ParseLocalParams(s string) (LocalParams, string) {
	params := LocalParams{}
	if !strings.HasPrefix(s, "{") {
		return params, s
	}
	end := strings.IndexByte(s, '}')
	if end < 0 {
		return params, s
	}
	body := strings.TrimPrefix(s[1:end], "!")
	for _, pair := range strings.Fields(body) {
		key, value, found := strings.Cut(pair, "=")
		if !found {
			continue
		}
		params[key] = value
	}
	return params, s[end+1:]
}

// Excluded returns the tags listed in the "ex" param
func (l LocalParams) Excluded() []string {
	return splitList(l["ex"])
}

// Tags returns the tags listed in the "tag" param
func (l LocalParams) Tags() []string {
	return splitList(l["tag"])
}

// RemoveLocalParamPrefix returns q without its leading "{...}" part, i.e. everything after the
// first '}'. Strings without '}' are returned unchanged.
func RemoveLocalParamPrefix(q string) string {
	if index := strings.IndexByte(q, '}'); index >= 0 {
		return q[index+1:]
	}
	return q
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			list = append(list, p)
		}
	}
	return list
}
