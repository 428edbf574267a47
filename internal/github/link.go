package github

import "strings"

// ParseLink parses the value of an HTTP Link header into a map from
// relation name to URL. The header lists entries of the form
//
//	<https://api.github.com/...?page=2>; rel="next"
//
// separated by commas, with optional whitespace around each segment.
// Segments without a well-formed <url> part or a rel parameter are
// skipped: a URL the parser cannot attribute to a relation is worse
// than no URL at all. A missing or empty header yields a nil map.
func ParseLink(value string) map[string]string {
	var relations map[string]string
	for _, segment := range strings.Split(value, ",") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		parts := strings.Split(segment, ";")
		target := strings.TrimSpace(parts[0])
		if len(target) < 2 || !strings.HasPrefix(target, "<") || !strings.HasSuffix(target, ">") {
			continue
		}
		u := target[1 : len(target)-1]
		if u == "" {
			continue
		}

		for _, param := range parts[1:] {
			name, ok := strings.CutPrefix(strings.TrimSpace(param), "rel=")
			if !ok {
				continue
			}
			name = strings.Trim(name, `"`)
			if name == "" {
				break
			}
			if relations == nil {
				relations = make(map[string]string)
			}
			relations[name] = u
			break
		}
	}
	return relations
}
