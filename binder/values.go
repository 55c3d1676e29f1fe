package binder

import (
	"fmt"
	"maps"
	"net/http"
	"net/url"
	"slices"
	"strings"
)

const maxMultipartMemory = 32 << 20

// Form binds application/x-www-form-urlencoded and multipart/form-data
// fields into a *map[string]any. Bracketed names build nested values:
//
//	name=Jane            -> {"name": "Jane"}
//	tags[]=a&tags[]=b    -> {"tags": ["a", "b"]}
//	address[city]=Berlin -> {"address": {"city": "Berlin"}}
//
// A plain name sent more than once becomes a list.
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		target, err := mapTarget(v)
		if err != nil {
			return err
		}

		mediaType, err := requestMediaType(r)
		if err != nil {
			return err
		}

		var values url.Values
		switch mediaType {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			values = r.PostForm
		case "multipart/form-data":
			if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			values = url.Values(r.MultipartForm.Value)
		default:
			return fmt.Errorf("%w: got %s, expected form data", ErrUnsupportedMediaType, mediaType)
		}

		mergeValues(target, values)
		return nil
	}
}

// Query binds URL query parameters into a *map[string]any using the same
// naming rules as Form.
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		target, err := mapTarget(v)
		if err != nil {
			return err
		}
		values, err := url.ParseQuery(r.URL.RawQuery)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidQuery, err)
		}
		mergeValues(target, values)
		return nil
	}
}

// Values converts url.Values into the nested map form used by Form and Query.
func Values(values url.Values) map[string]any {
	out := make(map[string]any, len(values))
	mergeValues(out, values)
	return out
}

func mapTarget(v any) (map[string]any, error) {
	ptr, ok := v.(*map[string]any)
	if !ok || ptr == nil {
		return nil, fmt.Errorf("%w: got %T", ErrInvalidTarget, v)
	}
	if *ptr == nil {
		*ptr = make(map[string]any)
	}
	return *ptr, nil
}

func mergeValues(dst map[string]any, values url.Values) {
	for _, key := range slices.Sorted(maps.Keys(values)) {
		vals := values[key]
		if len(vals) == 0 {
			continue
		}
		setPath(dst, splitKey(key), vals)
	}
}

func setPath(dst map[string]any, path []string, vals []string) {
	m := dst
	for i, seg := range path {
		if i == len(path)-1 {
			m[seg] = scalarOrList(vals)
			return
		}
		if i == len(path)-2 && path[i+1] == "" {
			m[seg] = toList(vals)
			return
		}
		next, ok := m[seg].(map[string]any)
		if !ok {
			next = make(map[string]any)
			m[seg] = next
		}
		m = next
	}
}

// splitKey breaks "a[b][c]" into ["a", "b", "c"]. Names that are not well
// formed are used verbatim.
func splitKey(key string) []string {
	open := strings.IndexByte(key, '[')
	if open <= 0 || !strings.HasSuffix(key, "]") {
		return []string{key}
	}

	path := []string{key[:open]}
	rest := key[open:]
	for rest != "" {
		if rest[0] != '[' {
			return []string{key}
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return []string{key}
		}
		path = append(path, rest[1:end])
		rest = rest[end+1:]
	}

	// only a trailing [] means "append"
	for _, seg := range path[1 : len(path)-1] {
		if seg == "" {
			return []string{key}
		}
	}
	return path
}

func scalarOrList(vals []string) any {
	if len(vals) == 1 {
		return vals[0]
	}
	return toList(vals)
}

func toList(vals []string) []any {
	out := make([]any, len(vals))
	for i, v := range vals {
		out[i] = v
	}
	return out
}
