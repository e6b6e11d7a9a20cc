package memo

import (
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/goccy/go-json"
)

// Args is a call's arguments split the way dynamic callers pass them.
// Positional order matters; keyword order does not.
type Args struct {
	Positional []any
	Keyword    map[string]any
}

type canonicalArgs struct {
	Positional []any    `json:"args"`
	Keyword    [][2]any `json:"kwargs"`
}

// ArgsKey renders a as JSON with keyword arguments sorted by name, so calls
// that differ only in keyword order produce the same key.
func ArgsKey(a Args) (string, error) {
	names := make([]string, 0, len(a.Keyword))
	for name := range a.Keyword {
		names = append(names, name)
	}
	sort.Strings(names)

	c := canonicalArgs{
		Positional: a.Positional,
		Keyword:    make([][2]any, 0, len(names)),
	}
	if c.Positional == nil {
		c.Positional = []any{}
	}
	for _, name := range names {
		c.Keyword = append(c.Keyword, [2]any{name, a.Keyword[name]})
	}

	b, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("encode args: %w", err)
	}
	return string(b), nil
}

// JSONKey renders any JSON-encodable argument. Map keys are emitted sorted.
func JSONKey[A any](arg A) (string, error) {
	b, err := json.Marshal(arg)
	if err != nil {
		return "", fmt.Errorf("encode arg: %w", err)
	}
	return string(b), nil
}

// StringKey uses a string argument as its own canonical form.
func StringKey(arg string) (string, error) {
	return arg, nil
}

// cacheKey builds the final key from a function name and canonical argument.
func cacheKey(prefix, name, canonical string) string {
	d := xxhash.New()
	_, _ = d.WriteString(name)
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(canonical)
	return fmt.Sprintf("%s:%s:%016x", prefix, name, d.Sum64())
}
