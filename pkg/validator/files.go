package validator

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidMessages is returned when a message file is not a flat map of
// rule name to template.
var ErrInvalidMessages = errors.New("invalid validation messages")

// LoadSpecFile reads a RuleSpec from a YAML or JSON file.
func LoadSpecFile(path string) (RuleSpec, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rule spec %s: %w", path, err)
	}
	return ParseSpecYAML(content)
}

// ParseSpecYAML decodes a RuleSpec from YAML (or JSON) keeping the
// declaration order of every field's rules:
//
//	email: [required, email]
//	name:
//	  required:
//	  betweenLength: [2, 64]
//	address:
//	  array:
//	    city: [required]
func ParseSpecYAML(content []byte) (RuleSpec, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, errors.Join(ErrRuleParsing, err)
	}
	if len(doc.Content) == 0 {
		return RuleSpec{}, nil
	}
	return specFromNode(doc.Content[0])
}

func specFromNode(n *yaml.Node) (RuleSpec, error) {
	n = resolveAlias(n)
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: expected a mapping of fields", ErrRuleParsing, n.Line)
	}

	spec := make(RuleSpec, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		decl, err := declFromNode(n.Content[i+1])
		if err != nil {
			return nil, err
		}
		spec[n.Content[i].Value] = decl
	}
	return spec, nil
}

// declFromNode turns a field declaration into an ordered entry list.
func declFromNode(n *yaml.Node) (any, error) {
	n = resolveAlias(n)
	switch n.Kind {
	case yaml.SequenceNode:
		entries := make([]any, 0, len(n.Content))
		for _, item := range n.Content {
			item = resolveAlias(item)
			switch item.Kind {
			case yaml.ScalarNode:
				entries = append(entries, item.Value)
			case yaml.MappingNode:
				more, err := entriesFromMapping(item)
				if err != nil {
					return nil, err
				}
				entries = append(entries, more...)
			default:
				return nil, fmt.Errorf("%w: line %d: unexpected rule entry", ErrRuleParsing, item.Line)
			}
		}
		return entries, nil
	case yaml.MappingNode:
		return entriesFromMapping(n)
	}

	// Left to ParseRules to reject.
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, errors.Join(ErrRuleParsing, err)
	}
	return v, nil
}

func entriesFromMapping(n *yaml.Node) ([]any, error) {
	entries := make([]any, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i].Value, resolveAlias(n.Content[i+1])
		if isIndexKey(key) {
			switch value.Kind {
			case yaml.ScalarNode:
				entries = append(entries, value.Value)
				continue
			case yaml.MappingNode:
				more, err := entriesFromMapping(value)
				if err != nil {
					return nil, err
				}
				entries = append(entries, more...)
				continue
			}
		}

		param, err := paramFromNode(value)
		if err != nil {
			return nil, err
		}
		entries = append(entries, map[string]any{key: param})
	}
	return entries, nil
}

func paramFromNode(n *yaml.Node) (any, error) {
	n = resolveAlias(n)
	if n.Kind == yaml.MappingNode {
		return specFromNode(n)
	}
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, errors.Join(ErrRuleParsing, err)
	}
	return v, nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

// LoadMessagesFile reads message template overrides from a YAML or JSON file.
func LoadMessagesFile(path string) (map[string]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read messages %s: %w", path, err)
	}
	return ParseMessages(content)
}

// ParseMessages decodes a flat rule name -> template map.
func ParseMessages(content []byte) (map[string]string, error) {
	var messages map[string]string
	if err := yaml.Unmarshal(content, &messages); err != nil {
		return nil, errors.Join(ErrInvalidMessages, err)
	}
	if messages == nil {
		messages = map[string]string{}
	}
	return messages, nil
}
