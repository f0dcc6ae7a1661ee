package site

import (
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Attr is one attribute of a head tag. Attributes keep declaration order.
type Attr struct {
	Key string
	Val string
}

// HeadTag is a (tag, attributes, content) directive injected into the page head.
type HeadTag struct {
	Tag     string
	Attrs   []Attr
	Content string
}

// Attr returns the value of attribute key.
func (h HeadTag) Attr(key string) (string, bool) {
	for _, a := range h.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// Meta builds a <meta> tag from alternating key, value pairs.
func Meta(kv ...string) HeadTag { return tagWithPairs("meta", kv) }

// Link builds a <link> tag from alternating key, value pairs.
func Link(kv ...string) HeadTag { return tagWithPairs("link", kv) }

func tagWithPairs(tag string, kv []string) HeadTag {
	h := HeadTag{Tag: tag}
	for i := 0; i+1 < len(kv); i += 2 {
		h.Attrs = append(h.Attrs, Attr{Key: kv[i], Val: kv[i+1]})
	}
	return h
}

var tagName = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// UnmarshalYAML accepts the generator's array form [tag, {attrs}, content]
// and a mapping form {tag, attrs, content}.
func (h *HeadTag) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		if len(node.Content) < 1 || len(node.Content) > 3 {
			return fmt.Errorf("line %d: head tag needs 1 to 3 elements, got %d", node.Line, len(node.Content))
		}
		if err := node.Content[0].Decode(&h.Tag); err != nil {
			return err
		}
		if len(node.Content) > 1 {
			attrs, err := decodeAttrs(node.Content[1])
			if err != nil {
				return err
			}
			h.Attrs = attrs
		}
		if len(node.Content) > 2 {
			return node.Content[2].Decode(&h.Content)
		}
		return nil
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, val := node.Content[i], node.Content[i+1]
			switch key.Value {
			case "tag":
				if err := val.Decode(&h.Tag); err != nil {
					return err
				}
			case "attrs":
				attrs, err := decodeAttrs(val)
				if err != nil {
					return err
				}
				h.Attrs = attrs
			case "content":
				if err := val.Decode(&h.Content); err != nil {
					return err
				}
			default:
				return fmt.Errorf("line %d: unknown head tag field %q", key.Line, key.Value)
			}
		}
		return nil
	default:
		return fmt.Errorf("line %d: head tag must be a list or a mapping", node.Line)
	}
}

func decodeAttrs(node *yaml.Node) ([]Attr, error) {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: head tag attributes must be a mapping", node.Line)
	}
	attrs := make([]Attr, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var a Attr
		if err := node.Content[i].Decode(&a.Key); err != nil {
			return nil, err
		}
		if err := node.Content[i+1].Decode(&a.Val); err != nil {
			return nil, err
		}
		attrs = append(attrs, a)
	}
	return attrs, nil
}

// MarshalYAML emits the compact array form, keeping attribute order.
func (h HeadTag) MarshalYAML() (any, error) {
	attrs := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, a := range h.Attrs {
		attrs.Content = append(attrs.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: a.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: a.Val},
		)
	}
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
	seq.Content = append(seq.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: h.Tag}, attrs)
	if h.Content != "" {
		seq.Content = append(seq.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: h.Content})
	}
	return seq, nil
}

// voidTags cannot carry text content.
var voidTags = map[string]bool{"base": true, "link": true, "meta": true}

func (h HeadTag) validate() error {
	if !tagName.MatchString(h.Tag) {
		return fmt.Errorf("invalid tag name %q", h.Tag)
	}
	if voidTags[h.Tag] && h.Content != "" {
		return fmt.Errorf("<%s> cannot have content", h.Tag)
	}
	for _, a := range h.Attrs {
		if a.Key == "" {
			return fmt.Errorf("<%s> has an attribute without a name", h.Tag)
		}
	}
	return nil
}
