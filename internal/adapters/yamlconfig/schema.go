package yamlconfig

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/renato0307/hookpin/internal/domain"
)

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "hookpin-config.json"

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// configSchema compiles the embedded schema once
func configSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
		if err != nil {
			compileErr = fmt.Errorf("failed to parse config schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("failed to add config schema resource: %w", err)
			return
		}

		compiled, compileErr = c.Compile(schemaURL)
		if compileErr != nil {
			compileErr = fmt.Errorf("failed to compile config schema: %w", compileErr)
		}
	})
	return compiled, compileErr
}

// validateSchema checks the document tree against the config schema and
// returns one issue per failing location
func validateSchema(root *yaml.Node) ([]error, error) {
	sch, err := configSchema()
	if err != nil {
		return nil, err
	}

	err = sch.Validate(nodeValue(root))
	if err == nil {
		return nil, nil
	}

	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return nil, err
	}

	out := verr.BasicOutput()
	units := out.Errors
	if len(units) == 0 {
		units = []jsonschema.OutputUnit{*out}
	}

	var issues []error
	seen := make(map[string]bool)
	for _, unit := range units {
		if unit.Error == nil {
			continue
		}
		message := unit.Error.String()
		if message == "validation failed" && len(units) > 1 {
			continue
		}
		key := unit.InstanceLocation + "\x00" + message
		if seen[key] {
			continue
		}
		seen[key] = true

		segments := pointerSegments(unit.InstanceLocation)
		issues = append(issues, &domain.ValidationIssue{
			Line:    lineAt(root, segments),
			Message: message,
			Path:    pathString(segments),
		})
	}
	return issues, nil
}

// nodeValue converts a yaml tree to the value model the validator expects
func nodeValue(n *yaml.Node) any {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil
		}
		return nodeValue(n.Content[0])
	case yaml.AliasNode:
		return nodeValue(n.Alias)
	case yaml.MappingNode:
		m := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			m[n.Content[i].Value] = nodeValue(n.Content[i+1])
		}
		return m
	case yaml.SequenceNode:
		items := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			items = append(items, nodeValue(c))
		}
		return items
	}

	switch n.ShortTag() {
	case "!!null":
		return nil
	case "!!bool":
		b, err := strconv.ParseBool(strings.ToLower(n.Value))
		if err != nil {
			return n.Value
		}
		return b
	case "!!int", "!!float":
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			var i int64
			if err := n.Decode(&i); err == nil {
				return json.Number(strconv.FormatInt(i, 10))
			}
			return n.Value
		}
		return json.Number(strconv.FormatFloat(f, 'f', -1, 64))
	default:
		return n.Value
	}
}

// pointerSegments splits a JSON pointer ("/repos/0/rev")
func pointerSegments(pointer string) []string {
	pointer = strings.TrimPrefix(pointer, "/")
	if pointer == "" {
		return nil
	}
	parts := strings.Split(pointer, "/")
	for i, p := range parts {
		p = strings.ReplaceAll(p, "~1", "/")
		parts[i] = strings.ReplaceAll(p, "~0", "~")
	}
	return parts
}

// pathString renders segments as repos[0].hooks[1].id
func pathString(segments []string) string {
	var b strings.Builder
	for _, s := range segments {
		if _, err := strconv.Atoi(s); err == nil {
			fmt.Fprintf(&b, "[%s]", s)
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s)
	}
	return b.String()
}

// lineAt returns the line of the deepest node reachable through segments
func lineAt(root *yaml.Node, segments []string) int {
	n := root
	if n.Kind == yaml.DocumentNode && len(n.Content) > 0 {
		n = n.Content[0]
	}
	line := n.Line
	for _, seg := range segments {
		next := childNode(n, seg)
		if next == nil {
			break
		}
		n = next
		line = n.Line
	}
	return line
}

func childNode(n *yaml.Node, seg string) *yaml.Node {
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	switch n.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			if n.Content[i].Value == seg {
				return n.Content[i+1]
			}
		}
	case yaml.SequenceNode:
		idx, err := strconv.Atoi(seg)
		if err == nil && idx >= 0 && idx < len(n.Content) {
			return n.Content[idx]
		}
	}
	return nil
}
