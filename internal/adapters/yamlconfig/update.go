package yamlconfig

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/renato0307/hookpin/internal/domain"
)

const frozenPrefix = "# frozen: "

// UpdateRevs rewrites the rev of every source matching an update.
// Only the rev scalars change: comments, quoting and layout are kept.
func (l *Loader) UpdateRevs(data []byte, updates []domain.RevUpdate) ([]byte, error) {
	if len(updates) == 0 {
		return data, nil
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}
	if len(root.Content) == 0 {
		return nil, fmt.Errorf("%w: document is empty", domain.ErrInvalidConfig)
	}

	byRepo := make(map[string]domain.RevUpdate, len(updates))
	for _, u := range updates {
		byRepo[u.Repo] = u
	}

	type edit struct {
		node   *yaml.Node
		update domain.RevUpdate
	}
	var edits []edit

	reposNode := childNode(root.Content[0], "repos")
	if reposNode == nil || reposNode.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: repos is not a list", domain.ErrInvalidConfig)
	}
	for _, repoNode := range reposNode.Content {
		urlNode := childNode(repoNode, "repo")
		revNode := childNode(repoNode, "rev")
		if urlNode == nil || revNode == nil {
			continue
		}
		if u, ok := byRepo[urlNode.Value]; ok {
			edits = append(edits, edit{node: revNode, update: u})
		}
	}

	lines := strings.SplitAfter(string(data), "\n")

	// Right to left so earlier columns stay valid on shared lines
	sort.Slice(edits, func(i, j int) bool {
		if edits[i].node.Line != edits[j].node.Line {
			return edits[i].node.Line < edits[j].node.Line
		}
		return edits[i].node.Column > edits[j].node.Column
	})

	for _, e := range edits {
		idx := e.node.Line - 1
		if idx < 0 || idx >= len(lines) {
			return nil, fmt.Errorf("rev for %s is outside the document", e.update.Repo)
		}
		replaced, err := replaceScalar(lines[idx], e.node, e.update)
		if err != nil {
			return nil, fmt.Errorf("failed to update rev for %s: %w", e.update.Repo, err)
		}
		lines[idx] = replaced
	}

	return []byte(strings.Join(lines, "")), nil
}

// replaceScalar swaps the rev scalar on line and sets or clears the frozen comment
func replaceScalar(line string, node *yaml.Node, u domain.RevUpdate) (string, error) {
	ending := ""
	switch {
	case strings.HasSuffix(line, "\r\n"):
		ending = "\r\n"
	case strings.HasSuffix(line, "\n"):
		ending = "\n"
	}
	body := strings.TrimSuffix(line, ending)

	col := node.Column - 1
	if col < 0 || col > len(body) {
		return "", fmt.Errorf("unexpected column %d", node.Column)
	}
	prefix, rest := body[:col], body[col:]

	quote := ""
	switch node.Style {
	case yaml.DoubleQuotedStyle:
		quote = `"`
	case yaml.SingleQuotedStyle:
		quote = "'"
	case yaml.LiteralStyle, yaml.FoldedStyle:
		return "", fmt.Errorf("block scalars are not supported for rev")
	}

	var tail string
	if quote != "" {
		end := strings.Index(rest[1:], quote)
		if end < 0 {
			return "", fmt.Errorf("unterminated quoted rev")
		}
		tail = rest[end+2:]
	} else {
		if !strings.HasPrefix(rest, node.Value) {
			return "", fmt.Errorf("rev '%s' not found at line %d", node.Value, node.Line)
		}
		tail = rest[len(node.Value):]
	}

	comment := ""
	if idx := strings.Index(tail, "#"); idx >= 0 {
		comment = strings.TrimSpace(tail[idx:])
		tail = tail[:idx]
	}
	tail = strings.TrimRight(tail, " \t")
	if strings.HasPrefix(comment, frozenPrefix) || u.FrozenTag != "" {
		comment = ""
		if u.FrozenTag != "" {
			comment = frozenPrefix + u.FrozenTag
		}
	}

	out := prefix + quote + u.Rev + quote + tail
	if comment != "" {
		out += "  " + comment
	}
	return out + ending, nil
}
