// Package gedcom parses GEDCOM-style hierarchical text into the normalized
// family model. Parsing happens in two layers: a record-tree parser that
// turns level-numbered lines into a tag tree with no domain knowledge
// (tree.go), and a decoder that walks that tree and extracts individuals
// and families (decoder.go).
package gedcom

import (
	"bufio"
	"strconv"
	"strings"
)

// Node is one tagged record in the parsed tree. Exactly one of XrefID and
// Value is normally set: top-level records carry their own cross-reference
// id in XrefID, nested lines carry a scalar or pointer payload in Value.
type Node struct {
	Tag      string
	XrefID   string  // captured id of this record, e.g. "@I1@"
	Value    string  // scalar payload or a pointer to another record's id
	Children []*Node
}

// Child returns the first child with the given tag, or nil.
func (n *Node) Child(tag string) *Node {
	for _, c := range n.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// ChildValue returns the Value of the first child with the given tag, or "".
func (n *Node) ChildValue(tag string) string {
	if c := n.Child(tag); c != nil {
		return c.Value
	}
	return ""
}

// stackEntry tracks one open node while the tree is being assembled.
type stackEntry struct {
	level int
	node  *Node
}

// ParseTree assembles the raw text into a list of top-level record nodes.
// Nesting follows the numeric level at the start of each line: a level N+1
// line is a child of the most recent level N node. The parser is tolerant:
// blank lines and lines that do not tokenize are skipped, and a level
// regression simply closes every deeper open node. An explicit stack keeps
// arbitrarily deep input from overflowing the call stack.
func ParseTree(text string) []*Node {
	var roots []*Node
	var stack []stackEntry

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		level, node, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}

		// Close open nodes at or below this line's level.
		for len(stack) > 0 && stack[len(stack)-1].level >= level {
			stack = stack[:len(stack)-1]
		}

		if len(stack) == 0 {
			roots = append(roots, node)
		} else {
			parent := stack[len(stack)-1].node
			parent.Children = append(parent.Children, node)
		}
		stack = append(stack, stackEntry{level: level, node: node})
	}

	return roots
}

// parseLine tokenizes a single "<level> [@xref@] <tag> [value]" line.
// Returns ok=false for blank or untokenizable lines.
func parseLine(line string) (int, *Node, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return 0, nil, false
	}

	levelStr, rest, _ := strings.Cut(trimmed, " ")
	level, err := strconv.Atoi(levelStr)
	if err != nil {
		return 0, nil, false
	}
	if level < 0 {
		level = 0
	}

	rest = strings.TrimSpace(rest)
	if rest == "" {
		return 0, nil, false
	}

	node := &Node{}
	first, remainder, _ := strings.Cut(rest, " ")

	// "0 @I1@ INDI" — the record declares its own cross-reference id.
	if isXref(first) {
		tag, value, _ := strings.Cut(strings.TrimSpace(remainder), " ")
		if tag == "" {
			return 0, nil, false
		}
		node.XrefID = first
		node.Tag = strings.ToUpper(tag)
		node.Value = strings.TrimSpace(value)
		return level, node, true
	}

	// "1 FAMC @F1@" or "2 DATE 15 JUN 1980" — tag first, payload after.
	node.Tag = strings.ToUpper(first)
	node.Value = strings.TrimSpace(remainder)
	return level, node, true
}

// isXref reports whether s looks like a cross-reference id, "@...@".
func isXref(s string) bool {
	return len(s) > 2 && s[0] == '@' && s[len(s)-1] == '@'
}
