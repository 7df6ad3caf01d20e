// Package dictionaries loads word lists into a trie the solver prunes with.
package dictionaries

// Node is a single trie node. A node owns its children.
type Node struct {
	children map[rune]*Node

	// depths holds every word length still reachable from this node.
	// A 0 marks the end of a word.
	depths map[int]struct{}
}

func newNode() *Node {
	return &Node{
		children: make(map[rune]*Node),
		depths:   make(map[int]struct{}),
	}
}

func (n *Node) hasDepth(d int) bool {
	_, ok := n.depths[d]
	return ok
}

// Trie is a prefix tree answering exact word and length-aware prefix queries.
// It is built once and is safe for concurrent reads afterwards.
type Trie struct {
	root  *Node
	words int
}

func NewTrie() *Trie {
	return &Trie{root: newNode()}
}

// AddWord inserts word. Re-inserting a word is a no-op.
func (t *Trie) AddWord(word string) {
	runes := []rune(word)
	if len(runes) == 0 {
		return
	}

	node := t.root
	for i, r := range runes {
		node.depths[len(runes)-i] = struct{}{}

		child, ok := node.children[r]
		if !ok {
			child = newNode()
			node.children[r] = child
		}
		node = child
	}

	if !node.hasDepth(0) {
		node.depths[0] = struct{}{}
		t.words++
	}
}

// IsWord reports whether word was added to the trie.
func (t *Trie) IsWord(word string) bool {
	if word == "" {
		return false
	}

	node := t.root
	for _, r := range word {
		child, ok := node.children[r]
		if !ok {
			return false
		}
		node = child
	}
	return node.hasDepth(0)
}

// IsPrefix reports whether some word of total length n starts with word.
func (t *Trie) IsPrefix(word string, n int) bool {
	node := t.root
	for _, r := range word {
		if !node.hasDepth(n) {
			return false
		}
		child, ok := node.children[r]
		if !ok {
			return false
		}
		node = child
		n--
	}
	return node.hasDepth(n)
}

// Len returns the number of distinct words in the trie.
func (t *Trie) Len() int {
	return t.words
}

// HasLength reports whether the trie holds at least one word of length n.
func (t *Trie) HasLength(n int) bool {
	return n > 0 && t.root.hasDepth(n)
}
