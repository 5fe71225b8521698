// Copyright (c) 2026 The archdiff authors.
// SPDX-License-Identifier: Apache-2.0

package diff

import "strings"

// TreeRootName is the synthetic name of the tree root, representing the top
// of the stripped listing.
const TreeRootName = "."

// TreeNode is either a *DirNode or a *FileNode.
type TreeNode interface {
	NodeName() string
	// equal reports whether this subtree contains only Equal files.
	equal() bool
}

// DirNode is a directory in the diff tree. Children hold converted
// subdirectories in first-seen order followed by file leaves in first-seen
// order. AllEqual is true iff every reachable file descendant is Equal.
type DirNode struct {
	Name     string
	Children []TreeNode
	AllEqual bool
}

func (n *DirNode) NodeName() string { return n.Name }
func (n *DirNode) equal() bool      { return n.AllEqual }

// FileNode is a single path's diff outcome in the tree.
type FileNode struct {
	Name  string
	State State
}

func (n *FileNode) NodeName() string { return n.Name }
func (n *FileNode) equal() bool      { return n.State == Equal }

// dictNode is the intermediate trie used while grouping records by directory.
// Insertion order is preserved for both subdirectories and files.
type dictNode struct {
	dirOrder []string
	dirs     map[string]*dictNode
	files    []*FileNode
}

func newDictNode() *dictNode {
	return &dictNode{dirs: map[string]*dictNode{}}
}

func (n *dictNode) dir(name string) *dictNode {
	d, ok := n.dirs[name]
	if !ok {
		d = newDictNode()
		n.dirs[name] = d
		n.dirOrder = append(n.dirOrder, name)
	}
	return d
}

func (n *dictNode) convert(name string) *DirNode {
	children := make([]TreeNode, 0, len(n.dirOrder)+len(n.files))
	for _, dirName := range n.dirOrder {
		children = append(children, n.dirs[dirName].convert(dirName))
	}
	for _, f := range n.files {
		children = append(children, f)
	}

	allEqual := true
	for _, c := range children {
		if !c.equal() {
			allEqual = false
			break
		}
	}

	return &DirNode{Name: name, Children: children, AllEqual: allEqual}
}

// BuildTree projects a flat diff onto the directory tree implied by its
// record paths. The root directory node is named TreeRootName.
func BuildTree(d *ArchiveDiff) *DirNode {
	root := newDictNode()
	for _, record := range d.Records {
		parts := strings.Split(record.RelPath, "/")

		cur := root
		for len(parts) > 1 {
			cur = cur.dir(parts[0])
			parts = parts[1:]
		}
		cur.files = append(cur.files, &FileNode{Name: parts[0], State: record.State})
	}

	return root.convert(TreeRootName)
}
