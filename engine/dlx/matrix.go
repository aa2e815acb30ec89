package dlx

// node is one cell of the toroidal doubly-linked matrix: either a
// column header (col == the owning column, node embedded in it) or a
// row/column intersection ("1" entry).
type node struct {
	left, right, up, down *node
	col                   *column
	rowID                 int // index into matrix.rows; meaningless for header nodes
}

// column is a single constraint: either a container cell (must be
// covered exactly once) or a piece unit-slot (must be consumed exactly
// once by some placement of that piece label).
type column struct {
	node
	size int // number of uncovered rows currently satisfying this column
	name string
}

// matrix is the dancing-links structure built from a candidate.Index
// and a fixed piece combination, grounded on the reference
// implementation's solver/engines/bitmap_state.py.
type matrix struct {
	root *column
	cols []*column
	rows [][]*node // rows[rowID] lists every node belonging to that row, for solution reconstruction
}

// newMatrix allocates an empty matrix with one header column per name
// in names, linked left-right around root in order.
func newMatrix(names []string) *matrix {
	root := &column{name: "root"}
	root.col = root
	root.left, root.right = &root.node, &root.node

	m := &matrix{root: root}
	for _, name := range names {
		c := &column{name: name}
		c.col = c
		c.up, c.down = &c.node, &c.node
		// splice c in just to the left of root
		c.right = &root.node
		c.left = root.left
		root.left.right = &c.node
		root.left = &c.node
		m.cols = append(m.cols, c)
	}
	return m
}

// addRow inserts a new row covering the given column indices (into
// m.cols), returning its rowID.
func (m *matrix) addRow(colIdx []int) int {
	rowID := len(m.rows)
	nodes := make([]*node, 0, len(colIdx))

	var first *node
	for _, ci := range colIdx {
		c := m.cols[ci]
		n := &node{col: c, rowID: rowID}

		// splice n above c's sentinel (i.e. at the bottom of c's list)
		n.down = &c.node
		n.up = c.up
		c.up.down = n
		c.up = n
		c.size++

		if first == nil {
			first = n
			n.left, n.right = n, n
		} else {
			n.right = first
			n.left = first.left
			first.left.right = n
			first.left = n
		}
		nodes = append(nodes, n)
	}
	m.rows = append(m.rows, nodes)
	return rowID
}

// cover removes column c from the header list and removes every row
// that has a node in c from every other column it touches.
func cover(c *column) {
	c.right.left = c.left
	c.left.right = c.right

	for i := c.down; i != &c.node; i = i.down {
		for j := i.right; j != i; j = j.right {
			j.down.up = j.up
			j.up.down = j.down
			j.col.size--
		}
	}
}

// uncover reverses cover(c) exactly, in the mirror order Knuth's
// Dancing Links requires.
func uncover(c *column) {
	for i := c.up; i != &c.node; i = i.up {
		for j := i.left; j != i; j = j.left {
			j.col.size++
			j.down.up = j
			j.up.down = j
		}
	}
	c.right.left = &c.node
	c.left.right = &c.node
}

// chooseColumn returns the column with the fewest remaining rows
// (Knuth's S heuristic), or nil if the header list is empty (every
// constraint already satisfied).
func (m *matrix) chooseColumn() *column {
	var best *column
	for c := colNode(m.root.right); c != m.root; c = colNode(c.right) {
		if best == nil || c.size < best.size {
			best = c
		}
	}
	return best
}

// colNode recovers the owning *column from one of its own header
// node's neighbour pointers; header nodes are always the embedded
// node of a *column.
func colNode(n *node) *column {
	return n.col
}
