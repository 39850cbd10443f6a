package generator

import (
	"mazegen/pkg/engine/random"
)

// bspNode represents a node in the BSP tree
type bspNode struct {
	x, y, width, height int
	left, right         *bspNode
	room                *Room
}

// placeBSP partitions the area inside the edge margin and places at most
// one room per leaf, keeping a one-cell gap between rooms of neighboring
// leaves. When there are more leaves than s.Count a random subset is kept.
func placeBSP(width, height int, s RoomSettings, rng *random.Source) []Room {
	// Create BSP tree (leaving the margin free on every side)
	root := &bspNode{
		x:      roomMargin,
		y:      roomMargin,
		width:  width - 2*roomMargin,
		height: height - 2*roomMargin,
	}

	// Leaves must hold a maximum-size room plus the gap
	splitBSP(root, s.MaxWidth+1, s.MaxHeight+1, rng)

	createRooms(root, root, s, rng)

	rooms := collectRooms(root)
	// Keep a random subset of Count rooms
	for i := 0; i < len(rooms) && i < s.Count; i++ {
		j := i + rng.IntN(len(rooms)-i)
		rooms[i], rooms[j] = rooms[j], rooms[i]
	}
	if len(rooms) > s.Count {
		rooms = rooms[:s.Count]
	}
	return rooms
}

// splitBSP recursively splits a BSP node
func splitBSP(node *bspNode, minWidth, minHeight int, rng *random.Source) {
	canSplitV := node.width >= minWidth*2
	canSplitH := node.height >= minHeight*2
	if !canSplitV && !canSplitH {
		return // Too small to split
	}

	// Decide split direction, preferring to cut the longer side
	var splitHorizontal bool
	switch {
	case canSplitV && canSplitH:
		if node.width > node.height {
			splitHorizontal = false
		} else if node.height > node.width {
			splitHorizontal = true
		} else {
			splitHorizontal = rng.IntN(2) == 0
		}
	case canSplitH:
		splitHorizontal = true
	default:
		splitHorizontal = false
	}

	if splitHorizontal {
		// Split horizontally (top and bottom)
		splitPoint := rng.Between(minHeight, node.height-minHeight)
		node.left = &bspNode{
			x:      node.x,
			y:      node.y,
			width:  node.width,
			height: splitPoint,
		}
		node.right = &bspNode{
			x:      node.x,
			y:      node.y + splitPoint,
			width:  node.width,
			height: node.height - splitPoint,
		}
	} else {
		// Split vertically (left and right)
		splitPoint := rng.Between(minWidth, node.width-minWidth)
		node.left = &bspNode{
			x:      node.x,
			y:      node.y,
			width:  splitPoint,
			height: node.height,
		}
		node.right = &bspNode{
			x:      node.x + splitPoint,
			y:      node.y,
			width:  node.width - splitPoint,
			height: node.height,
		}
	}

	// Recursively split children
	splitBSP(node.left, minWidth, minHeight, rng)
	splitBSP(node.right, minWidth, minHeight, rng)
}

// createRooms creates rooms in leaf nodes
func createRooms(node, root *bspNode, s RoomSettings, rng *random.Source) {
	if node.left != nil || node.right != nil {
		// Not a leaf node, recurse
		if node.left != nil {
			createRooms(node.left, root, s, rng)
		}
		if node.right != nil {
			createRooms(node.right, root, s, rng)
		}
		return
	}

	// Reserve the last column/row as a gap unless the leaf touches the far edge
	availWidth, availHeight := node.width, node.height
	if node.x+node.width < root.x+root.width {
		availWidth--
	}
	if node.y+node.height < root.y+root.height {
		availHeight--
	}
	if availWidth < s.MinWidth || availHeight < s.MinHeight {
		return
	}

	roomWidth := rng.Between(s.MinWidth, min(s.MaxWidth, availWidth))
	roomHeight := rng.Between(s.MinHeight, min(s.MaxHeight, availHeight))

	node.room = &Room{
		X:      node.x + rng.Between(0, availWidth-roomWidth),
		Y:      node.y + rng.Between(0, availHeight-roomHeight),
		Width:  roomWidth,
		Height: roomHeight,
	}
}

// collectRooms collects all rooms from the BSP tree
func collectRooms(node *bspNode) []Room {
	var rooms []Room

	if node.room != nil {
		rooms = append(rooms, *node.room)
	}

	if node.left != nil {
		rooms = append(rooms, collectRooms(node.left)...)
	}
	if node.right != nil {
		rooms = append(rooms, collectRooms(node.right)...)
	}

	return rooms
}
