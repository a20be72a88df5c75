// Package link computes the inter-cell connecting path: given an exit
// point in the current cell and an entrance point in the next cell, it
// walks along the current cell's inset wall to the nearest corner, then
// transfers straight across to the entrance.
//
// It also provides path initialization: descending from the user's
// start point to the starting cell's top-left safe corner.
package link
