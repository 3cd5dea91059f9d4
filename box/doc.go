// Package box implements a small constraint algebra over integer positions.
//
// A Point is an integer tied to the Box that constrains it. A Box is a
// half-open interval [left, right) whose two ends are Points. The kind of a
// Point's box classifies the point:
//
//   - fixed: the box is a singleton, the value is resolved;
//   - floating: the box is universal, the value is provisional;
//   - absurd: the box is empty, the constraints have no solution;
//   - bounded: any other box.
//
// Boxes live in an Arena. A Point refers to its box by slot, so narrowing a
// slot with AddBox is observed by every Point sharing that slot (see
// Point.Left and Point.Right). Values are clamped into their box when read.
//
// Intersections compare endpoint values directly. Absurd is a value, not an
// error: check Box.IsAbsurd before enumerating or slicing with a box.
package box
