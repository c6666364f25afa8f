// Package mapview draws ASCII-art projections of world data onto the
// console grid: a world map of areas and their connections, and a local
// map of one area's locations. Both renderers are pure functions of
// their inputs and the buffer; they keep no state between frames.
package mapview
