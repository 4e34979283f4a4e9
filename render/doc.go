// Package render draws a search chart on a terminal canvas.
//
// The chart shows every search area as a labelled box, the last known
// position of the target as '+' and, once the target is found, its position
// as '*'. A panel below the chart lists the current probability and the last
// search effectiveness of each area. Chart coordinates are scaled to fit the
// canvas, so any tcell.Screen size works.
package render
