// Package arch turns placeholder boxes into architectural pieces: doors,
// windows, staircases and plain cubes.
//
// Every creator takes a box.BoxData and returns an Assembly of oriented
// parts laid out in the placeholder's own frame, so a rotated placeholder
// yields rotated geometry. Finished pieces are re-pivoted to the bottom
// face and carry Attributes that FromAttributes can read back.
package arch
