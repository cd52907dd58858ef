// Package curation decides which posts each surface of the site shows and in
// what order: the image showcase, the labeled front-page columns and the
// related-content panel under a post.
//
// Every function here is a pure transformation over a date-descending post
// snapshot. Input order is never changed and nothing is scored. An empty
// result is a normal outcome that callers render by hiding the surface.
package curation
