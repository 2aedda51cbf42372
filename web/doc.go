// Package web serves sprite rectangles over HTTP as JSON.
package web
