// Package lessons holds the built-in lesson catalog.
//
// Each lesson is a self-contained demonstration of one language
// fundamental. Lessons write their teaching output to the run
// environment's writer and never share state; the catalog's
// registration order is the presentation order.
package lessons
