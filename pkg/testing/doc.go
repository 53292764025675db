// Package testing provides a harness for exercising widget trees without
// a host: a WidgetTester that mounts a widget, drives build and layout
// frames, and finders for locating elements in the mounted tree.
package testing
