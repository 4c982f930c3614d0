// Package project contains the Project aggregate and its status state machine.
// A project is posted by a contractor company, collects quotes while open, and
// is closed by the quote-acceptance workflow.
package project
