// Package logging builds the logrus logger used for scaffold output. The
// default console format prints one plain line per record so the tool reads
// like a script; text and json formats keep the structured fields.
package logging
