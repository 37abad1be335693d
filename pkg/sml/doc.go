/*
Package sml decodes Simple Markup Language documents into element trees.

An SML document is a sequence of WSV rows (whitespace-separated values)
preceded by a byte order mark. A row with one cell opens an element, a row
holding only "End" closes it, and any other non-empty row is an attribute:
a name followed by zero or more values.

	Configuration
	  Video
	    Resolution 1280 720
	    RefreshRate 60
	    Fullscreen true
	  End
	  Player "Hero Name" -
	End

# Quick Start

	root, err := sml.Parse(data, sml.Options{})
	if err != nil {
	    return err
	}
	res := root.Find("Video/Resolution").(*ast.Attribute)
	fmt.Println(*res.Values[0].Ptr(), *res.Values[1].Ptr())

# Input Forms

  - Parse: bytes starting with a UTF-8, UTF-16BE, UTF-16LE or UTF-32BE byte order mark
  - ParseString and ParseLines: text that is already decoded
  - ParseReader and ParseFile: bytes as for Parse, optionally gzip-compressed
  - NewLineDecoder: one line at a time, driven by the caller
  - NewDecoder: one tokenized row at a time
  - ParseRow: a single WSV line

The whole-document functions and LineDecoder share one structural step, so a
document decodes to the same tree no matter how it is fed.

# Errors

Malformed input always fails the whole parse. Every failure from the parse
functions is an *Error naming the layer that rejected the input, the 1-based
line, and for row errors the 0-based character offset:

	var perr *sml.Error
	if errors.As(err, &perr) {
	    switch perr.Kind {
	    case sml.ErrorKindRow:
	        fmt.Printf("line %d, character %d: %v\n", perr.Line, perr.Offset, perr.Err)
	    case sml.ErrorKindStructure:
	        fmt.Printf("line %d: %v\n", perr.Line, perr.StructuralKind())
	    }
	}

Sentinels such as ErrMissingEnd and ErrUnterminatedQuote work with errors.Is.

# Limits

Options.Limits bounds nesting depth, children per element, values per
attribute and name length. Untrusted input should use StrictLimits.
*/
package sml
