// Package parser parses the test-block syntax out of test files.
//
// A test file is a sequence of blocks of the form
//
//	@test name {
//	    echo "body lines"
//	}
//
// separated by arbitrary whitespace. Test names match [A-Za-z0-9_]+. A body
// holds at least one line and ends at a line that is exactly the closing
// delimiter; body lines keep their original terminators, so the parsed body
// reproduces the source span byte for byte. A body line may not begin with
// the closing delimiter character.
//
// Parsing is strict: the whole input must be consumed, and any malformed
// header, missing body, or trailing content fails the file with a ParseError
// carrying the file path and a line-numbered diagnostic.
package parser
