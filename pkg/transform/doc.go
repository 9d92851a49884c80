/*
Package transform turns a file path into the strings the copy commands put on the clipboard.

	       +-----------------------------+
	       |  Input{FilePath, Root}      |
	       +--------------+--------------+
	                      |
	      +---------------+----------------+
	      |               |                |
	+-----+-----+   +-----+------+   +-----+-----+
	|  paths    |   |  c family  |   |   java    |
	| abs/name/ |   | #include/  |   | import/   |
	| dir/rel   |   | #import/   |   | package   |
	+-----------+   | guard      |   +-----------+
	                +------------+

🎯 Purpose:
- Every command is a pure function of (Input, Options)
- Settings arrive as an explicit Options value, never from globals
- Errors are sentinels so callers can tell "no project" from "outside project"

🔄 Flow:
1. RelativePath strips the project root on segment boundaries
2. C-family commands swap sources for sibling headers (if a HeaderLocator is set)
3. StripPrefix removes the longest matching leading segments
4. The result is wrapped in its directive or statement

🔍 Example:

	in := transform.Input{FilePath: "/proj/include/foo/bar.hpp", ProjectRoot: "/proj"}
	s, err := transform.CIncludeStatement(in, transform.Options{StripPrefixes: []string{"include"}})
	// s == `#include "foo/bar.hpp"`
*/
package transform
