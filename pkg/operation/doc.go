/*
Package operation runs copy commands against a file on disk.

	+-------------+      +-------------+      +-------------+
	|   Request   | ---> |   Resolve   | ---> |  Transform  |
	| (kind, file)|      | (project,   |      | (registry)  |
	+-------------+      |  settings)  |      +------+------+
	                     +-------------+             |
	                                          +------+------+
	                                          |  Clipboard  |
	                                          |  + Console  |
	                                          +-------------+

🎯 Purpose:
- Finds the project a file belongs to (explicit folders, project file, or none)
- Merges project settings with per-invocation overrides
- Gates commands by the file's language family
- Hands the produced value to a clipboard and reports it

🔄 Flow:
1. Make the file path absolute
2. Load the project file given, or discover one above the file
3. Pick the shortest folder that contains the file
4. Run the command's transformer
5. Copy (or print) the value and log it

⚡ Failure modes:
- A missing clipboard is reported as a warning; the value is still logged
- Commands that need a project return transform.ErrNoProject or
  transform.ErrNotInProject for the caller to show as a notification
- Commands for another language return ErrUnsupportedLanguage

🔍 Example:

	op, err := operation.New(operation.Options{
		Clipboard: clipboard.NewSystem(),
		Console:   log.NewWithZerolog(os.Stdout, zerolog.Nop()),
	})
	res, err := op.Copy(ctx, operation.Request{
		Kind:     transform.KindInclude,
		FilePath: "src/foo/bar.cpp",
	})
*/
package operation
