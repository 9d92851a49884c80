/*
Package config loads the project file that holds the copy-paths settings.

	            +-------------+
	            |   Project   |
	            | (folders +  |
	            |  settings)  |
	            +------+------+
	                   |
	   +---------+-----+-----+-----------+
	   |         |           |           |
	+--+---+ +---+--+    +---+--+  +-----+------+
	| YAML | | JSON |    | HCL  |  |  sublime-  |
	+------+ +------+    +------+  |  project   |
	                               +------------+

🎯 Purpose:
- Finds the project file for a buffer (Discover)
- Parses it with the parser registered for its name
- Validates settings before they reach the transformers

🔄 Flow:
1. Discover walks up from the file's directory
2. Load picks a parser by file name pattern
3. Validate resolves folders and cleans strip prefixes
4. Settings.Options hands explicit options to pkg/transform

📝 Settings schema (under settings.copy-paths):

	c_family_includes_use_brackets: bool      # default false
	c_family_includes_strip_prefixes: [string] # default []
	java_package_roots: [string]               # default [com, org]

Settings are read again on every command; nothing is cached.

🔍 Example:

	path, err := config.Discover(ctx, filepath.Dir(file))
	if err != nil && !errors.Is(err, config.ErrProjectFileNotFound) {
		return err
	}
	proj, err := config.Load(ctx, path)
	if err != nil {
		return err
	}
	opts := proj.Settings.Options()
*/
package config
