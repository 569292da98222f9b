/*
Package config loads optional defaults for rop from a file.

	            +-------------+
	            |   Config    |
	            | (Defaults)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+ +-----+----+ +-----+----+
	|   YAML   | |   HCL    | |   JSON   |
	|  Parser  | |  Parser  | |  Parser  |
	+----------+ +----------+ +----------+

The format is picked by file extension through the Parser registry. Unknown
fields are rejected. Flags given on the command line override whatever the
file says; that merge happens in cmd/rop.

🔍 Example .rop.yaml:

	protect:
	  - "*.lock"
	  - ".git"
	ignore_case: true
	summary: true

🔍 Example .rop.hcl (env.* exposes the process environment):

	protect     = [".git", "${env.USER}-keep-*"]
	ignore_case = true
*/
package config
