/*
Package operation applies one verb to every matching entry of a directory.

	+-----------+     +---------+     +-----------+     +----------+
	|   scan    | --> |  match  | --> | operation | --> | Reporter |
	| (entries) |     | (regex) |     |  (verb)   |     | (sink)   |
	+-----------+     +---------+     +-----------+     +----------+

🎯 Verbs:
  - list: report matching names, never mutate
  - remove: delete each match
  - move: rename each match into a destination directory
  - copy: duplicate each matching file into a destination directory
  - extract: create a folder under the source, then move matches into it

🔄 Flow:
 1. Compile the pattern (fatal on error)
 2. Open the scan pass (fatal on error)
 3. Verb setup: destination check, extract folder creation (fatal on error)
 4. Fold over the listing, one Outcome per match, never aborting

⚠️ Errors come in two tiers. Fatal errors are returned as a *FatalError, and
only before the first Outcome is reported. Everything that goes wrong for a
single entry is carried in that entry's Outcome. The one exception is a
listing that breaks off midway: the outcomes already reported stand and
Execute returns an error wrapping ErrListingIncomplete.

Move and extract skip an entry whose name equals the destination directory's
base name (StatusSkipped). Copy has no such rule; copying a directory fails.

🔍 Example:

	op, err := operation.New(operation.Options{
		Command:  cmd,
		Reporter: reporter,
	})
	if err != nil {
		return err
	}
	err = operation.NewRunner(&logger).Run(ctx, op)
*/
package operation
