/*
Package status keeps score of a run.

A Tally sits between the operation and the console reporter, counting every
outcome by status and remembering the failures. After the run the tally can
be printed as a one line summary or as a table.

	op --Outcome--> Tally --Outcome--> log.Logger
	                  |
	                  +--> FormatSummary / RenderTable
*/
package status
