// Package markdown converts project documents between their canonical
// text form and the structured model in internal/model.
//
// The dialect is line-oriented with case-insensitive keywords:
//
//	# Project: <title>
//
//	## People
//	- <name>: <resp1>, <resp2>
//
//	## Timeline
//	- <label>: (<start> to <end>) [<percent>%] {actual: <start> to <end>} <free text>
//
//	## Sprint Configuration
//	- Duration: <int> weeks
//	- Start Date: <YYYY-MM-DD>
//	- Active Sprint: <label>
//	- Current Sprint: <label>
//
//	## Tasks
//	- <title> (<assignee>) {<sprint label>} <remarks> [<status>]
//
// List items are introduced by "-" or "*". Every annotation group is
// optional. A "##" header outside the recognized set ends the current
// section; lines under it are dropped.
//
// # Guarantees
//
// Parse is total: any input, including the empty string, yields a model.
// There are no error paths. Malformed annotations leave the corresponding
// field unset rather than failing the line.
//
// Serialize is deterministic and writes sections in a fixed order (Title,
// People, Timeline, Sprint Configuration, Tasks), omitting empty ones.
// For any model produced by Parse, Parse(Serialize(m)) reproduces m
// field for field. Downstream consumers (diffing, save-on-change) depend
// on byte-equal output meaning equal models.
//
// # Task status values
//
//   - "todo": pending (the default; never written by Serialize)
//   - "in-progress": being worked on
//   - "done": complete
//
// Synonyms accepted on parse: completed/complete for done; "in progress",
// wip, active for in-progress. Anything else in brackets collapses to todo.
package markdown
