// Package stepviz is a step-wise execution engine for the classic teaching
// data structures: every operation is turned into a finite, replayable
// sequence of steps that a renderer can show one at a time.
//
// What is inside:
//
//	structure/: the nine models (array, string, linked list, stack, queue,
//	            matrix, binary search tree, graph, hash table) + seed states
//	step/     : Step, Highlight, Mutation and the Sequence builder
//	runner/   : turns a validated request into a Sequence, never touching
//	            the structure it was given
//	bfs/, dfs/: hook-driven graph traversals used by the runner
//	treewalk/ : in/pre/post-order iterators and BST search paths
//	validate/ : raw text input → runner.Request, or a typed error
//	playback/ : the Idle → Running ⇄ Paused → Completed/Cancelled controller
//	session/  : one live structure + controller per kind, commit on emission
//	render/   : terminal rendering of structures and step tables
//	config/, logger/, metrics/: viper config, slog logging, Prometheus
//	cmd/stepviz: list, seed, run and tour commands
//
// Quick example, searching the seed array for 9:
//
//	[ <5> | 2 | 8 | 1 | 9 | 3 ]   compare [0]=5 with 9
//	[ 5 | <2> | 8 | 1 | 9 | 3 ]   compare [1]=2 with 9
//	...
//	[ 5 | 2 | 8 | 1 | <9> | 3 ]   compare [4]=9 with 9
//
//	go run github.com/katalvlaran/stepviz/cmd/stepviz run array search --value 9
package stepviz
