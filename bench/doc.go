// Package bench times TSP solvers on generated graphs and scores them
// against known optima.
//
// Measure runs one solver on one graph and reports wall time, cost and a
// correctness ratio optimum/cost (1 means optimal, lower is worse). A Suite,
// usually loaded from YAML with LoadSuite, describes families of generated
// graphs and the solvers to run on each; Runner executes it, logs through
// logrus and records Prometheus metrics through a Recorder.
//
// Example suite:
//
//	cases:
//	  - name: circles
//	    graph: circle
//	    sizes: [6, 8, 10]
//	    algorithms: [held-karp, branch-and-bound, nearest-neighbor]
//	    frontier_cap: 20
//	  - name: random
//	    graph: random
//	    sizes: [8]
//	    seed: 7
//	    algorithms: [branch-and-bound]
//	    time_limit: 2s
package bench
