// Package swarmcolor is a playground for decentralised heuristic graph
// colouring: every node of a graph acts as an agent that inspects its
// neighbours' colours and recolours itself when it clashes with one of them.
//
// What is inside?
//
//	A deterministic, seed-driven simulation built from small packages:
//		• core      – symmetric adjacency-matrix Graph with edge toggling
//		• builder   – topologies: random (Erdős–Rényi), empty, path, cycle,
//		              complete, star, grid, explicit edge lists
//		• palette   – ordered colour tokens and the active prefix [0,k)
//		• coloring  – colouring state, conflict counting, the per-node rule
//		• perturb   – scheduled edge toggling (approximate and exact)
//		• history   – per-round series: best valid colouring, lowest conflicts
//		• search    – convergence loop plus monotone and adaptive palette control
//		• bfs, dfs  – components, bipartiteness and chromatic bounds for reports
//		• metrics   – Prometheus instruments for rounds, attempts, perturbations
//		• config    – YAML file, SWARMCOLOR_* environment and validation
//		• report    – YAML report and console summary of a run or a batch
//
// Data flow:
//
//	config.Load → builder.BuildGraph → search.NewEngine → Engine.Run
//	            → report.Build → report.WriteYAML / report.Log
//
// One RNG stream seeds both graph generation and the search, so a run is
// fully reproducible from its configuration.
//
// Quick example:
//
//	g, _ := builder.BuildGraph(nil, builder.Complete(4))
//	e, _ := search.NewEngine(g, palette.Default(), search.DefaultParams(), search.WithSeed(7))
//	res, _ := e.Run()
//	fmt.Println(res.Sizes(), res.Best.PaletteSize)
//
// The swarmcolor command (cmd/swarmcolor) wires everything behind the run,
// batch and config subcommands.
package swarmcolor
