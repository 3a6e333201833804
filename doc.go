// Package gridpath generates weighted grid graphs with a guaranteed
// start-to-end path and runs Dijkstra's algorithm over them one observable
// transition at a time.
//
// What is in the box?
//
//	• Core primitives: lattice nodes, directed weighted edges, stable IDs
//	• Generation: random edges in a distance window, connectivity repair,
//	  endpoint reachability validation with bounded retries
//	• Stepping: a resumable Dijkstra state machine exposing distances,
//	  predecessors, visited set and the edge examined last
//	• Statistics: edge weight mean and deviation for rendering
//	• Persistence: memory, file, Redis and SQLite stores
//	• Rendering: lipgloss-coloured terminal frames
//
// Subpackages:
//
//	core/       — Node, Edge, Graph; insertion-ordered adjacency
//	bfs/        — breadth-first search, directed reachability, undirected components
//	builder/    — lattice synthesis, edge synthesis, repair and retry loop
//	dijkstra/   — Stepper, State snapshots, lazy-decrease-key frontier
//	stats/      — WeightStats, Brightness
//	store/      — Record codec and backends (memory, file, redis, sqlite)
//	render/     — Renderer interface and the Terminal renderer
//	config/     — HCL configuration with environment lookups
//	log/        — leveled Logger over kataras/golog
//	cmd/gridpath — command-line driver
//
// Quick start:
//
//	b, _ := builder.New(64, 64, 8, builder.WithSeed(42))
//	g, _ := b.Generate(builder.DefaultParams())
//	start, end := b.Endpoints()
//	s, _ := dijkstra.NewStepper(g, start, end)
//	for {
//		st, ok := s.Step()
//		if !ok || st.Status.Terminal() {
//			break
//		}
//	}
package gridpath
