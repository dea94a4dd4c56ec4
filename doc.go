// Package integrix is a definite-integral calculator: parse a function
// of x, integrate it numerically and symbolically, and get plot-ready
// series back. One request, one complete answer.
//
// 🚀 What is integrix?
//
//	A pipeline of small, composable packages:
//		• expr       — parser, canonical expression trees, differentiation
//		• numeric    — float64 compilation, domain sampling, classification
//		• quadrature — adaptive Gauss–Kronrod (G7/K15) with error estimate
//		• symbolic   — antiderivatives via an ordered fallback chain
//		• plotdata   — masked curve points + interpolated fill strip
//		• engine     — the request orchestrator and error taxonomy
//		• render     — SVG/PNG figures from the plot series
//
// ✨ Why choose integrix?
//
//   - Exact where it can be – rational arithmetic in the tree, so
//     x*x and x**2 are the same function and 1/3 never becomes 0.333…
//   - Honest where it cannot – a missing closed form is an answer,
//     non-finite samples are classified rather than papered over
//   - Concurrent core – quadrature and the symbolic chain run in
//     parallel under independent timeouts
//   - Shell-ready – an MCP tool server in cmd/integrix-mcp with
//     stdio and HTTP transports, rate limiting and metrics
//
// Quick sketch of a request:
//
//	    "sin(x**2) + 1", [0, 2]
//	       │ parse          │ sample
//	       ▼                ▼
//	  canonical tree ──► f: float64→float64 ──► value ± estimate
//	       │                                        │
//	       ▼                                        ▼
//	  fallback chain ──► sqrt(pi/2)·S(…) + x   curve + fill
//
// Dive into the package docs for the contracts, and cmd/integrix-mcp
// for the serving shell.
//
//	go get github.com/katalvlaran/integrix
package integrix
