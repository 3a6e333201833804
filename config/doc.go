// Package config loads program configuration from an HCL file.
//
// Every block and attribute is optional; omitted values keep the defaults
// of Default. Expressions are evaluated with an `env` object holding the
// process environment, so numbers and strings may come from variables:
//
//	grid {
//	  width  = 64
//	  height = 64
//	  step   = 8
//	}
//
//	edges {
//	  min_connections = 2
//	  max_connections = 4
//	  min_weight      = 1
//	  max_weight      = 10
//	  distance_factor = 2.5
//	}
//
//	endpoints {
//	  start = [0, 0]
//	  end   = [64, 64]
//	}
//
//	generation {
//	  seed         = env.GRIDPATH_SEED
//	  max_attempts = 10
//	  repair_min   = 1
//	  repair_max   = 10
//	}
//
//	store {
//	  kind   = "file"        # memory | file | redis | sqlite
//	  path   = "./graphs"    # file directory or sqlite database
//	  addr   = "localhost:6379"
//	  prefix = "gridpath:"
//	}
//
//	render {
//	  tick_ms = 50
//	}
//
//	log {
//	  level = "info"
//	}
package config
