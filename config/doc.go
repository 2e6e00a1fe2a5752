// Package config loads an episode description from an HCL file: the map,
// the observation radius and sequencing settings, the agents, an optional
// candidate-target sampler and logging.
//
//	map = <<EOT
//	.....
//	..#..
//	EOT
//	pad        = true
//	obs_radius = 2
//	horizon    = 256
//	margin     = 100
//	seed       = 42
//	workers    = 4
//	max_goals  = 65536
//	lifelong   = true
//
//	agent {
//	  start = [0, 0]
//	  goal  = [1, 4]
//	}
//
//	sampler "candidates" {
//	  targets = [[0, 0], [1, 4]]
//	}
//
//	log {
//	  level  = "info"
//	  format = "text"
//	}
//
// Coordinates are [row, col] in the frame of the map as written. With
// pad = true (the default) the map is surrounded by an obstacle border of
// obs_radius cells and every coordinate is shifted accordingly.
//
// Every validation failure wraps ErrInvalidConfig.
package config
