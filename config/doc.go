// Package config holds the settings of a bbgame search, loadable from YAML.
//
// A file only needs the keys it changes; everything else keeps its Default
// value:
//
//	states: 4
//	generator: optimized
//	max_steps: 200
//	workers: 8
//	histogram:
//	  height: 15
//	  cutoff: 30
//	log:
//	  level: debug
//	  file: bbgame.log
//
// Errors:
//
//   - ErrInvalid  a value outside its allowed range (wrapped with details)
package config
