// Package analysis summarises recorded series such as a run's kinetic
// energy: basic statistics and the dominant oscillation frequency.
package analysis
