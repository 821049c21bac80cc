// Package processor contains the core flow of a training run. It loads
// and resolves the experiment configuration, applies command-line
// overrides and hands the result to the trainer. It also drives vocabulary
// extraction and experiment archiving for the other subcommands.
package processor
