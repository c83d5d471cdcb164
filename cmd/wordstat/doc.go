// Package main hosts the wordstat CLI entrypoint.
//
// A single Cobra root command takes one paragraph argument, runs it through
// internal/textstats, and prints the fixed report block to standard output.
// Configuration resolution, logger setup, and the mapping from errors to exit
// status all live here so the analysis package stays pure.
package main
