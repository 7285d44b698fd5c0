// Package main is the entry point for the rankedstats CLI tool, which
// collects a player's recent ranked match history from the Riot API and
// reshapes it into a flat, analysis-ready dataset.
package main

import "github.com/jestes5111/lol-ranked-data-collector/cmd"

func main() {
	cmd.Execute()
}
