// Package report renders pipeline results for the terminal with pterm.
package report
