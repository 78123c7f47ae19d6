// Package report renders tolerance result records and acceptance
// verdicts as styled terminal text. All render functions are pure
// string producers so output is testable without a TTY.
package report
